package validation

import (
	"context"
	"time"

	"github.com/dmitrymomot/circuitcheck/pkg/async"
	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
	"github.com/dmitrymomot/circuitcheck/pkg/logger"
)

// ValidateBatch validates circuits on up to workers goroutines and returns
// results in input order. workers <= 0 uses one goroutine per circuit.
// Once ctx is done no further circuits are started; the context error is
// returned with the results that precede the first circuit left unvalidated.
func (e *Engine) ValidateBatch(ctx context.Context, circuits []circuit.Circuit, opts ValidateOptions, workers int) ([]Result, error) {
	start := time.Now()

	results, err := async.Map(ctx, circuits, workers, func(ctx context.Context, c circuit.Circuit) (Result, error) {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		return e.ValidateCircuit(c, opts), nil
	})
	if err != nil {
		e.log.WarnContext(ctx, "batch validation interrupted", logger.Count(len(circuits)), logger.Error(err))
		return results, err
	}

	e.log.DebugContext(ctx, "batch validated", logger.Count(len(results)), logger.Duration(time.Since(start)))
	return results, nil
}
