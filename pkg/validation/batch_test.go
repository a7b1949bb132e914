package validation_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
	"github.com/dmitrymomot/circuitcheck/pkg/rules"
	"github.com/dmitrymomot/circuitcheck/pkg/validation"
)

func TestValidateBatch(t *testing.T) {
	t.Parallel()

	t.Run("results in input order", func(t *testing.T) {
		e := newEngine(t)

		circuits := make([]circuit.Circuit, 0, 20)
		for i := range 20 {
			zs := 1.8
			if i%2 == 1 {
				zs = 2.9
			}
			c := workedExample(zs)
			c.ID = fmt.Sprintf("c%02d", i)
			circuits = append(circuits, c)
		}

		results, err := e.ValidateBatch(context.Background(), circuits, validation.DefaultValidateOptions(), 4)
		require.NoError(t, err)
		require.Len(t, results, len(circuits))

		for i, res := range results {
			assert.Equal(t, circuits[i].ID, res.CircuitID)
			want := rules.StatusPass
			if i%2 == 1 {
				want = rules.StatusFail
			}
			assert.Equal(t, want, res.Status, res.CircuitID)
		}
		assert.Equal(t, 2, e.CacheSize(), "two distinct fingerprints")
	})

	t.Run("empty batch", func(t *testing.T) {
		e := newEngine(t)
		results, err := e.ValidateBatch(context.Background(), nil, validation.DefaultValidateOptions(), 2)
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("canceled context", func(t *testing.T) {
		e := newEngine(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := e.ValidateBatch(ctx, []circuit.Circuit{workedExample(1.8)}, validation.DefaultValidateOptions(), 1)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Zero(t, e.CacheSize())
	})
}
