package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
	"github.com/dmitrymomot/circuitcheck/pkg/config"
	"github.com/dmitrymomot/circuitcheck/pkg/logger"
	"github.com/dmitrymomot/circuitcheck/pkg/refdata"
	"github.com/dmitrymomot/circuitcheck/pkg/validation"
)

var (
	errCircuitsFailed = errors.New("one or more circuits failed validation")
	errNoCircuits     = errors.New("input contains no circuits")
	errBadInput       = errors.New("input is neither a list of circuits nor a circuits mapping")
)

type appConfig struct {
	Log        logger.Config
	Validation validation.Config
	Workers    int    `env:"CIRCUITCHECK_WORKERS" envDefault:"4"`
	TablesDir  string `env:"CIRCUITCHECK_TABLES_DIR"`
}

type runIDKey struct{}

// loadEnvFiles loads a comma separated list of .env files. An empty list
// leaves the default .env handling to config.Load.
func loadEnvFiles(list string) error {
	var paths []string
	for p := range strings.SplitSeq(list, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	if len(paths) == 0 {
		return nil
	}
	return config.LoadEnv(paths...)
}

// inputRecord is one decoded circuit and the values dropped from it.
type inputRecord struct {
	circuit  circuit.Circuit
	rejected []circuit.FieldError
}

// rejectedRecord is an input entry that could not be read as a circuit.
type rejectedRecord struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

type report struct {
	RunID    string              `json:"run_id"`
	Summary  reportSummary       `json:"summary"`
	Results  []validation.Result `json:"results"`
	Rejected []rejectedRecord    `json:"rejected,omitempty"`
}

type reportSummary struct {
	Circuits int `json:"circuits"`
	Passed   int `json:"passed"`
	Failed   int `json:"failed"`
	Warnings int `json:"with_input_warnings"`
	Rejected int `json:"rejected"`
}

func newLogger(cfg logger.Config, w io.Writer) (*slog.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return logger.New(
		logger.WithConfig(cfg),
		logger.WithOutput(w),
		logger.WithAttr(logger.Component("circuitcheck")),
		logger.WithContextValue("run_id", runIDKey{}),
	), nil
}

func run(ctx context.Context, cfg appConfig, args []string, stdin io.Reader, stdout io.Writer, log *slog.Logger) error {
	fs := flag.NewFlagSet("circuitcheck", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	format := fs.String("format", "", "input format when reading stdin: yaml or json")
	out := fs.String("out", "", "write results to this file instead of stdout")
	failOnError := fs.Bool("fail", false, "exit with status 2 when any circuit fails")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	runID := uuid.NewString()
	ctx = context.WithValue(ctx, runIDKey{}, runID)
	start := time.Now()

	records, rejected, err := readCircuits(fs.Arg(0), *format, stdin)
	if err != nil {
		return err
	}
	for _, r := range rejected {
		log.WarnContext(ctx, "input record rejected", slog.Int("index", r.Index), slog.String("reason", r.Reason))
	}
	circuits := make([]circuit.Circuit, len(records))
	for i, r := range records {
		circuits[i] = r.circuit
		if circuits[i].ID == "" {
			circuits[i].ID = uuid.NewString()
		}
	}

	libs, err := validation.LoadLibraries(cfg.TablesDir)
	if err != nil {
		return err
	}
	engine, err := validation.NewFromConfig(cfg.Validation, libs.Cables, libs.Protection, libs.Standards,
		validation.WithLogger(log),
	)
	if err != nil {
		return err
	}

	results, err := engine.ValidateBatch(ctx, circuits, cfg.Validation.ValidateOptions(), cfg.Workers)
	if err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	// Values dropped while decoding are reported next to the range warnings.
	for i := range results {
		results[i].InputWarnings = append(results[i].InputWarnings, validation.DecodeWarnings(records[i].rejected)...)
	}

	rep := report{RunID: runID, Results: results, Rejected: rejected}
	rep.Summary.Circuits = len(results)
	rep.Summary.Rejected = len(rejected)
	for _, r := range results {
		if r.Passed() {
			rep.Summary.Passed++
		} else {
			rep.Summary.Failed++
		}
		if len(r.InputWarnings) > 0 {
			rep.Summary.Warnings++
		}
	}

	if err := writeReport(*out, stdout, rep); err != nil {
		return err
	}

	stats := engine.CacheStats()
	log.InfoContext(ctx, "circuits validated",
		logger.Count(rep.Summary.Circuits),
		slog.Int("failed", rep.Summary.Failed),
		slog.Float64("cache_hit_ratio", stats.HitRatio()),
		logger.Duration(time.Since(start)),
	)

	if *failOnError && (rep.Summary.Failed > 0 || rep.Summary.Rejected > 0) {
		return errCircuitsFailed
	}
	return nil
}

// readCircuits decodes a bare list of circuits or a {circuits: [...]}
// mapping. Entries are read one by one: a value of the wrong type is dropped
// from its circuit and an entry that is not a mapping is rejected, so a
// single bad record never stops the batch.
func readCircuits(path, format string, stdin io.Reader) ([]inputRecord, []rejectedRecord, error) {
	var (
		data []byte
		err  error
		f    refdata.Format
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
		f = refdata.FormatYAML
	} else {
		data, err = os.ReadFile(path)
		var ok bool
		if f, ok = refdata.FormatForFile(path); !ok {
			return nil, nil, fmt.Errorf("%w: %q", refdata.ErrUnsupportedFormat, path)
		}
	}
	if format != "" {
		f = refdata.Format(format)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read circuits: %w", err)
	}

	var doc any
	if err := refdata.DecodeLenient(f, data, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode circuits: %w", err)
	}
	entries, err := recordList(doc)
	if err != nil {
		return nil, nil, err
	}
	if len(entries) == 0 {
		return nil, nil, errNoCircuits
	}

	var (
		records  []inputRecord
		rejected []rejectedRecord
	)
	for i, entry := range entries {
		rec, ok := entry.(map[string]any)
		if !ok {
			rejected = append(rejected, rejectedRecord{Index: i, Reason: fmt.Sprintf("entry is %T, not a mapping", entry)})
			continue
		}
		c, bad := circuit.FromRecord(rec)
		records = append(records, inputRecord{circuit: c, rejected: bad})
	}
	return records, rejected, nil
}

func recordList(doc any) ([]any, error) {
	switch v := doc.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case map[string]any:
		switch list := v["circuits"].(type) {
		case nil:
			return nil, nil
		case []any:
			return list, nil
		}
	}
	return nil, errBadInput
}

func writeReport(path string, stdout io.Writer, rep report) error {
	if path == "" {
		return encodeReport(stdout, rep)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	return writeAndClose(f, rep)
}

// writeAndClose encodes rep to wc and closes it, reporting a failed close
// when the encoding itself succeeded.
func writeAndClose(wc io.WriteCloser, rep report) error {
	err := encodeReport(wc, rep)
	if cerr := wc.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close output: %w", cerr)
	}
	return err
}

func encodeReport(w io.Writer, rep report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rep); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	return nil
}
