package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
	"github.com/dmitrymomot/circuitcheck/pkg/logger"
	"github.com/dmitrymomot/circuitcheck/pkg/validation"
)

const circuitsYAML = `
circuits:
  - id: A1.1
    voltage: 230
    protectionDeviceType: MCB-B
    protectionRatedCurrent: 16
    loopImpedance: 1.8
  - voltage: 230
    protectionDeviceType: MCB-B
    protectionRatedCurrent: 16
    loopImpedance: 2.9
    installerNote: checked twice
`

func testConfig() appConfig {
	return appConfig{
		Validation: validation.Config{MaxCacheSize: 10, UseCache: true, ValidateInputs: true},
		Workers:    2,
	}
}

type decodedReport struct {
	RunID   string        `json:"run_id"`
	Summary reportSummary `json:"summary"`
	Results []struct {
		CircuitID     string                    `json:"circuit_id"`
		Status        string                    `json:"status"`
		InputWarnings []validation.InputWarning `json:"input_warnings"`
	} `json:"results"`
	Rejected []rejectedRecord `json:"rejected"`
}

func decodeReport(t *testing.T, data []byte) decodedReport {
	t.Helper()
	var rep decodedReport
	require.NoError(t, json.Unmarshal(data, &rep))
	return rep
}

func TestRun(t *testing.T) {
	t.Run("reads stdin and writes json", func(t *testing.T) {
		var stdout bytes.Buffer
		err := run(context.Background(), testConfig(), nil, strings.NewReader(circuitsYAML), &stdout, logger.Discard())
		require.NoError(t, err)

		rep := decodeReport(t, stdout.Bytes())
		assert.NotEmpty(t, rep.RunID)
		assert.Equal(t, reportSummary{Circuits: 2, Passed: 1, Failed: 1}, rep.Summary)
		require.Len(t, rep.Results, 2)
		assert.Equal(t, "A1.1", rep.Results[0].CircuitID)
		assert.Equal(t, "pass", rep.Results[0].Status)
		assert.Equal(t, "fail", rep.Results[1].Status)
		assert.NotEmpty(t, rep.Results[1].CircuitID, "missing ids are generated")
	})

	t.Run("fail flag", func(t *testing.T) {
		var stdout bytes.Buffer
		err := run(context.Background(), testConfig(), []string{"-fail"}, strings.NewReader(circuitsYAML), &stdout, logger.Discard())
		assert.ErrorIs(t, err, errCircuitsFailed)
		assert.NotEmpty(t, stdout.String(), "report is written before failing")
	})

	t.Run("json file with bare list and output file", func(t *testing.T) {
		dir := t.TempDir()
		in := filepath.Join(dir, "circuits.json")
		out := filepath.Join(dir, "results.json")
		require.NoError(t, os.WriteFile(in, []byte(`[{"id":"k1","voltage":400,"phaseCount":3,"current":10}]`), 0o644))

		err := run(context.Background(), testConfig(), []string{"-out", out, in}, nil, &bytes.Buffer{}, logger.Discard())
		require.NoError(t, err)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		rep := decodeReport(t, data)
		assert.Equal(t, 1, rep.Summary.Circuits)
		assert.Equal(t, "k1", rep.Results[0].CircuitID)
	})

	t.Run("empty input", func(t *testing.T) {
		err := run(context.Background(), testConfig(), nil, strings.NewReader("circuits: []\n"), &bytes.Buffer{}, logger.Discard())
		assert.ErrorIs(t, err, errNoCircuits)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		err := run(context.Background(), testConfig(), []string{"circuits.csv"}, nil, &bytes.Buffer{}, logger.Discard())
		assert.Error(t, err)
	})

	t.Run("invalid cache size", func(t *testing.T) {
		cfg := testConfig()
		cfg.Validation.MaxCacheSize = 0
		err := run(context.Background(), cfg, nil, strings.NewReader(circuitsYAML), &bytes.Buffer{}, logger.Discard())
		assert.ErrorIs(t, err, validation.ErrInvalidCacheSize)
	})

	t.Run("malformed value does not stop the batch", func(t *testing.T) {
		in := `
- id: ok
  voltage: 230
  protectionDeviceType: MCB-B
  protectionRatedCurrent: 16
  loopImpedance: 1.8
- id: bad
  voltage: "230 V"
  protectionDeviceType: MCB-B
  protectionRatedCurrent: 16
  loopImpedance: 1.8
`
		var stdout bytes.Buffer
		err := run(context.Background(), testConfig(), nil, strings.NewReader(in), &stdout, logger.Discard())
		require.NoError(t, err)

		rep := decodeReport(t, stdout.Bytes())
		assert.Equal(t, reportSummary{Circuits: 2, Passed: 2, Warnings: 1}, rep.Summary)
		require.Len(t, rep.Results, 2)
		assert.Empty(t, rep.Results[0].InputWarnings)
		assert.Equal(t, "bad", rep.Results[1].CircuitID)
		assert.Equal(t, []validation.InputWarning{
			{Field: circuit.FieldVoltage, Message: "voltage must be a number"},
		}, rep.Results[1].InputWarnings)
	})

	t.Run("entry that is not a mapping is rejected", func(t *testing.T) {
		in := `[{"id":"k1","current":10,"protectionRatedCurrent":16}, 42]`
		var stdout bytes.Buffer
		err := run(context.Background(), testConfig(), []string{"-format", "json", "-fail"}, strings.NewReader(in), &stdout, logger.Discard())
		assert.ErrorIs(t, err, errCircuitsFailed)

		rep := decodeReport(t, stdout.Bytes())
		assert.Equal(t, 1, rep.Summary.Circuits)
		assert.Equal(t, 1, rep.Summary.Rejected)
		require.Len(t, rep.Rejected, 1)
		assert.Equal(t, 1, rep.Rejected[0].Index)
		assert.Equal(t, "k1", rep.Results[0].CircuitID)
	})

	t.Run("document of the wrong shape", func(t *testing.T) {
		err := run(context.Background(), testConfig(), nil, strings.NewReader("circuits: 3\n"), &bytes.Buffer{}, logger.Discard())
		assert.ErrorIs(t, err, errBadInput)
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log, err := newLogger(logger.Config{Level: "debug", Format: "json"}, &buf)
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), runIDKey{}, "r-7")
	log.DebugContext(ctx, "batch validated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "r-7", entry["run_id"])
	assert.Equal(t, "circuitcheck", entry["component"])

	_, err = newLogger(logger.Config{Level: "loud", Format: "json"}, &buf)
	assert.Error(t, err)
	_, err = newLogger(logger.Config{Level: "info", Format: "xml"}, &buf)
	assert.Error(t, err)
}

type failingCloser struct {
	bytes.Buffer
	err error
}

func (f *failingCloser) Close() error { return f.err }

func TestWriteAndClose(t *testing.T) {
	errDisk := errors.New("disk full")

	w := &failingCloser{err: errDisk}
	err := writeAndClose(w, report{RunID: "r-1"})
	assert.ErrorIs(t, err, errDisk)
	assert.Contains(t, w.String(), `"run_id": "r-1"`)

	w = &failingCloser{}
	assert.NoError(t, writeAndClose(w, report{RunID: "r-2"}))
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.env")
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(first, []byte("CC_TEST_SITE=workshop\nCC_TEST_PANEL=P1\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte("CC_TEST_PANEL=P2\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("CC_TEST_SITE")
		os.Unsetenv("CC_TEST_PANEL")
	})

	require.NoError(t, loadEnvFiles(""))
	require.NoError(t, loadEnvFiles(first+" , "+second))
	assert.Equal(t, "workshop", os.Getenv("CC_TEST_SITE"))
	assert.Equal(t, "P2", os.Getenv("CC_TEST_PANEL"))

	assert.Error(t, loadEnvFiles(filepath.Join(dir, "missing.env")))
}
