// Command circuitcheck validates a batch of circuit measurements and prints
// one JSON result per circuit. A malformed value is dropped from its circuit
// and reported as an input warning; the rest of the batch is unaffected.
//
// Usage:
//
//	circuitcheck [-format yaml|json] [-out results.json] [-fail] circuits.yaml
//
// With -fail the exit status is 2 when a circuit fails or an input entry is
// rejected.
//
// With no file argument (or "-") circuits are read from stdin. Settings come
// from the environment (and an optional .env file):
//
//	LOG_LEVEL                   debug|info|warn|error (default info)
//	LOG_FORMAT                  text|json (default text)
//	VALIDATION_MAX_CACHE_SIZE   result cache bound (default 1000)
//	VALIDATION_USE_CACHE        reuse results for identical circuits (default true)
//	VALIDATION_VALIDATE_INPUTS  attach input range warnings (default true)
//	CIRCUITCHECK_WORKERS        concurrent validations (default 4)
//	CIRCUITCHECK_TABLES_DIR     directory with cables/protection tables
//	CIRCUITCHECK_ENV_FILE       comma separated .env files to load instead of .env
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/circuitcheck/pkg/config"
	"github.com/dmitrymomot/circuitcheck/pkg/logger"
)

func main() {
	if err := loadEnvFiles(os.Getenv("CIRCUITCHECK_ENV_FILE")); err != nil {
		fmt.Fprintf(os.Stderr, "circuitcheck: %v\n", err)
		os.Exit(1)
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "circuitcheck: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "circuitcheck: %v\n", err)
		os.Exit(1)
	}
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, cfg, os.Args[1:], os.Stdin, os.Stdout, log)
	switch {
	case err == nil:
	case errors.Is(err, errCircuitsFailed):
		stop()
		os.Exit(2)
	default:
		log.Error("circuitcheck failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}
