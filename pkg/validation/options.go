package validation

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/circuitcheck/pkg/rules"
)

// DefaultMaxCacheSize is the cache bound used when WithMaxCacheSize is not given.
const DefaultMaxCacheSize = 1000

// Config holds engine settings read from the environment with config.Load.
type Config struct {
	MaxCacheSize   int  `env:"VALIDATION_MAX_CACHE_SIZE" envDefault:"1000"`
	UseCache       bool `env:"VALIDATION_USE_CACHE" envDefault:"true"`
	ValidateInputs bool `env:"VALIDATION_VALIDATE_INPUTS" envDefault:"true"`
}

// ValidateOptions returns the per-call flags described by the config.
func (c Config) ValidateOptions() ValidateOptions {
	return ValidateOptions{UseCache: c.UseCache, ValidateInputs: c.ValidateInputs}
}

// ValidateOptions are the per-call flags of ValidateCircuit.
type ValidateOptions struct {
	UseCache       bool
	ValidateInputs bool
}

// DefaultValidateOptions enables both the cache and input range checks.
func DefaultValidateOptions() ValidateOptions {
	return ValidateOptions{UseCache: true, ValidateInputs: true}
}

// Option configures an Engine at construction.
type Option func(*options)

type options struct {
	maxCacheSize int
	rules        []rules.Rule
	rulesSet     bool
	logger       *slog.Logger
	now          func() time.Time
}

func defaultOptions() *options {
	return &options{
		maxCacheSize: DefaultMaxCacheSize,
		now:          time.Now,
	}
}

// WithMaxCacheSize bounds the number of cached results. Non-positive values
// make New fail with ErrInvalidCacheSize.
func WithMaxCacheSize(n int) Option {
	return func(o *options) { o.maxCacheSize = n }
}

// WithRules replaces the default rule set. Rules run in the given order.
func WithRules(rs ...rules.Rule) Option {
	return func(o *options) {
		o.rules = append([]rules.Rule(nil), rs...)
		o.rulesSet = true
	}
}

// WithLogger sets the engine logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithClock overrides the time source used for Result.ComputedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
