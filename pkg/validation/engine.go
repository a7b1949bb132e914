package validation

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/dmitrymomot/circuitcheck/pkg/cache"
	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
	"github.com/dmitrymomot/circuitcheck/pkg/fingerprint"
	"github.com/dmitrymomot/circuitcheck/pkg/logger"
	"github.com/dmitrymomot/circuitcheck/pkg/rules"
)

// Engine validates circuits against a fixed rule set and caches results by
// circuit fingerprint. It is safe for concurrent use.
type Engine struct {
	libs  rules.Libraries
	rules []rules.Rule
	keys  []circuit.Field
	cache *cache.LRU[string, Result]
	log   *slog.Logger
	now   func() time.Time
}

// New creates an Engine over the given reference libraries.
// It fails only on misconfiguration: a nil library, a non-positive cache
// size or an invalid rule set.
func New(cables rules.CableLibrary, prot rules.ProtectionLibrary, std rules.StandardsData, opts ...Option) (*Engine, error) {
	switch {
	case cables == nil:
		return nil, ErrMissingCableLibrary
	case prot == nil:
		return nil, ErrMissingProtectionLibrary
	case std == nil:
		return nil, ErrMissingStandardsData
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.maxCacheSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCacheSize, o.maxCacheSize)
	}

	set := rules.DefaultSet()
	if o.rulesSet {
		set = o.rules
	}
	seen := make(map[string]struct{}, len(set))
	for i, r := range set {
		if r == nil {
			return nil, fmt.Errorf("%w at position %d", ErrNilRule, i)
		}
		if _, dup := seen[r.ID()]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRuleID, r.ID())
		}
		seen[r.ID()] = struct{}{}
	}

	log := o.logger
	if log == nil {
		log = logger.Discard()
	}
	log = log.With(logger.Component("validation"))

	e := &Engine{
		libs:  rules.Libraries{Cables: cables, Protection: prot, Standards: std},
		rules: set,
		keys:  keyFields(set),
		cache: cache.New[string, Result](o.maxCacheSize),
		log:   log,
		now:   o.now,
	}
	e.cache.SetEvictCallback(func(fp string, r Result) {
		e.log.Debug("cached result evicted", logger.Fingerprint(fp), logger.CircuitID(r.CircuitID))
	})
	return e, nil
}

// NewFromConfig is New with the cache size taken from cfg. Options given
// after cfg take precedence.
func NewFromConfig(cfg Config, cables rules.CableLibrary, prot rules.ProtectionLibrary, std rules.StandardsData, opts ...Option) (*Engine, error) {
	all := append([]Option{WithMaxCacheSize(cfg.MaxCacheSize)}, opts...)
	return New(cables, prot, std, all...)
}

// ValidateCircuit runs every rule against c and aggregates the verdicts.
// Rules whose preconditions are unmet are reported as skipped, never failed.
// The call never panics on bad data: a rule that panics is reported as
// skipped with a "rule error" reason.
func (e *Engine) ValidateCircuit(c circuit.Circuit, opts ValidateOptions) Result {
	var warnings []InputWarning
	if opts.ValidateInputs {
		warnings = e.checkInputs(c)
	}

	// Rules see text fields in canonical form, so circuits sharing a
	// fingerprint also share every verdict message.
	norm := c.Normalized()
	fp := fingerprint.Generate(norm.CanonicalOf(e.keys))

	if opts.UseCache {
		if cached, ok := e.cache.Get(fp); ok {
			e.log.Debug("validation cache hit", logger.CircuitID(c.ID), logger.Fingerprint(fp))
			res := cached.clone()
			res.CircuitID = c.ID
			res.InputWarnings = warnings
			res.FromCache = true
			return res
		}
		e.log.Debug("validation cache miss", logger.CircuitID(c.ID), logger.Fingerprint(fp))
	}

	verdicts := make([]rules.Verdict, 0, len(e.rules))
	for _, r := range e.rules {
		verdicts = append(verdicts, e.run(r, norm))
	}
	status, summary := summarize(verdicts)

	res := Result{
		CircuitID:     c.ID,
		Status:        status,
		Verdicts:      verdicts,
		Summary:       summary,
		InputWarnings: warnings,
		Fingerprint:   fp,
		ComputedAt:    e.now().UTC(),
	}
	if opts.UseCache {
		e.cache.Put(fp, res.clone())
	}
	return res
}

// run evaluates one rule, turning unmet preconditions and panics into
// skipped verdicts.
func (e *Engine) run(r rules.Rule, c circuit.Circuit) (v rules.Verdict) {
	if missing := r.Requires(c); len(missing) > 0 {
		reason := rules.SkipReason(missing)
		e.log.Debug("rule skipped", logger.CircuitID(c.ID), logger.RuleID(r.ID()), slog.String("reason", reason))
		return skipped(r.ID(), reason)
	}

	defer func() {
		if p := recover(); p != nil {
			e.log.Warn("rule panicked", logger.CircuitID(c.ID), logger.RuleID(r.ID()), slog.Any("panic", p))
			v = skipped(r.ID(), fmt.Sprintf("rule error: %v", p))
		}
	}()

	v = r.Evaluate(c, e.libs)
	if v.RuleID == "" {
		v.RuleID = r.ID()
	}
	switch v.Status {
	case rules.StatusPass, rules.StatusFail:
	case rules.StatusSkipped:
		e.log.Debug("rule skipped", logger.CircuitID(c.ID), logger.RuleID(r.ID()), slog.String("reason", v.Reason))
	default:
		e.log.Warn("rule returned unknown status", logger.CircuitID(c.ID), logger.RuleID(r.ID()), slog.String("status", string(v.Status)))
		return skipped(r.ID(), fmt.Sprintf("rule error: unknown status %q", v.Status))
	}
	return v
}

// keyFields returns the fields the fingerprint covers: those read by the
// rule set when every rule can name them, otherwise all fields.
func keyFields(set []rules.Rule) []circuit.Field {
	var keys []circuit.Field
	for _, r := range set {
		fr, ok := r.(rules.FieldReader)
		if !ok {
			return circuit.Fields()
		}
		for _, f := range fr.Reads() {
			if !slices.Contains(keys, f) {
				keys = append(keys, f)
			}
		}
	}
	return keys
}

func skipped(ruleID, reason string) rules.Verdict {
	return rules.Verdict{
		RuleID:  ruleID,
		Status:  rules.StatusSkipped,
		Message: reason,
		Reason:  reason,
	}
}

func (e *Engine) checkInputs(c circuit.Circuit) []InputWarning {
	var warnings []InputWarning
	for _, f := range c.Present() {
		v, _ := c.Value(f)
		if chk := ValidateInputValue(f, v); !chk.Valid {
			warnings = append(warnings, InputWarning{Field: f, Message: chk.Message})
		}
	}
	if len(warnings) > 0 {
		e.log.Warn("circuit has out-of-range inputs", logger.CircuitID(c.ID), logger.Count(len(warnings)))
	}
	return warnings
}

// CanExecuteRule reports whether c carries every field r needs.
func (e *Engine) CanExecuteRule(r rules.Rule, c circuit.Circuit) bool {
	return len(r.Requires(c)) == 0
}

// ClearCache drops every cached result.
func (e *Engine) ClearCache() {
	e.cache.Clear()
}

// CacheSize returns the number of cached results.
func (e *Engine) CacheSize() int {
	return e.cache.Len()
}

// CacheStats returns cache hit, miss and eviction counters.
func (e *Engine) CacheStats() cache.Stats {
	return e.cache.Stats()
}

// Rules returns a copy of the rule set in evaluation order.
func (e *Engine) Rules() []rules.Rule {
	return slices.Clone(e.rules)
}
