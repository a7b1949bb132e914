package validation

import (
	"slices"
	"time"

	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
	"github.com/dmitrymomot/circuitcheck/pkg/rules"
)

// Result is the outcome of validating one circuit.
type Result struct {
	CircuitID     string          `json:"circuit_id"`
	Status        rules.Status    `json:"status"`
	Verdicts      []rules.Verdict `json:"verdicts"`
	Summary       Summary         `json:"summary"`
	InputWarnings []InputWarning  `json:"input_warnings,omitempty"`
	Fingerprint   string          `json:"fingerprint"`
	FromCache     bool            `json:"from_cache"`
	ComputedAt    time.Time       `json:"computed_at"`
}

// Summary groups rule IDs by verdict status.
type Summary struct {
	Passed  []string      `json:"passed"`
	Failed  []string      `json:"failed"`
	Skipped []SkippedRule `json:"skipped"`
}

// SkippedRule names a skipped rule and why it was skipped.
type SkippedRule struct {
	RuleID string `json:"rule_id"`
	Reason string `json:"reason"`
}

// InputWarning is an out-of-range or malformed field value. Warnings never
// block rule evaluation.
type InputWarning struct {
	Field   circuit.Field `json:"field"`
	Message string        `json:"message"`
}

// Passed reports whether no rule failed.
func (r Result) Passed() bool {
	return r.Status == rules.StatusPass
}

// Verdict returns the verdict of the rule with the given ID.
func (r Result) Verdict(ruleID string) (rules.Verdict, bool) {
	for _, v := range r.Verdicts {
		if v.RuleID == ruleID {
			return v, true
		}
	}
	return rules.Verdict{}, false
}

// Counts returns the number of passed, failed and skipped rules.
func (s Summary) Counts() (passed, failed, skipped int) {
	return len(s.Passed), len(s.Failed), len(s.Skipped)
}

func summarize(verdicts []rules.Verdict) (rules.Status, Summary) {
	s := Summary{
		Passed:  []string{},
		Failed:  []string{},
		Skipped: []SkippedRule{},
	}
	for _, v := range verdicts {
		switch v.Status {
		case rules.StatusPass:
			s.Passed = append(s.Passed, v.RuleID)
		case rules.StatusFail:
			s.Failed = append(s.Failed, v.RuleID)
		default:
			s.Skipped = append(s.Skipped, SkippedRule{RuleID: v.RuleID, Reason: v.Reason})
		}
	}
	if len(s.Failed) > 0 {
		return rules.StatusFail, s
	}
	return rules.StatusPass, s
}

// clone copies the slices so callers cannot mutate cached entries.
func (r Result) clone() Result {
	r.Verdicts = slices.Clone(r.Verdicts)
	r.InputWarnings = slices.Clone(r.InputWarnings)
	r.Summary = Summary{
		Passed:  slices.Clone(r.Summary.Passed),
		Failed:  slices.Clone(r.Summary.Failed),
		Skipped: slices.Clone(r.Summary.Skipped),
	}
	return r
}
