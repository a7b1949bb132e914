package rules

import (
	"math"
	"strings"
	"time"

	"github.com/dmitrymomot/circuitcheck/pkg/cable"
	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
	"github.com/dmitrymomot/circuitcheck/pkg/protection"
	"github.com/dmitrymomot/circuitcheck/pkg/standards"
)

// Status is the outcome of one rule on one circuit.
type Status string

const (
	StatusPass    Status = "pass"
	StatusFail    Status = "fail"
	StatusSkipped Status = "skipped"
)

// Domain tags the engineering area a rule belongs to.
type Domain string

const (
	DomainCable       Domain = "cable"
	DomainProtection  Domain = "protection"
	DomainImpedance   Domain = "impedance"
	DomainInsulation  Domain = "insulation"
	DomainVoltageDrop Domain = "voltage-drop"
)

// Verdict is the result of evaluating one rule. Margin is positive when the
// measurement is on the safe side of the limit.
type Verdict struct {
	RuleID   string               `json:"rule_id"`
	Status   Status               `json:"status"`
	Message  string               `json:"message"`
	Measured circuit.Opt[float64] `json:"measured"`
	Limit    circuit.Opt[float64] `json:"limit"`
	Margin   circuit.Opt[float64] `json:"margin"`
	Unit     string               `json:"unit,omitempty"`
	Reason   string               `json:"reason,omitempty"`
}

// Rule is a single stateless compliance check.
type Rule interface {
	ID() string
	Description() string
	Domain() Domain
	// Requires returns the fields the circuit lacks for this rule. A field
	// counts as lacking when absent, blank or not a finite number. The rule
	// is applicable when the result is empty.
	Requires(c circuit.Circuit) []circuit.Field
	// Evaluate must only be called for applicable circuits. It returns a
	// skipped verdict when the libraries have no data for the circuit.
	Evaluate(c circuit.Circuit, libs Libraries) Verdict
}

// FieldReader is implemented by rules that can name every field they read,
// preconditions and optional inputs alike.
type FieldReader interface {
	Reads() []circuit.Field
}

// CableLibrary is the cable data a rule may consult.
type CableLibrary interface {
	Cable(cableType string) (cable.Descriptor, bool)
	BaseAmpacity(cableType string, gauge float64, method cable.InstallationMethod, loaded int) (float64, bool)
	TemperatureFactor(insulation cable.Insulation, ambient float64) (float64, bool)
}

// ProtectionLibrary is the protective device data a rule may consult.
type ProtectionLibrary interface {
	Device(deviceType string, rated float64) (protection.Device, bool)
	TripCurrent(deviceType string, rated float64, within time.Duration) (float64, bool)
}

// StandardsData is the set of regulation thresholds a rule may consult.
type StandardsData interface {
	PhaseToEarthVoltage(voltage float64, phases int) float64
	RequiredDisconnectionTime(u0 float64, finalCircuit bool) (time.Duration, bool)
	MaxLoopImpedance(u0, tripCurrent float64) (float64, bool)
	MinInsulationResistance(voltage float64) (standards.InsulationRequirement, bool)
	RCDLimits(kind standards.RCDKind) (standards.RCDLimit, bool)
	MaxVoltageDrop(loadType string) float64
}

// Libraries bundles the reference data handed to every rule.
type Libraries struct {
	Cables     CableLibrary
	Protection ProtectionLibrary
	Standards  StandardsData
}

// descriptor carries the identity and field preconditions shared by all rules.
type descriptor struct {
	id          string
	description string
	domain      Domain
	fields      []circuit.Field
	optional    []circuit.Field
}

func (d descriptor) ID() string          { return d.id }
func (d descriptor) Description() string { return d.description }
func (d descriptor) Domain() Domain      { return d.domain }

// Fields returns the fields the rule reads as preconditions.
func (d descriptor) Fields() []circuit.Field {
	out := make([]circuit.Field, len(d.fields))
	copy(out, d.fields)
	return out
}

// Reads returns the precondition fields followed by the optional ones.
func (d descriptor) Reads() []circuit.Field {
	return append(d.Fields(), d.optional...)
}

func (d descriptor) Requires(c circuit.Circuit) []circuit.Field {
	var out []circuit.Field
	for _, f := range d.fields {
		v, ok := c.Value(f)
		if !ok || !usable(v) {
			out = append(out, f)
		}
	}
	return out
}

func (d descriptor) skip(reason string) Verdict {
	return Verdict{
		RuleID:  d.id,
		Status:  StatusSkipped,
		Message: reason,
		Reason:  reason,
	}
}

// verdict builds a pass or fail verdict from a margin.
func (d descriptor) verdict(pass bool, msg, unit string, measured, limit, margin float64) Verdict {
	status := StatusFail
	if pass {
		status = StatusPass
	}
	return Verdict{
		RuleID:   d.id,
		Status:   status,
		Message:  msg,
		Measured: circuit.Some(round(measured)),
		Limit:    circuit.Some(round(limit)),
		Margin:   circuit.Some(round(margin)),
		Unit:     unit,
	}
}

func usable(v any) bool {
	switch x := v.(type) {
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	case string:
		return strings.TrimSpace(x) != ""
	default:
		return true
	}
}

// round trims float noise so that margins such as 2.3-1.8 read 0.5.
func round(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// SkipReason formats the reason used when a rule's preconditions are unmet.
func SkipReason(missing []circuit.Field) string {
	names := make([]string, len(missing))
	for i, f := range missing {
		names[i] = string(f)
	}
	return "missing " + strings.Join(names, ", ")
}
