package circuit

import (
	"slices"
	"strconv"
	"strings"
)

// Circuit is a single branch circuit under test. Every field except ID may be
// absent; absence is a valid state.
type Circuit struct {
	ID string `json:"id" yaml:"id"`

	Voltage                Opt[float64] `json:"voltage" yaml:"voltage,omitempty"`
	Current                Opt[float64] `json:"current" yaml:"current,omitempty"`
	CableGauge             Opt[float64] `json:"cableGauge" yaml:"cableGauge,omitempty"`
	CableType              Opt[string]  `json:"cableType" yaml:"cableType,omitempty"`
	Distance               Opt[float64] `json:"distance" yaml:"distance,omitempty"`
	ProtectionRatedCurrent Opt[float64] `json:"protectionRatedCurrent" yaml:"protectionRatedCurrent,omitempty"`
	ProtectionDeviceType   Opt[string]  `json:"protectionDeviceType" yaml:"protectionDeviceType,omitempty"`
	PhaseCount             Opt[int]     `json:"phaseCount" yaml:"phaseCount,omitempty"`
	LoadType               Opt[string]  `json:"loadType" yaml:"loadType,omitempty"`
	LoopImpedance          Opt[float64] `json:"loopImpedance" yaml:"loopImpedance,omitempty"`
	AmbientTemperature     Opt[float64] `json:"ambientTemperature" yaml:"ambientTemperature,omitempty"`
	PowerFactor            Opt[float64] `json:"powerFactor" yaml:"powerFactor,omitempty"`

	InstallationMethod      Opt[string]  `json:"installationMethod" yaml:"installationMethod,omitempty"`
	InsulationResistance    Opt[float64] `json:"insulationResistance" yaml:"insulationResistance,omitempty"`
	RCDRatedResidualCurrent Opt[float64] `json:"rcdRatedResidualCurrent" yaml:"rcdRatedResidualCurrent,omitempty"`
	RCDTripTime             Opt[float64] `json:"rcdTripTime" yaml:"rcdTripTime,omitempty"`
	RCDTripCurrent          Opt[float64] `json:"rcdTripCurrent" yaml:"rcdTripCurrent,omitempty"`
	RCDType                 Opt[string]  `json:"rcdType" yaml:"rcdType,omitempty"`
}

// Has reports whether field f is present. Unknown fields are never present.
func (c Circuit) Has(f Field) bool {
	_, ok := c.Value(f)
	return ok
}

// Value returns the raw value of field f when present.
func (c Circuit) Value(f Field) (any, bool) {
	switch f {
	case FieldVoltage:
		return unwrap(c.Voltage)
	case FieldCurrent:
		return unwrap(c.Current)
	case FieldCableGauge:
		return unwrap(c.CableGauge)
	case FieldCableType:
		return unwrap(c.CableType)
	case FieldDistance:
		return unwrap(c.Distance)
	case FieldProtectionRatedCurrent:
		return unwrap(c.ProtectionRatedCurrent)
	case FieldProtectionDeviceType:
		return unwrap(c.ProtectionDeviceType)
	case FieldPhaseCount:
		return unwrap(c.PhaseCount)
	case FieldLoadType:
		return unwrap(c.LoadType)
	case FieldLoopImpedance:
		return unwrap(c.LoopImpedance)
	case FieldAmbientTemperature:
		return unwrap(c.AmbientTemperature)
	case FieldPowerFactor:
		return unwrap(c.PowerFactor)
	case FieldInstallationMethod:
		return unwrap(c.InstallationMethod)
	case FieldInsulationResistance:
		return unwrap(c.InsulationResistance)
	case FieldRCDRatedResidualCurrent:
		return unwrap(c.RCDRatedResidualCurrent)
	case FieldRCDTripTime:
		return unwrap(c.RCDTripTime)
	case FieldRCDTripCurrent:
		return unwrap(c.RCDTripCurrent)
	case FieldRCDType:
		return unwrap(c.RCDType)
	default:
		return nil, false
	}
}

// Present returns the fields that are set, in canonical order.
func (c Circuit) Present() []Field {
	var out []Field
	for _, f := range fields {
		if c.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Missing returns those of want that are absent, preserving order.
func (c Circuit) Missing(want ...Field) []Field {
	var out []Field
	for _, f := range want {
		if !c.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

// Canonical returns "field=value" pairs for the present fields in canonical
// order. Text values are trimmed and upper-cased, so "nym-j " and "NYM-J"
// encode identically.
func (c Circuit) Canonical() []string {
	return c.CanonicalOf(fields)
}

// CanonicalOf is Canonical restricted to the given fields. The output order
// is canonical regardless of the order of only.
func (c Circuit) CanonicalOf(only []Field) []string {
	var out []string
	for _, f := range fields {
		if !slices.Contains(only, f) {
			continue
		}
		v, ok := c.Value(f)
		if !ok {
			continue
		}
		out = append(out, string(f)+"="+canonicalValue(v))
	}
	return out
}

// Normalized returns a copy with every text field in canonical form, so that
// circuits with equal Canonical encodings also read the same.
func (c Circuit) Normalized() Circuit {
	c.CableType = normalizeOpt(c.CableType)
	c.ProtectionDeviceType = normalizeOpt(c.ProtectionDeviceType)
	c.LoadType = normalizeOpt(c.LoadType)
	c.InstallationMethod = normalizeOpt(c.InstallationMethod)
	c.RCDType = normalizeOpt(c.RCDType)
	return c
}

func normalizeOpt(o Opt[string]) Opt[string] {
	if s, ok := o.Get(); ok {
		return Some(NormalizeCode(s))
	}
	return o
}

func canonicalValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case int:
		return strconv.Itoa(x)
	case string:
		return NormalizeCode(x)
	default:
		return ""
	}
}

// NormalizeCode trims and upper-cases a code such as a cable type or device type.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func unwrap[T any](o Opt[T]) (any, bool) {
	v, ok := o.Get()
	if !ok {
		return nil, false
	}
	return v, true
}
