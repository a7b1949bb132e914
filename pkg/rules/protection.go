package rules

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
	"github.com/dmitrymomot/circuitcheck/pkg/standards"
)

// DesignCurrent checks that the load current does not exceed the protective
// device rating (Ib <= In).
type DesignCurrent struct{ descriptor }

func NewDesignCurrent() DesignCurrent {
	return DesignCurrent{descriptor{
		id:          "protection.design_current",
		description: "Load current must not exceed the protective device rating",
		domain:      DomainProtection,
		fields: []circuit.Field{
			circuit.FieldCurrent,
			circuit.FieldProtectionRatedCurrent,
		},
	}}
}

func (r DesignCurrent) Evaluate(c circuit.Circuit, _ Libraries) Verdict {
	ib := c.Current.OrElse(0)
	in := c.ProtectionRatedCurrent.OrElse(0)

	if ib > in {
		return r.verdict(false, fmt.Sprintf("load current %.4g A exceeds rated current %.4g A", ib, in), "A", ib, in, in-ib)
	}
	return r.verdict(true, fmt.Sprintf("load current %.4g A within rated current %.4g A", ib, in), "A", ib, in, in-ib)
}

// RCDTripTime checks the RCD trip time measured at IΔn against the window for
// the RCD kind (general or selective).
type RCDTripTime struct{ descriptor }

func NewRCDTripTime() RCDTripTime {
	return RCDTripTime{descriptor{
		id:          "rcd.trip_time",
		description: "RCD must trip at its rated residual current within the permitted time",
		domain:      DomainProtection,
		fields: []circuit.Field{
			circuit.FieldRCDTripTime,
			circuit.FieldRCDRatedResidualCurrent,
		},
		optional: []circuit.Field{circuit.FieldRCDType},
	}}
}

func (r RCDTripTime) Evaluate(c circuit.Circuit, libs Libraries) Verdict {
	rcdType := c.RCDType.OrElse("")
	kind, ok := standards.ParseRCDKind(rcdType)
	if !ok {
		return r.skip(fmt.Sprintf("no RCD limits for RCD type %q", rcdType))
	}
	limits, ok := libs.Standards.RCDLimits(kind)
	if !ok {
		return r.skip(fmt.Sprintf("no RCD limits for %s RCD", kind))
	}

	tripMs := c.RCDTripTime.OrElse(0)
	maxMs := float64(limits.MaxTripTime.Milliseconds())
	minMs := float64(limits.MinTripTime.Milliseconds())

	margin := maxMs - tripMs
	if minMs > 0 {
		margin = math.Min(margin, tripMs-minMs)
	}

	switch {
	case tripMs > maxMs:
		return r.verdict(false, fmt.Sprintf("%s RCD tripped after %.4g ms, limit %.4g ms", kind, tripMs, maxMs), "ms", tripMs, maxMs, margin)
	case tripMs < minMs:
		return r.verdict(false, fmt.Sprintf("%s RCD tripped after %.4g ms, below minimum delay %.4g ms", kind, tripMs, minMs), "ms", tripMs, maxMs, margin)
	default:
		return r.verdict(true, fmt.Sprintf("%s RCD tripped after %.4g ms, limit %.4g ms", kind, tripMs, maxMs), "ms", tripMs, maxMs, margin)
	}
}

// RCDTripCurrent checks that the measured residual trip current lies between
// 0.5 and 1.0 × IΔn.
type RCDTripCurrent struct{ descriptor }

func NewRCDTripCurrent() RCDTripCurrent {
	return RCDTripCurrent{descriptor{
		id:          "rcd.trip_current",
		description: "RCD must trip between half and the full rated residual current",
		domain:      DomainProtection,
		fields: []circuit.Field{
			circuit.FieldRCDTripCurrent,
			circuit.FieldRCDRatedResidualCurrent,
		},
		optional: []circuit.Field{circuit.FieldRCDType},
	}}
}

func (r RCDTripCurrent) Evaluate(c circuit.Circuit, libs Libraries) Verdict {
	rcdType := c.RCDType.OrElse("")
	kind, ok := standards.ParseRCDKind(rcdType)
	if !ok {
		return r.skip(fmt.Sprintf("no RCD limits for RCD type %q", rcdType))
	}
	limits, ok := libs.Standards.RCDLimits(kind)
	if !ok {
		return r.skip(fmt.Sprintf("no RCD limits for %s RCD", kind))
	}

	idn := c.RCDRatedResidualCurrent.OrElse(0)
	if idn <= 0 {
		return r.skip("rated residual current must be positive")
	}
	trip := c.RCDTripCurrent.OrElse(0)
	lo := limits.MinTripFraction * idn
	hi := limits.MaxTripFraction * idn
	margin := math.Min(hi-trip, trip-lo)

	switch {
	case trip > hi:
		return r.verdict(false, fmt.Sprintf("RCD tripped at %.4g mA, above %.4g mA", trip, hi), "mA", trip, hi, margin)
	case trip < lo:
		return r.verdict(false, fmt.Sprintf("RCD tripped at %.4g mA, below %.4g mA", trip, lo), "mA", trip, hi, margin)
	default:
		return r.verdict(true, fmt.Sprintf("RCD tripped at %.4g mA, within %.4g to %.4g mA", trip, lo, hi), "mA", trip, hi, margin)
	}
}
