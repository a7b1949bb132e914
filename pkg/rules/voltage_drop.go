package rules

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
)

// VoltageDrop checks the calculated voltage drop along the cable against the
// limit for the load type:
//
//	ΔU% = k · L · I · ρ · cos φ / A / U · 100
//
// with k = 2 for single-phase and √3 for three-phase circuits. A missing
// power factor counts as 1.
type VoltageDrop struct{ descriptor }

func NewVoltageDrop() VoltageDrop {
	return VoltageDrop{descriptor{
		id:          "voltage_drop",
		description: "Voltage drop along the cable must stay within the limit for the load type",
		domain:      DomainVoltageDrop,
		fields: []circuit.Field{
			circuit.FieldVoltage,
			circuit.FieldCurrent,
			circuit.FieldCableGauge,
			circuit.FieldCableType,
			circuit.FieldDistance,
		},
		optional: []circuit.Field{
			circuit.FieldPhaseCount,
			circuit.FieldPowerFactor,
			circuit.FieldLoadType,
		},
	}}
}

func (r VoltageDrop) Evaluate(c circuit.Circuit, libs Libraries) Verdict {
	voltage := c.Voltage.OrElse(0)
	current := c.Current.OrElse(0)
	gauge := c.CableGauge.OrElse(0)
	cableType := c.CableType.OrElse("")
	distance := c.Distance.OrElse(0)

	desc, ok := libs.Cables.Cable(cableType)
	if !ok {
		return r.skip(fmt.Sprintf("no cable data for cable type %q", cableType))
	}
	if voltage <= 0 || gauge <= 0 {
		return r.skip("voltage and cable gauge must be positive")
	}

	k := 2.0
	if c.PhaseCount.OrElse(1) == 3 {
		k = math.Sqrt(3)
	}
	cosPhi := c.PowerFactor.OrElse(1)
	if !usable(cosPhi) {
		cosPhi = 1
	}

	drop := k * distance * current * desc.Resistivity * cosPhi / gauge
	percent := drop / voltage * 100
	limit := libs.Standards.MaxVoltageDrop(c.LoadType.OrElse(""))

	if percent > limit {
		return r.verdict(false,
			fmt.Sprintf("voltage drop %.3g %% (%.3g V) exceeds %.3g %%", percent, drop, limit),
			"%", percent, limit, limit-percent)
	}
	return r.verdict(true,
		fmt.Sprintf("voltage drop %.3g %% (%.3g V) within %.3g %%", percent, drop, limit),
		"%", percent, limit, limit-percent)
}
