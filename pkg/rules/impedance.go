package rules

import (
	"fmt"

	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
)

// LoopImpedance checks the measured earth fault loop impedance Zs against the
// limit that makes the protective device disconnect within the required time.
type LoopImpedance struct{ descriptor }

func NewLoopImpedance() LoopImpedance {
	return LoopImpedance{descriptor{
		id:          "impedance.loop",
		description: "Earth fault loop impedance must allow disconnection within the required time",
		domain:      DomainImpedance,
		fields: []circuit.Field{
			circuit.FieldLoopImpedance,
			circuit.FieldVoltage,
			circuit.FieldProtectionDeviceType,
			circuit.FieldProtectionRatedCurrent,
		},
		optional: []circuit.Field{circuit.FieldPhaseCount},
	}}
}

func (r LoopImpedance) Evaluate(c circuit.Circuit, libs Libraries) Verdict {
	zs := c.LoopImpedance.OrElse(0)
	deviceType := c.ProtectionDeviceType.OrElse("")
	in := c.ProtectionRatedCurrent.OrElse(0)
	u0 := libs.Standards.PhaseToEarthVoltage(c.Voltage.OrElse(0), c.PhaseCount.OrElse(1))

	dev, ok := libs.Protection.Device(deviceType, in)
	if !ok {
		return r.skip(fmt.Sprintf("no protection data for %s %g A", deviceType, in))
	}

	required, ok := libs.Standards.RequiredDisconnectionTime(u0, dev.FinalCircuit)
	if !ok {
		return r.skip(fmt.Sprintf("no disconnection time requirement for U0 %.4g V", u0))
	}
	within := min(dev.MaxDisconnectionTime, required)

	ia, ok := libs.Protection.TripCurrent(deviceType, in, within)
	if !ok {
		return r.skip(fmt.Sprintf("no trip current data for %s %g A within %s", dev.Type, in, within))
	}

	limit, ok := libs.Standards.MaxLoopImpedance(u0, ia)
	if !ok {
		return r.skip(fmt.Sprintf("no loop impedance limit for U0 %.4g V and Ia %.4g A", u0, ia))
	}

	if zs > limit {
		return r.verdict(false,
			fmt.Sprintf("loop impedance %.4g Ω exceeds %.4g Ω (%s %g A, %s)", zs, limit, dev.Type, in, within),
			"Ω", zs, limit, limit-zs)
	}
	return r.verdict(true,
		fmt.Sprintf("loop impedance %.4g Ω within %.4g Ω (%s %g A, %s)", zs, limit, dev.Type, in, within),
		"Ω", zs, limit, limit-zs)
}
