package rules

import (
	"fmt"

	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
)

// InsulationResistance checks the measured insulation resistance against the
// minimum for the circuit's voltage class.
type InsulationResistance struct{ descriptor }

func NewInsulationResistance() InsulationResistance {
	return InsulationResistance{descriptor{
		id:          "insulation.resistance",
		description: "Insulation resistance must meet the minimum for the voltage class",
		domain:      DomainInsulation,
		fields: []circuit.Field{
			circuit.FieldInsulationResistance,
			circuit.FieldVoltage,
		},
	}}
}

func (r InsulationResistance) Evaluate(c circuit.Circuit, libs Libraries) Verdict {
	riso := c.InsulationResistance.OrElse(0)
	voltage := c.Voltage.OrElse(0)

	req, ok := libs.Standards.MinInsulationResistance(voltage)
	if !ok {
		return r.skip(fmt.Sprintf("no insulation requirement for %.4g V", voltage))
	}

	if riso < req.MinResistance {
		return r.verdict(false,
			fmt.Sprintf("insulation resistance %.4g MΩ below %.4g MΩ (%s, test at %g V)", riso, req.MinResistance, req.Class, req.TestVoltage),
			"MΩ", riso, req.MinResistance, riso-req.MinResistance)
	}
	return r.verdict(true,
		fmt.Sprintf("insulation resistance %.4g MΩ meets %.4g MΩ (%s, test at %g V)", riso, req.MinResistance, req.Class, req.TestVoltage),
		"MΩ", riso, req.MinResistance, riso-req.MinResistance)
}
