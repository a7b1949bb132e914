package rules

import (
	"fmt"

	"github.com/dmitrymomot/circuitcheck/pkg/cable"
	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
)

// overloadFactor bounds the conventional trip current I2 relative to Iz.
const overloadFactor = 1.45

// CableAmpacity checks that the protective device rating does not exceed the
// corrected current-carrying capacity of the cable (In <= Iz). When the
// device type is known it also checks I2 <= 1.45 × Iz.
type CableAmpacity struct{ descriptor }

func NewCableAmpacity() CableAmpacity {
	return CableAmpacity{descriptor{
		id:          "cable.ampacity",
		description: "Protective device rating must not exceed the cable's current-carrying capacity",
		domain:      DomainCable,
		fields: []circuit.Field{
			circuit.FieldCableType,
			circuit.FieldCableGauge,
			circuit.FieldProtectionRatedCurrent,
		},
		optional: []circuit.Field{
			circuit.FieldPhaseCount,
			circuit.FieldInstallationMethod,
			circuit.FieldAmbientTemperature,
			circuit.FieldProtectionDeviceType,
		},
	}}
}

func (r CableAmpacity) Evaluate(c circuit.Circuit, libs Libraries) Verdict {
	cableType := c.CableType.OrElse("")
	gauge := c.CableGauge.OrElse(0)
	in := c.ProtectionRatedCurrent.OrElse(0)

	desc, ok := libs.Cables.Cable(cableType)
	if !ok {
		return r.skip(fmt.Sprintf("no cable data for cable type %q", cableType))
	}

	loaded := 2
	if c.PhaseCount.OrElse(1) == 3 {
		loaded = 3
	}
	method := cable.InstallationMethod(circuit.NormalizeCode(c.InstallationMethod.OrElse("")))

	iz, ok := libs.Cables.BaseAmpacity(cableType, gauge, method, loaded)
	if !ok {
		return r.skip(fmt.Sprintf("no ampacity data for cable type %s %g mm² (method %s, %d loaded conductors)",
			desc.Name, gauge, methodName(method), loaded))
	}

	if ambient, ok := c.AmbientTemperature.Get(); ok && usable(ambient) {
		factor, ok := libs.Cables.TemperatureFactor(desc.Insulation, ambient)
		if !ok {
			return r.skip(fmt.Sprintf("no temperature correction for %s insulation at %g °C", desc.Insulation, ambient))
		}
		iz *= factor
	}

	if in > iz {
		return r.verdict(false,
			fmt.Sprintf("rated current %.4g A exceeds cable capacity %.4g A", in, iz),
			"A", in, iz, iz-in)
	}

	if deviceType, ok := c.ProtectionDeviceType.Get(); ok {
		if dev, ok := libs.Protection.Device(deviceType, in); ok {
			i2, limit := dev.ConventionalTripCurrent, overloadFactor*iz
			if i2 > limit {
				return r.verdict(false,
					fmt.Sprintf("conventional trip current %.4g A exceeds %.4g A (1.45 × Iz)", i2, limit),
					"A", i2, limit, limit-i2)
			}
		}
	}

	return r.verdict(true,
		fmt.Sprintf("rated current %.4g A within cable capacity %.4g A", in, iz),
		"A", in, iz, iz-in)
}

func methodName(m cable.InstallationMethod) string {
	if m == "" {
		return "default"
	}
	return string(m)
}
