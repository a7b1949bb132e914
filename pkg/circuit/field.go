package circuit

// Field names an optional engineering field of a Circuit.
type Field string

// Known circuit fields.
const (
	FieldVoltage                 Field = "voltage"
	FieldCurrent                 Field = "current"
	FieldCableGauge              Field = "cableGauge"
	FieldCableType               Field = "cableType"
	FieldDistance                Field = "distance"
	FieldProtectionRatedCurrent  Field = "protectionRatedCurrent"
	FieldProtectionDeviceType    Field = "protectionDeviceType"
	FieldPhaseCount              Field = "phaseCount"
	FieldLoadType                Field = "loadType"
	FieldLoopImpedance           Field = "loopImpedance"
	FieldAmbientTemperature      Field = "ambientTemperature"
	FieldPowerFactor             Field = "powerFactor"
	FieldInstallationMethod      Field = "installationMethod"
	FieldInsulationResistance    Field = "insulationResistance"
	FieldRCDRatedResidualCurrent Field = "rcdRatedResidualCurrent"
	FieldRCDTripTime             Field = "rcdTripTime"
	FieldRCDTripCurrent          Field = "rcdTripCurrent"
	FieldRCDType                 Field = "rcdType"
)

// fields lists every known field in canonical order.
var fields = []Field{
	FieldVoltage,
	FieldCurrent,
	FieldCableGauge,
	FieldCableType,
	FieldDistance,
	FieldProtectionRatedCurrent,
	FieldProtectionDeviceType,
	FieldPhaseCount,
	FieldLoadType,
	FieldLoopImpedance,
	FieldAmbientTemperature,
	FieldPowerFactor,
	FieldInstallationMethod,
	FieldInsulationResistance,
	FieldRCDRatedResidualCurrent,
	FieldRCDTripTime,
	FieldRCDTripCurrent,
	FieldRCDType,
}

// Fields returns all known fields in canonical order.
func Fields() []Field {
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// Known reports whether f is one of the enumerated fields.
func (f Field) Known() bool {
	switch f {
	case FieldVoltage, FieldCurrent, FieldCableGauge, FieldCableType,
		FieldDistance, FieldProtectionRatedCurrent, FieldProtectionDeviceType,
		FieldPhaseCount, FieldLoadType, FieldLoopImpedance,
		FieldAmbientTemperature, FieldPowerFactor, FieldInstallationMethod,
		FieldInsulationResistance, FieldRCDRatedResidualCurrent,
		FieldRCDTripTime, FieldRCDTripCurrent, FieldRCDType:
		return true
	default:
		return false
	}
}

// Textual reports whether the field carries a string value.
func (f Field) Textual() bool {
	switch f {
	case FieldCableType, FieldProtectionDeviceType, FieldLoadType,
		FieldInstallationMethod, FieldRCDType:
		return true
	default:
		return false
	}
}

func (f Field) String() string {
	return string(f)
}
