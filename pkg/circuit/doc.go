// Package circuit defines the Circuit record validated by the engine.
//
// A Circuit carries a stable identifier and a set of optional engineering
// parameters (voltage, current, cable data, protective device, measured loop
// impedance and so on). Each optional parameter is an Opt[T], which keeps
// "not recorded" distinct from a zero measurement:
//
//	c := circuit.Circuit{
//		ID:                     "A1.3",
//		Voltage:                circuit.Some(230.0),
//		ProtectionDeviceType:   circuit.Some("MCB"),
//		ProtectionRatedCurrent: circuit.Some(16.0),
//	}
//
//	if v, ok := c.LoopImpedance.Get(); ok {
//		// measured
//	}
//
// Fields are addressed generically through the Field enumeration, which
// drives presence checks (Has, Missing), input range checks and the canonical
// encoding used for result fingerprints.
//
// Opt implements JSON and YAML (un)marshalling: null and missing keys decode
// to an absent value.
package circuit
