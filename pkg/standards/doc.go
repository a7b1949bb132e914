// Package standards holds the regulation thresholds used by the circuit
// rules: required disconnection times, the maximum earth fault loop impedance
// derived from a device trip current, minimum insulation resistance by
// voltage class, RCD trip windows and voltage-drop limits.
//
// Data has no mutable state. Default returns the thresholds of IEC 60364 as
// adopted by DIN VDE 0100; fields can be overridden for other national
// variants:
//
//	std := standards.Default()
//	zs, _ := std.MaxLoopImpedance(230, 80) // 2.3 Ω for a B16 breaker
package standards
