package rules

// DefaultSet returns the standard rules in evaluation order. The slice is
// fresh on each call.
func DefaultSet() []Rule {
	return []Rule{
		NewCableAmpacity(),
		NewDesignCurrent(),
		NewLoopImpedance(),
		NewInsulationResistance(),
		NewRCDTripTime(),
		NewRCDTripCurrent(),
		NewVoltageDrop(),
	}
}
