// Package protection provides the protective device library: rated-current
// series, the current that operates a device within a required disconnection
// time, and the disconnection time permitted for the protected circuit.
//
// Breakers (MCB/RCBO, characteristics B, C and D) trip magnetically at a fixed
// multiple of the rated current. Fuses (gG) are described by tabulated trip
// currents for a small number of operating times.
//
//	lib, _ := protection.LoadDefault()
//
//	dev, ok := lib.Device("MCB", 16) // MCB is an alias of MCB-B
//	if ok {
//		ia, _ := lib.TripCurrent("MCB", 16, dev.MaxDisconnectionTime) // 80 A
//	}
//
// Lookups never return errors: an unknown device type or a rated current that
// is not in the series yields ok == false.
package protection
