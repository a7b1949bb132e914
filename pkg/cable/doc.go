// Package cable provides the cable reference library: conductor descriptors,
// tabulated current-carrying capacities (ampacity) per installation method and
// number of loaded conductors, and ambient temperature correction factors.
//
// A Library is built once from Tables and is read-only afterwards, so a single
// instance can be shared by any number of goroutines. Every lookup reports a
// miss with a false second return value instead of an error; callers treat a
// miss as "no data" and skip the dependent check.
//
//	lib, err := cable.LoadDefault()
//	if err != nil {
//		// packaged tables are broken
//	}
//
//	iz, ok := lib.BaseAmpacity("NYM-J", 2.5, cable.MethodC, 2) // 27 A
//
// The packaged tables (tables.yaml) cover common PVC and XLPE copper cables
// and PVC aluminium cables for 30 °C ambient air. Hosts can replace them with
// Load, which reads YAML or JSON through package refdata.
package cable
