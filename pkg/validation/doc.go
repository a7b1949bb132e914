// Package validation is the orchestration layer of circuitcheck. An Engine
// runs the rule set from package rules against a circuit, using the cable,
// protection and standards reference data, and returns a Result with one
// verdict per rule.
//
// # Pipeline
//
// ValidateCircuit performs, in order:
//
//  1. Optional input range checks (ValidateInputValue) for every present
//     field. Out-of-range values become Result.InputWarnings and never block
//     rule evaluation.
//  2. Fingerprinting of the canonical field values (not the circuit ID).
//  3. A cache lookup when UseCache is set. Hits return a copy marked
//     FromCache with the caller's circuit ID.
//  4. Rule evaluation in fixed order. A rule whose fields are missing yields
//     a skipped verdict with a "missing ..." reason; skipped verdicts never
//     affect the overall status.
//  5. Aggregation and caching in a bounded LRU.
//
// # Usage
//
//	engine, err := validation.NewDefault(validation.WithMaxCacheSize(500))
//	if err != nil {
//		return err
//	}
//
//	res := engine.ValidateCircuit(circuit.Circuit{
//		ID:                     "A1.3",
//		Voltage:                circuit.Some(230.0),
//		ProtectionDeviceType:   circuit.Some("MCB-B"),
//		ProtectionRatedCurrent: circuit.Some(16.0),
//		LoopImpedance:          circuit.Some(1.8),
//	}, validation.DefaultValidateOptions())
//
//	v, _ := res.Verdict("impedance.loop") // pass, limit 2.3 Ω, margin 0.5 Ω
//
// Engine is safe for concurrent use; ValidateBatch fans a slice of circuits
// out over a bounded number of goroutines.
//
// # Configuration
//
// Config is loaded with config.Load from VALIDATION_MAX_CACHE_SIZE,
// VALIDATION_USE_CACHE and VALIDATION_VALIDATE_INPUTS; NewFromConfig applies it.
package validation
