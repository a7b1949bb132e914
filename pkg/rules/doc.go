// Package rules contains the circuit compliance rules.
//
// Every rule implements Rule: it names the circuit fields it needs (Requires)
// and evaluates a circuit against the cable, protection and standards
// reference data bundled in Libraries. Rules hold no state, so a rule value
// can be shared freely and tested on its own:
//
//	r := rules.NewLoopImpedance()
//	if missing := r.Requires(c); len(missing) == 0 {
//		v := r.Evaluate(c, libs)
//	}
//
// A rule whose reference lookup has no data for the circuit returns a skipped
// verdict with a "no ... data" reason instead of failing. DefaultSet returns
// the rules in the order the validation engine runs them; new rules are added
// there without touching the engine.
package rules
