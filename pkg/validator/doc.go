// Package validator provides small, composable validation rules for
// field-entry values: numeric ranges, finiteness, enumerations and
// non-blank strings.
//
// Each helper returns a Rule that pairs a Check function with a
// ValidationError carrying the field name, a message and a translation key.
// ApplyFirst runs the rules in order and returns the first failure as
// ValidationErrors, which implements error.
//
//	err := validator.ApplyFirst(
//	    validator.Finite("voltage", v),
//	    validator.RangeNum("voltage", v, 0, 1000),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // verrs[0].Field, verrs[0].Message
//	}
//
// Rules hold no state beyond their captured arguments, so the package is
// goroutine-safe.
package validator
