package validation

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/circuitcheck/pkg/cable"
	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
	"github.com/dmitrymomot/circuitcheck/pkg/standards"
	"github.com/dmitrymomot/circuitcheck/pkg/validator"
)

// InputCheck is the result of a single field sanity check.
type InputCheck struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// ValidateInputValue performs a rule-independent range check for one field.
// Numeric fields accept any Go number type; textual fields accept strings.
// Unknown field names are valid.
func ValidateInputValue(field circuit.Field, value any) InputCheck {
	if !field.Known() {
		return InputCheck{Valid: true}
	}
	name := string(field)

	var err error
	if field.Textual() {
		s, ok := value.(string)
		if !ok {
			return invalid(name, "must be text")
		}
		err = validator.ApplyFirst(textRules(field, s)...)
	} else {
		x, ok := circuit.AsNumber(value)
		if !ok {
			return invalid(name, "must be a number")
		}
		err = validator.ApplyFirst(append([]validator.Rule{validator.Finite(name, x)}, numericRules(field, x)...)...)
	}

	if verrs := validator.ExtractValidationErrors(err); len(verrs) > 0 {
		return invalid(verrs[0].Field, verrs[0].Message)
	}
	return InputCheck{Valid: true}
}

// DecodeWarnings turns values rejected while decoding a circuit record into
// input warnings, worded like ValidateInputValue where it has an opinion.
func DecodeWarnings(errs []circuit.FieldError) []InputWarning {
	if len(errs) == 0 {
		return nil
	}
	out := make([]InputWarning, 0, len(errs))
	for _, fe := range errs {
		msg := fe.Error()
		if chk := ValidateInputValue(fe.Field, fe.Value); !chk.Valid {
			msg = chk.Message
		}
		out = append(out, InputWarning{Field: fe.Field, Message: msg})
	}
	return out
}

func invalid(field, msg string) InputCheck {
	return InputCheck{Message: field + " " + msg}
}

func numericRules(f circuit.Field, v float64) []validator.Rule {
	name := string(f)
	switch f {
	case circuit.FieldVoltage:
		return []validator.Rule{validator.RangeNum(name, v, 0, 1000)}
	case circuit.FieldCurrent:
		return []validator.Rule{validator.RangeNum(name, v, 0, 6000)}
	case circuit.FieldCableGauge:
		return []validator.Rule{validator.PositiveNum(name, v), validator.MaxNum(name, v, 1000)}
	case circuit.FieldProtectionRatedCurrent:
		return []validator.Rule{validator.PositiveNum(name, v), validator.MaxNum(name, v, 6300)}
	case circuit.FieldPowerFactor:
		return []validator.Rule{validator.RangeNum(name, v, 0, 1)}
	case circuit.FieldAmbientTemperature:
		return []validator.Rule{validator.RangeNum(name, v, -40, 90)}
	case circuit.FieldPhaseCount:
		return []validator.Rule{validator.InList(name, v, []float64{1, 3})}
	case circuit.FieldDistance,
		circuit.FieldLoopImpedance,
		circuit.FieldInsulationResistance,
		circuit.FieldRCDRatedResidualCurrent,
		circuit.FieldRCDTripTime,
		circuit.FieldRCDTripCurrent:
		return []validator.Rule{validator.MinNum(name, v, 0)}
	default:
		return nil
	}
}

func textRules(f circuit.Field, s string) []validator.Rule {
	name := string(f)
	out := []validator.Rule{validator.NotBlank(name, s)}
	switch f {
	case circuit.FieldInstallationMethod:
		methods := cable.Methods()
		names := make([]string, len(methods))
		for i, m := range methods {
			names[i] = string(m)
		}
		out = append(out, validator.InListCaseInsensitive(name, s, names))
	case circuit.FieldLoadType:
		out = append(out, validator.InListCaseInsensitive(name, s, standards.LoadTypes()))
	case circuit.FieldRCDType:
		out = append(out, validator.Rule{
			Check: func() bool {
				_, ok := standards.ParseRCDKind(s)
				return ok
			},
			Error: validator.ValidationError{
				Field:          name,
				Message:        fmt.Sprintf("unknown RCD type %q", strings.TrimSpace(s)),
				TranslationKey: "validation.rcd_type",
				TranslationValues: map[string]any{
					"field": name,
					"value": s,
				},
			},
		})
	}
	return out
}
