package circuit

import (
	"fmt"
	"math"
	"strconv"
)

// FieldError is a record value that could not be stored in its field.
type FieldError struct {
	Field Field
	Value any
	Err   error
}

func (e FieldError) Error() string {
	return string(e.Field) + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// FromRecord builds a Circuit from a generic decoded record such as a YAML
// mapping or JSON object. Unknown keys are ignored and null values are
// absent. A value of the wrong type leaves its field absent and is reported,
// in canonical field order.
func FromRecord(rec map[string]any) (Circuit, []FieldError) {
	var (
		c    Circuit
		errs []FieldError
	)

	switch id := rec["id"].(type) {
	case nil:
	case string:
		c.ID = id
	case int:
		c.ID = strconv.Itoa(id)
	default:
		if x, ok := AsNumber(id); ok {
			c.ID = strconv.FormatFloat(x, 'f', -1, 64)
		} else {
			errs = append(errs, FieldError{
				Field: "id",
				Value: id,
				Err:   fmt.Errorf("%w: want text, got %T", ErrWrongType, id),
			})
		}
	}

	for _, f := range fields {
		v, ok := rec[string(f)]
		if !ok {
			continue
		}
		if err := c.Set(f, v); err != nil {
			errs = append(errs, FieldError{Field: f, Value: v, Err: err})
		}
	}
	return c, errs
}

// Set stores v in field f; nil clears it. Numeric fields take any Go number
// type, phaseCount only whole numbers. On error the field is left unchanged.
func (c *Circuit) Set(f Field, v any) error {
	switch f {
	case FieldVoltage:
		return setNumber(&c.Voltage, v)
	case FieldCurrent:
		return setNumber(&c.Current, v)
	case FieldCableGauge:
		return setNumber(&c.CableGauge, v)
	case FieldCableType:
		return setText(&c.CableType, v)
	case FieldDistance:
		return setNumber(&c.Distance, v)
	case FieldProtectionRatedCurrent:
		return setNumber(&c.ProtectionRatedCurrent, v)
	case FieldProtectionDeviceType:
		return setText(&c.ProtectionDeviceType, v)
	case FieldPhaseCount:
		return setWhole(&c.PhaseCount, v)
	case FieldLoadType:
		return setText(&c.LoadType, v)
	case FieldLoopImpedance:
		return setNumber(&c.LoopImpedance, v)
	case FieldAmbientTemperature:
		return setNumber(&c.AmbientTemperature, v)
	case FieldPowerFactor:
		return setNumber(&c.PowerFactor, v)
	case FieldInstallationMethod:
		return setText(&c.InstallationMethod, v)
	case FieldInsulationResistance:
		return setNumber(&c.InsulationResistance, v)
	case FieldRCDRatedResidualCurrent:
		return setNumber(&c.RCDRatedResidualCurrent, v)
	case FieldRCDTripTime:
		return setNumber(&c.RCDTripTime, v)
	case FieldRCDTripCurrent:
		return setNumber(&c.RCDTripCurrent, v)
	case FieldRCDType:
		return setText(&c.RCDType, v)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, f)
	}
}

// AsNumber converts any Go integer or float type to float64.
func AsNumber(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return math.NaN(), false
	}
}

func setNumber(o *Opt[float64], v any) error {
	if v == nil {
		*o = None[float64]()
		return nil
	}
	x, ok := AsNumber(v)
	if !ok {
		return fmt.Errorf("%w: want a number, got %T", ErrWrongType, v)
	}
	*o = Some(x)
	return nil
}

func setWhole(o *Opt[int], v any) error {
	if v == nil {
		*o = None[int]()
		return nil
	}
	x, ok := AsNumber(v)
	if !ok || math.IsInf(x, 0) || x != math.Trunc(x) {
		return fmt.Errorf("%w: want a whole number, got %v", ErrWrongType, v)
	}
	*o = Some(int(x))
	return nil
}

func setText(o *Opt[string], v any) error {
	if v == nil {
		*o = None[string]()
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: want text, got %T", ErrWrongType, v)
	}
	*o = Some(s)
	return nil
}
