package standards

import (
	"math"
	"strings"
	"time"
)

// RCDKind distinguishes general-purpose from time-delayed (selective) RCDs.
type RCDKind string

const (
	RCDGeneral   RCDKind = "general"
	RCDSelective RCDKind = "selective"
)

// ParseRCDKind maps field-entry spellings to an RCDKind. An empty value is
// a general-purpose device.
func ParseRCDKind(s string) (RCDKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "general", "g", "standard", "a", "ac", "f", "b":
		return RCDGeneral, true
	case "selective", "s", "time-delayed":
		return RCDSelective, true
	default:
		return "", false
	}
}

// InsulationRequirement is the minimum insulation resistance for a circuit
// voltage class and the DC test voltage to measure it with.
type InsulationRequirement struct {
	Class         string  `json:"class"`
	TestVoltage   float64 `json:"test_voltage"`
	MinResistance float64 `json:"min_resistance"` // MΩ
}

// RCDLimit is the permitted trip time window at IΔn and the permitted trip
// current window as fractions of IΔn.
type RCDLimit struct {
	MinTripTime     time.Duration `json:"min_trip_time"`
	MaxTripTime     time.Duration `json:"max_trip_time"`
	MinTripFraction float64       `json:"min_trip_fraction"`
	MaxTripFraction float64       `json:"max_trip_fraction"`
}

// Load types with their own voltage-drop limit.
const (
	LoadLighting = "lighting"
	LoadSocket   = "socket"
	LoadMotor    = "motor"
	LoadHeating  = "heating"
	LoadOther    = "other"
)

// LoadTypes lists the recognised load types.
func LoadTypes() []string {
	return []string{LoadLighting, LoadSocket, LoadMotor, LoadHeating, LoadOther}
}

// Data holds regulation thresholds. All methods are pure; a Data value can be
// shared by any number of goroutines.
type Data struct {
	// LoopImpedanceFactor scales U0/Ia to allow for conductor heating between
	// the measurement and a fault.
	LoopImpedanceFactor float64

	LightingVoltageDrop float64 // percent
	OtherVoltageDrop    float64 // percent
}

// Default returns thresholds per IEC 60364 / DIN VDE 0100.
func Default() Data {
	return Data{
		LoopImpedanceFactor: 0.8,
		LightingVoltageDrop: 3,
		OtherVoltageDrop:    5,
	}
}

// nominal line-to-line voltages and their phase-to-earth voltage.
var lineToEarth = []struct{ line, earth float64 }{
	{208, 120},
	{400, 230},
	{415, 240},
	{480, 277},
	{690, 400},
}

// PhaseToEarthVoltage returns U0. Single-phase voltages are already U0;
// three-phase voltages are line-to-line and map to the nominal U0 when they
// are within 1 % of a nominal system voltage.
func (Data) PhaseToEarthVoltage(voltage float64, phases int) float64 {
	if phases != 3 {
		return voltage
	}
	for _, n := range lineToEarth {
		if math.Abs(voltage-n.line) <= n.line*0.01 {
			return n.earth
		}
	}
	return voltage / math.Sqrt(3)
}

// RequiredDisconnectionTime returns the maximum disconnection time for a TN
// system. Final circuits depend on U0; distribution circuits allow 5 s.
// Extra-low voltage (U0 <= 50 V) has no requirement.
func (Data) RequiredDisconnectionTime(u0 float64, finalCircuit bool) (time.Duration, bool) {
	switch {
	case u0 <= 50:
		return 0, false
	case !finalCircuit:
		return 5 * time.Second, true
	case u0 <= 120:
		return 800 * time.Millisecond, true
	case u0 <= 230:
		return 400 * time.Millisecond, true
	case u0 <= 400:
		return 200 * time.Millisecond, true
	default:
		return 100 * time.Millisecond, true
	}
}

// MaxLoopImpedance returns the highest permitted measured earth fault loop
// impedance in ohms for U0 and the trip current Ia of the protective device.
func (d Data) MaxLoopImpedance(u0, tripCurrent float64) (float64, bool) {
	if u0 <= 0 || tripCurrent <= 0 {
		return 0, false
	}
	return d.LoopImpedanceFactor * u0 / tripCurrent, true
}

// MinInsulationResistance returns the insulation requirement for a circuit
// nominal voltage.
func (Data) MinInsulationResistance(voltage float64) (InsulationRequirement, bool) {
	switch {
	case voltage <= 0:
		return InsulationRequirement{}, false
	case voltage <= 50:
		return InsulationRequirement{Class: "SELV/PELV", TestVoltage: 250, MinResistance: 0.5}, true
	case voltage <= 500:
		return InsulationRequirement{Class: "up to 500 V", TestVoltage: 500, MinResistance: 1.0}, true
	case voltage <= 1000:
		return InsulationRequirement{Class: "above 500 V", TestVoltage: 1000, MinResistance: 1.0}, true
	default:
		return InsulationRequirement{}, false
	}
}

// RCDLimits returns the trip windows for an RCD kind.
func (Data) RCDLimits(kind RCDKind) (RCDLimit, bool) {
	switch kind {
	case RCDGeneral:
		return RCDLimit{
			MaxTripTime:     300 * time.Millisecond,
			MinTripFraction: 0.5,
			MaxTripFraction: 1.0,
		}, true
	case RCDSelective:
		return RCDLimit{
			MinTripTime:     130 * time.Millisecond,
			MaxTripTime:     500 * time.Millisecond,
			MinTripFraction: 0.5,
			MaxTripFraction: 1.0,
		}, true
	default:
		return RCDLimit{}, false
	}
}

// MaxVoltageDrop returns the permitted voltage drop in percent of the
// nominal voltage for a load type.
func (d Data) MaxVoltageDrop(loadType string) float64 {
	if strings.EqualFold(strings.TrimSpace(loadType), LoadLighting) {
		return d.LightingVoltageDrop
	}
	return d.OtherVoltageDrop
}
