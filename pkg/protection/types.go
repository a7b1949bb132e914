package protection

import "time"

// Kind groups devices with the same time/current behaviour.
type Kind string

const (
	// Breaker trips magnetically at a fixed multiple of the rated current.
	Breaker Kind = "breaker"
	// Fuse operates along a time/current curve given as tabulated points.
	Fuse Kind = "fuse"
)

// TripPoint is the current that operates a device within Seconds.
type TripPoint struct {
	Seconds  float64   `json:"seconds" yaml:"seconds"`
	Currents []float64 `json:"currents" yaml:"currents"`
}

// DeviceSpec describes a device family and its rated-current series.
type DeviceSpec struct {
	Type                     string      `json:"type" yaml:"type"`
	Aliases                  []string    `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Kind                     Kind        `json:"kind" yaml:"kind"`
	Ratings                  []float64   `json:"ratings" yaml:"ratings"`
	TripMultiple             float64     `json:"trip_multiple,omitempty" yaml:"trip_multiple,omitempty"`
	ConventionalTripMultiple float64     `json:"conventional_trip_multiple" yaml:"conventional_trip_multiple"`
	TripCurrents             []TripPoint `json:"trip_currents,omitempty" yaml:"trip_currents,omitempty"`
}

// Tables is the serialisable source of a Library.
type Tables struct {
	FinalCircuitMaxRatedCurrent   float64      `json:"final_circuit_max_rated_current" yaml:"final_circuit_max_rated_current"`
	FinalCircuitDisconnectionTime float64      `json:"final_circuit_disconnection_time" yaml:"final_circuit_disconnection_time"`
	DistributionDisconnectionTime float64      `json:"distribution_disconnection_time" yaml:"distribution_disconnection_time"`
	Devices                       []DeviceSpec `json:"devices" yaml:"devices"`
}

// Device is a single protective device: a family at one rated current.
type Device struct {
	Type         string  `json:"type"`
	Kind         Kind    `json:"kind"`
	RatedCurrent float64 `json:"rated_current"`

	// ConventionalTripCurrent is I2, the current that ensures operation
	// within the conventional time.
	ConventionalTripCurrent float64 `json:"conventional_trip_current"`

	// MaxDisconnectionTime is the longest disconnection time permitted for
	// a circuit protected by this device.
	MaxDisconnectionTime time.Duration `json:"max_disconnection_time"`

	// FinalCircuit reports whether the rating classifies the protected
	// circuit as a final circuit.
	FinalCircuit bool `json:"final_circuit"`
}
