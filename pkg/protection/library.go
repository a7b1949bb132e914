package protection

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
)

// Defaults applied when Tables leave the corresponding value unset.
const (
	DefaultFinalCircuitMaxRatedCurrent   = 32.0
	DefaultFinalCircuitDisconnectionTime = 400 * time.Millisecond
	DefaultDistributionDisconnectionTime = 5 * time.Second
	DefaultConventionalTripMultiple      = 1.45
)

type tripRow struct {
	within   time.Duration
	currents []float64
}

type family struct {
	spec    DeviceSpec
	ratings map[int64]int
	trips   []tripRow // ascending by within
}

// Library answers protective device lookups. It is immutable after
// NewLibrary and safe for concurrent use.
type Library struct {
	finalMaxRated    float64
	finalTime        time.Duration
	distributionTime time.Duration
	families         map[string]*family
}

// NewLibrary validates and indexes the given tables.
func NewLibrary(t Tables) (*Library, error) {
	if len(t.Devices) == 0 {
		return nil, ErrNoDevices
	}

	lib := &Library{
		finalMaxRated:    t.FinalCircuitMaxRatedCurrent,
		finalTime:        seconds(t.FinalCircuitDisconnectionTime),
		distributionTime: seconds(t.DistributionDisconnectionTime),
		families:         make(map[string]*family),
	}
	if lib.finalMaxRated <= 0 {
		lib.finalMaxRated = DefaultFinalCircuitMaxRatedCurrent
	}
	if lib.finalTime <= 0 {
		lib.finalTime = DefaultFinalCircuitDisconnectionTime
	}
	if lib.distributionTime <= 0 {
		lib.distributionTime = DefaultDistributionDisconnectionTime
	}

	for _, spec := range t.Devices {
		f, err := newFamily(spec)
		if err != nil {
			return nil, err
		}
		for _, name := range append([]string{spec.Type}, spec.Aliases...) {
			key := circuit.NormalizeCode(name)
			if _, exists := lib.families[key]; exists {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateDevice, name)
			}
			lib.families[key] = f
		}
	}

	return lib, nil
}

func newFamily(spec DeviceSpec) (*family, error) {
	if spec.Type == "" || len(spec.Ratings) == 0 {
		return nil, fmt.Errorf("%w: %q needs a type and ratings", ErrInvalidDevice, spec.Type)
	}

	spec.Aliases = slices.Clone(spec.Aliases)
	spec.Ratings = slices.Clone(spec.Ratings)
	if spec.ConventionalTripMultiple <= 0 {
		spec.ConventionalTripMultiple = DefaultConventionalTripMultiple
	}

	f := &family{spec: spec, ratings: make(map[int64]int, len(spec.Ratings))}
	for i, r := range spec.Ratings {
		if r <= 0 {
			return nil, fmt.Errorf("%w: %q has non-positive rating %v", ErrInvalidDevice, spec.Type, r)
		}
		f.ratings[ratingKey(r)] = i
	}

	switch spec.Kind {
	case Breaker:
		if spec.TripMultiple <= 0 {
			return nil, fmt.Errorf("%w: breaker %q needs a trip multiple", ErrInvalidDevice, spec.Type)
		}
	case Fuse:
		if len(spec.TripCurrents) == 0 {
			return nil, fmt.Errorf("%w: fuse %q has no trip currents", ErrInvalidTripTable, spec.Type)
		}
		for _, p := range spec.TripCurrents {
			if p.Seconds <= 0 || len(p.Currents) != len(spec.Ratings) {
				return nil, fmt.Errorf("%w: fuse %q at %vs has %d currents for %d ratings",
					ErrInvalidTripTable, spec.Type, p.Seconds, len(p.Currents), len(spec.Ratings))
			}
			f.trips = append(f.trips, tripRow{within: seconds(p.Seconds), currents: slices.Clone(p.Currents)})
		}
		slices.SortFunc(f.trips, func(a, b tripRow) int {
			return cmp.Compare(a.within, b.within)
		})
	default:
		return nil, fmt.Errorf("%w: %q has unknown kind %q", ErrInvalidDevice, spec.Type, spec.Kind)
	}

	return f, nil
}

// Device returns the device of the given type at the given rated current.
// The rated current must be part of the family's series.
func (l *Library) Device(deviceType string, rated float64) (Device, bool) {
	f, ok := l.lookup(deviceType, rated)
	if !ok {
		return Device{}, false
	}
	final := rated <= l.finalMaxRated
	maxTime := l.distributionTime
	if final {
		maxTime = l.finalTime
	}
	return Device{
		Type:                    f.spec.Type,
		Kind:                    f.spec.Kind,
		RatedCurrent:            rated,
		ConventionalTripCurrent: f.spec.ConventionalTripMultiple * rated,
		MaxDisconnectionTime:    maxTime,
		FinalCircuit:            final,
	}, true
}

// Ratings returns the rated-current series of a device type.
func (l *Library) Ratings(deviceType string) ([]float64, bool) {
	f, ok := l.families[circuit.NormalizeCode(deviceType)]
	if !ok {
		return nil, false
	}
	return slices.Clone(f.spec.Ratings), true
}

// MaxDisconnectionTime returns the disconnection time limit for a circuit
// protected by the given device.
func (l *Library) MaxDisconnectionTime(deviceType string, rated float64) (time.Duration, bool) {
	d, ok := l.Device(deviceType, rated)
	if !ok {
		return 0, false
	}
	return d.MaxDisconnectionTime, true
}

// TripCurrent returns the current Ia that operates the device within the
// given time. Breakers trip at a fixed multiple of In. Fuses use the slowest
// tabulated time that still meets within; a requirement faster than every
// tabulated time has no data.
func (l *Library) TripCurrent(deviceType string, rated float64, within time.Duration) (float64, bool) {
	f, ok := l.lookup(deviceType, rated)
	if !ok || within <= 0 {
		return 0, false
	}

	switch f.spec.Kind {
	case Breaker:
		return f.spec.TripMultiple * rated, true
	case Fuse:
		idx := f.ratings[ratingKey(rated)]
		for i := len(f.trips) - 1; i >= 0; i-- {
			if f.trips[i].within <= within {
				return f.trips[i].currents[idx], true
			}
		}
	}
	return 0, false
}

func (l *Library) lookup(deviceType string, rated float64) (*family, bool) {
	f, ok := l.families[circuit.NormalizeCode(deviceType)]
	if !ok {
		return nil, false
	}
	if _, ok := f.ratings[ratingKey(rated)]; !ok {
		return nil, false
	}
	return f, true
}

func ratingKey(r float64) int64 {
	return int64(math.Round(r * 100))
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
