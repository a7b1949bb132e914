package cable

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/dmitrymomot/circuitcheck/pkg/circuit"
)

// DefaultLoadedConductors is used when the caller does not say how many
// conductors carry load (single-phase circuit: line and neutral).
const DefaultLoadedConductors = 2

type groupKey struct {
	conductor  Conductor
	insulation Insulation
	method     InstallationMethod
	loaded     int
	gauge      int64
}

type temperatureRow struct {
	temperature float64
	factor      float64
}

// Library answers cable lookups. It is immutable after NewLibrary and safe
// for concurrent use.
type Library struct {
	defaultMethod InstallationMethod
	cables        map[string]Descriptor
	ampacity      map[groupKey]float64
	temperature   map[Insulation][]temperatureRow
}

// NewLibrary indexes the given tables. Tables are validated once here so that
// lookups never fail for structural reasons.
func NewLibrary(t Tables) (*Library, error) {
	if len(t.Cables) == 0 {
		return nil, ErrNoCables
	}

	lib := &Library{
		defaultMethod: t.DefaultMethod,
		cables:        make(map[string]Descriptor),
		ampacity:      make(map[groupKey]float64),
		temperature:   make(map[Insulation][]temperatureRow),
	}
	if lib.defaultMethod == "" {
		lib.defaultMethod = MethodC
	}
	if !slices.Contains(Methods(), lib.defaultMethod) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, lib.defaultMethod)
	}

	for _, d := range t.Cables {
		if d.Name == "" || d.Resistivity <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDescriptor, d.Name)
		}
		d.Aliases = slices.Clone(d.Aliases)
		for _, name := range append([]string{d.Name}, d.Aliases...) {
			key := circuit.NormalizeCode(name)
			if _, exists := lib.cables[key]; exists {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateCable, name)
			}
			lib.cables[key] = d
		}
	}

	for _, tbl := range t.Ampacity {
		if tbl.Loaded <= 0 {
			return nil, fmt.Errorf("%w: %s/%s loaded conductors must be positive", ErrInvalidAmpacityTable, tbl.Conductor, tbl.Insulation)
		}
		for method, ratings := range tbl.Methods {
			if len(ratings) != len(tbl.Gauges) {
				return nil, fmt.Errorf("%w: %s/%s method %s has %d ratings for %d gauges",
					ErrInvalidAmpacityTable, tbl.Conductor, tbl.Insulation, method, len(ratings), len(tbl.Gauges))
			}
			for i, g := range tbl.Gauges {
				lib.ampacity[groupKey{
					conductor:  tbl.Conductor,
					insulation: tbl.Insulation,
					method:     method,
					loaded:     tbl.Loaded,
					gauge:      gaugeKey(g),
				}] = ratings[i]
			}
		}
	}

	for _, tbl := range t.TemperatureFactors {
		if len(tbl.Temperatures) == 0 || len(tbl.Temperatures) != len(tbl.Factors) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTemperatures, tbl.Insulation)
		}
		rows := make([]temperatureRow, len(tbl.Temperatures))
		for i := range tbl.Temperatures {
			rows[i] = temperatureRow{temperature: tbl.Temperatures[i], factor: tbl.Factors[i]}
		}
		slices.SortFunc(rows, func(a, b temperatureRow) int {
			return cmp.Compare(a.temperature, b.temperature)
		})
		lib.temperature[tbl.Insulation] = rows
	}

	return lib, nil
}

// DefaultMethod returns the installation method assumed when none is given.
func (l *Library) DefaultMethod() InstallationMethod {
	return l.defaultMethod
}

// Cable returns the descriptor for a cable type or alias, case-insensitively.
func (l *Library) Cable(cableType string) (Descriptor, bool) {
	d, ok := l.cables[circuit.NormalizeCode(cableType)]
	if !ok {
		return Descriptor{}, false
	}
	d.Aliases = slices.Clone(d.Aliases)
	return d, true
}

// BaseAmpacity returns the tabulated current-carrying capacity in amperes at
// the reference ambient temperature. An empty method selects the default
// method; loaded <= 0 selects DefaultLoadedConductors.
func (l *Library) BaseAmpacity(cableType string, gauge float64, method InstallationMethod, loaded int) (float64, bool) {
	d, ok := l.Cable(cableType)
	if !ok {
		return 0, false
	}
	if method == "" {
		method = l.defaultMethod
	}
	if loaded <= 0 {
		loaded = DefaultLoadedConductors
	}
	v, ok := l.ampacity[groupKey{
		conductor:  d.Conductor,
		insulation: d.Insulation,
		method:     method,
		loaded:     loaded,
		gauge:      gaugeKey(gauge),
	}]
	return v, ok
}

// TemperatureFactor returns the ambient temperature correction factor. The
// next tabulated temperature at or above ambient is used; ambient below the
// first row uses the first row. Ambient above the last row has no factor.
func (l *Library) TemperatureFactor(insulation Insulation, ambient float64) (float64, bool) {
	rows := l.temperature[insulation]
	if len(rows) == 0 || math.IsNaN(ambient) {
		return 0, false
	}
	for _, r := range rows {
		if ambient <= r.temperature {
			return r.factor, true
		}
	}
	return 0, false
}

// gaugeKey maps a cross-section to a comparable key with 0.01 mm² resolution.
func gaugeKey(g float64) int64 {
	return int64(math.Round(g * 100))
}
