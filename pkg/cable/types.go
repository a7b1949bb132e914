package cable

// Conductor is the conductor material.
type Conductor string

const (
	Copper    Conductor = "copper"
	Aluminium Conductor = "aluminium"
)

// Insulation is the insulation material group that selects the ampacity table.
type Insulation string

const (
	PVC  Insulation = "PVC"
	XLPE Insulation = "XLPE"
)

// InstallationMethod is a reference installation method (A1, A2, B1, B2, C, E).
type InstallationMethod string

const (
	MethodA1 InstallationMethod = "A1"
	MethodA2 InstallationMethod = "A2"
	MethodB1 InstallationMethod = "B1"
	MethodB2 InstallationMethod = "B2"
	MethodC  InstallationMethod = "C"
	MethodE  InstallationMethod = "E"
)

// Methods lists the installation methods known to the library.
func Methods() []InstallationMethod {
	return []InstallationMethod{MethodA1, MethodA2, MethodB1, MethodB2, MethodC, MethodE}
}

// Descriptor describes a cable type.
type Descriptor struct {
	Name                    string     `json:"name" yaml:"name"`
	Aliases                 []string   `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Conductor               Conductor  `json:"conductor" yaml:"conductor"`
	Insulation              Insulation `json:"insulation" yaml:"insulation"`
	MaxOperatingTemperature float64    `json:"max_operating_temperature" yaml:"max_operating_temperature"`
	// Resistivity in Ω·mm²/m at the maximum operating temperature.
	Resistivity float64 `json:"resistivity" yaml:"resistivity"`
}

// AmpacityTable lists base ratings in amperes for one conductor/insulation
// group and number of loaded conductors. Each method's slice is aligned with
// Gauges.
type AmpacityTable struct {
	Conductor  Conductor                        `json:"conductor" yaml:"conductor"`
	Insulation Insulation                       `json:"insulation" yaml:"insulation"`
	Loaded     int                              `json:"loaded" yaml:"loaded"`
	Gauges     []float64                        `json:"gauges" yaml:"gauges"`
	Methods    map[InstallationMethod][]float64 `json:"methods" yaml:"methods"`
}

// TemperatureTable lists ambient temperature correction factors.
type TemperatureTable struct {
	Insulation   Insulation `json:"insulation" yaml:"insulation"`
	Temperatures []float64  `json:"temperatures" yaml:"temperatures"`
	Factors      []float64  `json:"factors" yaml:"factors"`
}

// Tables is the serialisable source of a Library.
type Tables struct {
	DefaultMethod      InstallationMethod `json:"default_method" yaml:"default_method"`
	Cables             []Descriptor       `json:"cables" yaml:"cables"`
	Ampacity           []AmpacityTable    `json:"ampacity" yaml:"ampacity"`
	TemperatureFactors []TemperatureTable `json:"temperature_factors" yaml:"temperature_factors"`
}
