package cable

import (
	_ "embed"
	"errors"

	"github.com/dmitrymomot/circuitcheck/pkg/refdata"
)

//go:embed tables.yaml
var defaultTables []byte

// DefaultTables returns the packaged reference tables.
func DefaultTables() (Tables, error) {
	var t Tables
	if err := refdata.DecodeFormat(refdata.FormatYAML, defaultTables, &t); err != nil {
		return Tables{}, errors.Join(ErrFailedToLoadTables, err)
	}
	return t, nil
}

// LoadDefault builds a Library from the packaged reference tables.
func LoadDefault() (*Library, error) {
	t, err := DefaultTables()
	if err != nil {
		return nil, err
	}
	return NewLibrary(t)
}

// Load builds a Library from a YAML or JSON table file.
func Load(filename string) (*Library, error) {
	var t Tables
	if err := refdata.ReadFile(filename, &t); err != nil {
		return nil, errors.Join(ErrFailedToLoadTables, err)
	}
	return NewLibrary(t)
}
