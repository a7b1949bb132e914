package validation

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrymomot/circuitcheck/pkg/cable"
	"github.com/dmitrymomot/circuitcheck/pkg/protection"
	"github.com/dmitrymomot/circuitcheck/pkg/standards"
)

// Libraries bundles concrete reference data for an Engine.
type Libraries struct {
	Cables     *cable.Library
	Protection *protection.Library
	Standards  standards.Data
}

// LoadLibraries reads "cables" and "protection" tables (.yaml, .yml or
// .json) from dir. A table missing from dir, or an empty dir, falls back to
// the packaged defaults.
func LoadLibraries(dir string) (Libraries, error) {
	cables, err := loadTable(dir, "cables", cable.Load, cable.LoadDefault)
	if err != nil {
		return Libraries{}, errors.Join(ErrFailedToLoadLibraries, err)
	}
	prot, err := loadTable(dir, "protection", protection.Load, protection.LoadDefault)
	if err != nil {
		return Libraries{}, errors.Join(ErrFailedToLoadLibraries, err)
	}
	return Libraries{Cables: cables, Protection: prot, Standards: standards.Default()}, nil
}

// NewDefault creates an Engine over the packaged reference tables.
func NewDefault(opts ...Option) (*Engine, error) {
	libs, err := LoadLibraries("")
	if err != nil {
		return nil, err
	}
	return New(libs.Cables, libs.Protection, libs.Standards, opts...)
}

func loadTable[T any](dir, base string, load func(string) (T, error), fallback func() (T, error)) (T, error) {
	if dir == "" {
		return fallback()
	}
	for _, ext := range []string{".yaml", ".yml", ".json"} {
		path := filepath.Join(dir, base+ext)
		if _, err := os.Stat(path); err == nil {
			v, err := load(path)
			if err != nil {
				return v, fmt.Errorf("%s: %w", path, err)
			}
			return v, nil
		}
	}
	return fallback()
}
