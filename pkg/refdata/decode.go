package refdata

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Format is a reference data encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatForFile returns the format matching the file extension.
func FormatForFile(filename string) (Format, bool) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	switch strings.ToLower(ext) {
	case "yaml", "yml":
		return FormatYAML, true
	case "json":
		return FormatJSON, true
	default:
		return "", false
	}
}

// Decode decodes data into v using the format implied by filename.
func Decode(filename string, data []byte, v any) error {
	format, ok := FormatForFile(filename)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filename)
	}
	return DecodeFormat(format, data, v)
}

// DecodeFormat decodes data into v using the given format.
func DecodeFormat(format Format, data []byte, v any) error {
	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(v); err != nil {
			return errors.Join(ErrFailedToParseYAML, err)
		}
		return nil
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(v); err != nil {
			return errors.Join(ErrFailedToParseJSON, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// DecodeLenient is DecodeFormat without the unknown-field check. It suits
// input records that may carry keys newer than this package.
func DecodeLenient(format Format, data []byte, v any) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, v); err != nil {
			return errors.Join(ErrFailedToParseYAML, err)
		}
		return nil
	case FormatJSON:
		if err := json.Unmarshal(data, v); err != nil {
			return errors.Join(ErrFailedToParseJSON, err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// ReadFile reads filename and decodes it into v.
func ReadFile(filename string, v any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	return Decode(filename, data, v)
}
