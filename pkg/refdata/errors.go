package refdata

import "errors"

var (
	ErrUnsupportedFormat = errors.New("unsupported reference data format")
	ErrFailedToReadFile  = errors.New("failed to read reference data file")
	ErrFailedToParseYAML = errors.New("failed to parse YAML data")
	ErrFailedToParseJSON = errors.New("failed to parse JSON data")
)
