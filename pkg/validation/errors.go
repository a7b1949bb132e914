package validation

import "errors"

var (
	ErrMissingCableLibrary      = errors.New("validation: cable library is required")
	ErrMissingProtectionLibrary = errors.New("validation: protection library is required")
	ErrMissingStandardsData     = errors.New("validation: standards data is required")
	ErrInvalidCacheSize         = errors.New("validation: max cache size must be positive")
	ErrNilRule                  = errors.New("validation: rule set contains a nil rule")
	ErrDuplicateRuleID          = errors.New("validation: duplicate rule id")
	ErrFailedToLoadLibraries    = errors.New("validation: failed to load reference libraries")
)
