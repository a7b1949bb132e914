package protection

import "errors"

var (
	ErrNoDevices          = errors.New("protection: no devices defined")
	ErrDuplicateDevice    = errors.New("protection: duplicate device type or alias")
	ErrInvalidDevice      = errors.New("protection: invalid device specification")
	ErrInvalidTripTable   = errors.New("protection: invalid trip current table")
	ErrFailedToLoadTables = errors.New("protection: failed to load tables")
)
