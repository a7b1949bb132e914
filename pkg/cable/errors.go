package cable

import "errors"

var (
	ErrNoCables             = errors.New("cable: no cable types defined")
	ErrDuplicateCable       = errors.New("cable: duplicate cable type or alias")
	ErrInvalidDescriptor    = errors.New("cable: invalid cable descriptor")
	ErrInvalidAmpacityTable = errors.New("cable: invalid ampacity table")
	ErrInvalidTemperatures  = errors.New("cable: invalid temperature factor table")
	ErrUnknownMethod        = errors.New("cable: unknown default installation method")
	ErrFailedToLoadTables   = errors.New("cable: failed to load tables")
)
