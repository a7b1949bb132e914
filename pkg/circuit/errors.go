package circuit

import "errors"

var (
	ErrUnknownField = errors.New("circuit: unknown field")
	ErrWrongType    = errors.New("circuit: wrong value type")
)
