package building

import "errors"

var (
	ErrOutOfRange       = errors.New("value out of range")
	ErrInvalidState     = errors.New("operation not allowed in current system status")
	ErrCapacityExceeded = errors.New("request queue exceeds elevator capacity")
)
