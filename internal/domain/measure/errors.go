package measure

import "errors"

var (
	// ErrInvalidArgument marks a contract violation by the caller, such as a
	// zero denominator passed to ToMixed. Correct call sites never see it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidNumber is returned when a value string does not parse as a decimal.
	ErrInvalidNumber = errors.New("invalid number")

	// ErrOutOfRange is returned when a fraction part does not fit in an int64.
	ErrOutOfRange = errors.New("value out of range")
)
