package bitgo

import "errors"

var (
	// ErrSyntax is returned when constructor input cannot be parsed.
	ErrSyntax = errors.New("invalid bitset input")

	// ErrBase is returned for a radix outside [2,36].
	ErrBase = errors.New("base out of range")

	// ErrInvalidRange is returned for slice bounds that select no valid range.
	ErrInvalidRange = errors.New("invalid range")

	// ErrIndefinite is returned when an operation needs a finite set but the
	// receiver's high bits are implicitly all ones.
	ErrIndefinite = errors.New("set is indefinite")
)
