package tuplekit

import "errors"

var (
	ErrNotTuple = errors.New("expected a tuple")
	ErrNotNat   = errors.New("expected a natural number")
	ErrTooShort = errors.New("tuple too short")
)
