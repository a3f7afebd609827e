package natural

import "errors"

var (
	ErrUnderflow = errors.New("cannot decrement zero")
	ErrNotNat    = errors.New("expected a natural number")
)
