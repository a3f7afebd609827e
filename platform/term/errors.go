package term

import "errors"

var (
	ErrArityMismatch = errors.New("arity mismatch")
	ErrNilOp         = errors.New("operation is nil")
	ErrNotRendered   = errors.New("term is not a renderable value")
)
