package ops

import "errors"

var (
	ErrDuplicateOp     = errors.New("operation already registered")
	ErrUnknownOp       = errors.New("unknown operation")
	ErrNilRegistration = errors.New("cannot register nil operation")
)
