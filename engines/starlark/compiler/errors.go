package compiler

import "errors"

var (
	ErrContentNil    = errors.New("starlark generator content is nil")
	ErrCompileFailed = errors.New("starlark generator compilation failed")
)
