package listkit

import "errors"

var (
	ErrNotList   = errors.New("expected a list")
	ErrEmptyList = errors.New("list is empty")
)
