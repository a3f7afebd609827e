package ctext

import "errors"

var (
	ErrNotText = errors.New("expected a text fragment")
	ErrNotBool = errors.New("expected a boolean")
)
