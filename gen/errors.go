package gen

import "errors"

var ErrBadIndex = errors.New("position index is not a natural number")
