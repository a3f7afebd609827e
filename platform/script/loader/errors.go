package loader

import "errors"

var (
	ErrSourceNotAvailable = errors.New("generator source not available")
	ErrSchemeUnsupported  = errors.New("URL scheme not supported")
)
