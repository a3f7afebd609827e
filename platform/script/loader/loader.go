// Package loader supplies generator program source to the front-end
// compilers, from inline strings and from the local filesystem.
package loader

import (
	"io"
	"net/url"
)

// Loader is a source of generator program text.
type Loader interface {
	// GetReader opens the program content. Each call returns a fresh
	// reader; the caller closes it.
	GetReader() (io.ReadCloser, error)

	// GetSourceURL identifies where the content came from. Front-ends use
	// it as the executable unit ID when the caller supplies none.
	GetSourceURL() *url.URL
}
