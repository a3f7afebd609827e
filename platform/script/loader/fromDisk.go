package loader

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FromDisk loads generator source from a local file.
type FromDisk struct {
	path      string
	sourceURL *url.URL
}

// NewFromDisk creates a loader for an absolute filesystem path. The file is
// not opened until GetReader is called.
func NewFromDisk(path string) (*FromDisk, error) {
	path = strings.TrimPrefix(path, "file://")

	if strings.Contains(path, "://") {
		return nil, fmt.Errorf("%w: %s", ErrSchemeUnsupported, path)
	}
	if !filepath.IsAbs(path) {
		return nil, fmt.Errorf("%w: relative paths are not supported", ErrSourceNotAvailable)
	}

	path = filepath.Clean(path)
	if path == "" || path == "." || path == string(filepath.Separator) {
		return nil, fmt.Errorf("%w: path is empty or invalid", ErrSourceNotAvailable)
	}

	u, err := url.Parse("file://" + path)
	if err != nil {
		return nil, fmt.Errorf("unable to parse URL: %w", err)
	}

	return &FromDisk{
		path:      path,
		sourceURL: u,
	}, nil
}

func (l *FromDisk) String() string {
	return fmt.Sprintf("loader.FromDisk{Path: %s}", l.path)
}

func (l *FromDisk) GetReader() (io.ReadCloser, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotAvailable, err)
	}
	return f, nil
}

// GetSourceURL returns the file URL of the source.
func (l *FromDisk) GetSourceURL() *url.URL {
	return l.sourceURL
}
