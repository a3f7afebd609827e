package loader

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/termgen/go-termgen/internal/helpers"
)

// inlineChecksumLength is how many hex digits of the content checksum go
// into an inline loader's identity. Enough to keep distinct programs apart
// in logs without turning unit IDs into full digests.
const inlineChecksumLength = 8

// FromString supplies a generator program held in memory. Its identity is
// derived from a checksum of the content, so two loaders built from the same
// inline program share a source URL.
type FromString struct {
	content   []byte
	sourceURL *url.URL
}

// NewFromString wraps inline generator source. Surrounding whitespace is
// trimmed first; a program that trims to nothing is rejected here rather
// than failing later in the compiler.
func NewFromString(content string) (*FromString, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, fmt.Errorf("%w: inline program is empty", ErrSourceNotAvailable)
	}

	return &FromString{
		content:   []byte(trimmed),
		sourceURL: inlineURL(trimmed),
	}, nil
}

// inlineURL builds the checksum-derived identity of inline content.
func inlineURL(content string) *url.URL {
	return &url.URL{
		Scheme: "string",
		Host:   "inline",
		Path:   "/" + helpers.SHA256(content)[:inlineChecksumLength],
	}
}

func (l *FromString) String() string {
	return fmt.Sprintf("loader.FromString{Bytes: %d, URL: %s}", len(l.content), l.sourceURL)
}

// GetReader returns a fresh reader over the program; the content never
// changes, so readers may be taken repeatedly.
func (l *FromString) GetReader() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(l.content)), nil
}

// GetSourceURL returns the checksum-derived identity of the inline source.
func (l *FromString) GetSourceURL() *url.URL {
	return l.sourceURL
}
