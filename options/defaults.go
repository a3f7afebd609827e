package options

import (
	"log/slog"
	"os"

	"github.com/termgen/go-termgen/engine"
)

// WithDefaults fills any unset field with a usable value. Apply it last, so
// explicit options win.
func WithDefaults() Option {
	return func(c *Config) error {
		if c.handler == nil {
			c.handler = slog.NewTextHandler(os.Stderr, nil)
		}
		if c.maxDepth <= 0 {
			c.maxDepth = engine.DefaultMaxDepth
		}
		return nil
	}
}
