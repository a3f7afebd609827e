// Package options configures generator construction: logging, the reduction
// depth limit, and the program source.
package options

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/termgen/go-termgen/platform/script/loader"
)

// Config holds everything needed to build a generator.
type Config struct {
	handler  slog.Handler
	maxDepth int
	loader   loader.Loader
}

// Option is a function that modifies Config.
type Option func(*Config) error

// NewConfig returns an empty config; apply WithDefaults before validating.
func NewConfig() *Config {
	return &Config{}
}

// WithLogHandler sets the slog handler used by every component.
func WithLogHandler(handler slog.Handler) Option {
	return func(c *Config) error {
		if handler != nil {
			c.handler = handler
		}
		return nil
	}
}

// WithSlog sets the logger whose handler every component will use.
func WithSlog(logger *slog.Logger) Option {
	return func(c *Config) error {
		if logger != nil {
			c.handler = logger.Handler()
		}
		return nil
	}
}

// WithMaxDepth bounds the number of dispatch steps a single reduction may
// take before failing with engine.ErrDepthExceeded.
func WithMaxDepth(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", n)
		}
		c.maxDepth = n
		return nil
	}
}

// WithLoader sets the generator program source.
func WithLoader(l loader.Loader) Option {
	return func(c *Config) error {
		if l != nil {
			c.loader = l
		}
		return nil
	}
}

// GetHandler returns the configured slog handler.
func (c *Config) GetHandler() slog.Handler { return c.handler }

// GetMaxDepth returns the configured reduction depth limit.
func (c *Config) GetMaxDepth() int { return c.maxDepth }

// GetLoader returns the configured program loader.
func (c *Config) GetLoader() loader.Loader { return c.loader }

// Validate checks that the config can build a generator.
func (c *Config) Validate() error {
	var errz []error
	if c.handler == nil {
		errz = append(errz, fmt.Errorf("no logger specified"))
	}
	if c.loader == nil {
		errz = append(errz, fmt.Errorf("no loader specified"))
	}
	if c.maxDepth <= 0 {
		errz = append(errz, fmt.Errorf("no depth limit specified"))
	}
	return errors.Join(errz...)
}
