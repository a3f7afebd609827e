// Package termgen generates C source at build time by reducing terms of a
// small functional language: generator programs written in Starlark build
// terms (declarations, indexed parameter lists, statement chains) and the
// rewrite engine reduces them to finalized C text.
package termgen

import (
	"context"
	"fmt"

	"github.com/termgen/go-termgen/engine"
	"github.com/termgen/go-termgen/engines/starlark"
	"github.com/termgen/go-termgen/options"
	"github.com/termgen/go-termgen/platform"
	"github.com/termgen/go-termgen/platform/script/loader"
)

// NewStarlarkGenerator builds a Generator from the given options. A loader
// is required; everything else defaults.
func NewStarlarkGenerator(opts ...options.Option) (platform.Generator, error) {
	cfg := options.NewConfig()

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	if err := options.WithDefaults()(cfg); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	reducer := engine.New(cfg.GetHandler(), cfg.GetMaxDepth())
	return starlark.FromLoader(cfg.GetHandler(), cfg.GetLoader(), reducer)
}

// FromStarlarkString builds a Generator from inline generator source.
func FromStarlarkString(content string, opts ...options.Option) (platform.Generator, error) {
	l, err := loader.NewFromString(content)
	if err != nil {
		return nil, err
	}

	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)
	return NewStarlarkGenerator(allOpts...)
}

// FromStarlarkFile builds a Generator from a generator program on disk.
func FromStarlarkFile(path string, opts ...options.Option) (platform.Generator, error) {
	l, err := loader.NewFromDisk(path)
	if err != nil {
		return nil, err
	}

	allOpts := append([]options.Option{options.WithLoader(l)}, opts...)
	return NewStarlarkGenerator(allOpts...)
}

// GenerateString is a convenience that compiles inline source and runs it
// once, returning the generated C text.
func GenerateString(ctx context.Context, content string, opts ...options.Option) (string, error) {
	g, err := FromStarlarkString(content, opts...)
	if err != nil {
		return "", err
	}
	resp, err := g.Generate(ctx)
	if err != nil {
		return "", err
	}
	return resp.Output(), nil
}
