// Package compiler parses and compiles Starlark generator programs against
// the predeclared generator builtins.
package compiler

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/termgen/go-termgen/engines/starlark/internal"
	"github.com/termgen/go-termgen/internal/helpers"
	"github.com/termgen/go-termgen/platform/script"
	starlarkLib "go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Compiler compiles generator source into a *starlark.Program once; the
// program is then run many times by the evaluator.
type Compiler struct {
	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Compiler.
func New(handler slog.Handler) *Compiler {
	handler, logger := helpers.SetupLogger(handler, "starlark", "Compiler")
	return &Compiler{
		logHandler: handler,
		logger:     logger,
	}
}

func (c *Compiler) String() string {
	return "starlark.Compiler"
}

// Compile implements script.Compiler.
func (c *Compiler) Compile(reader io.ReadCloser) (script.ExecutableContent, error) {
	if reader == nil {
		return nil, ErrContentNil
	}
	defer func() { _ = reader.Close() }()

	source, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read generator source: %w", err)
	}
	if len(source) == 0 {
		return nil, ErrContentNil
	}

	predeclared := make(map[string]bool)
	for _, name := range internal.BuiltinNames() {
		predeclared[name] = true
	}

	opts := &syntax.FileOptions{}
	f, err := opts.Parse("", source, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	prog, err := starlarkLib.FileProgram(f, func(name string) bool {
		return predeclared[name]
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCompileFailed, err)
	}

	c.logger.Debug("generator program compiled", "bytes", len(source))

	return newExecutable(string(source), prog), nil
}
