// Package evaluator runs compiled Starlark generator programs and collects
// the C source they emit.
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/termgen/go-termgen/engine"
	"github.com/termgen/go-termgen/engines/starlark/internal"
	"github.com/termgen/go-termgen/internal/helpers"
	"github.com/termgen/go-termgen/platform"
	"github.com/termgen/go-termgen/platform/script"
	starlarkLib "go.starlark.net/starlark"
)

// Evaluator runs one compiled generator unit. Each Generate call builds a
// fresh run state (symbol session, output buffer), so symbol counters never
// leak between runs.
type Evaluator struct {
	execUnit *script.ExecutableUnit
	reducer  *engine.Reducer

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates an Evaluator for the given unit. A nil reducer gets engine
// defaults.
func New(handler slog.Handler, execUnit *script.ExecutableUnit, reducer *engine.Reducer) *Evaluator {
	handler, logger := helpers.SetupLogger(handler, "starlark", "Evaluator")
	if reducer == nil {
		reducer = engine.New(handler, engine.DefaultMaxDepth)
	}
	return &Evaluator{
		execUnit:   execUnit,
		reducer:    reducer,
		logHandler: handler,
		logger:     logger,
	}
}

func (e *Evaluator) String() string {
	return "starlark.Evaluator"
}

// Generate implements platform.Generator.
func (e *Evaluator) Generate(ctx context.Context) (platform.GeneratorResponse, error) {
	logger := e.logger.WithGroup("Generate")

	if e.execUnit == nil {
		return nil, fmt.Errorf("executable unit is nil")
	}
	if e.execUnit.GetContent() == nil {
		return nil, fmt.Errorf("content is nil")
	}

	bytecode := e.execUnit.GetContent().GetByteCode()
	if bytecode == nil {
		return nil, fmt.Errorf("bytecode is nil")
	}

	unitID := e.execUnit.GetID()
	if unitID == "" {
		return nil, fmt.Errorf("unit ID is empty")
	}
	logger = logger.With("unitID", unitID)

	prog, ok := bytecode.(*starlarkLib.Program)
	if !ok {
		return nil, fmt.Errorf(
			"invalid bytecode type: expected *starlark.Program, got %T",
			bytecode,
		)
	}

	state, err := internal.NewRunState(ctx, e.reducer)
	if err != nil {
		return nil, fmt.Errorf("failed to set up run state: %w", err)
	}
	logger = logger.With("sessionID", state.Session.ID())

	output, execTime, err := e.exec(ctx, prog, state)
	if err != nil {
		return nil, err
	}
	logger.DebugContext(ctx, "generation complete", "bytes", len(output))

	return newResult(e.logHandler, output, execTime, unitID), nil
}

// exec runs the program on a fresh thread with context cancellation wired
// through Starlark's own cancel mechanism.
func (e *Evaluator) exec(
	ctx context.Context,
	prog *starlarkLib.Program,
	state *internal.RunState,
) (string, time.Duration, error) {
	logger := e.logger.WithGroup("exec")

	thread := &starlarkLib.Thread{
		Name: "generate",
		Print: func(thread *starlarkLib.Thread, msg string) {
			logger.InfoContext(ctx, msg, "starlark-thread", thread.Name)
		},
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			thread.Cancel(ctx.Err().Error())
		case <-done:
		}
	}()

	globals := internal.Builtins(state)

	startTime := time.Now()
	_, err := prog.Init(thread, globals)
	execTime := time.Since(startTime)

	if err != nil {
		return "", execTime, fmt.Errorf("starlark execution error: %w", err)
	}

	return state.Output(), execTime, nil
}
