// Package internal wires the generator builtins into a Starlark universe and
// carries the per-run state they close over.
package internal

import (
	"context"
	"strings"

	"github.com/termgen/go-termgen/engine"
	"github.com/termgen/go-termgen/gen"
	"github.com/termgen/go-termgen/oplib/ctext"
	"github.com/termgen/go-termgen/oplib/listkit"
	"github.com/termgen/go-termgen/oplib/natural"
	"github.com/termgen/go-termgen/oplib/tuplekit"
	"github.com/termgen/go-termgen/platform/ops"
)

// RunState is the explicit state of one generation run: the reducer, the
// symbol session, the operation registry, and the output buffer the emit
// builtin appends to. A fresh RunState is created per Generate call, so runs
// never share counters or output.
type RunState struct {
	Ctx      context.Context
	Reducer  *engine.Reducer
	Session  *gen.Session
	Registry *ops.Registry

	out strings.Builder
}

// NewRunState assembles the state for one run, with every operation library
// registered.
func NewRunState(ctx context.Context, reducer *engine.Reducer) (*RunState, error) {
	registry := ops.NewRegistry()
	for _, register := range []func(*ops.Registry) error{
		natural.Register,
		listkit.Register,
		tuplekit.Register,
		ctext.Register,
		gen.Register,
	} {
		if err := register(registry); err != nil {
			return nil, err
		}
	}

	return &RunState{
		Ctx:      ctx,
		Reducer:  reducer,
		Session:  gen.NewSession(),
		Registry: registry,
	}, nil
}

// Emit appends a finalized fragment to the run's output as its own line.
func (s *RunState) Emit(fragment string) {
	s.out.WriteString(fragment)
	s.out.WriteString("\n")
}

// Output returns everything emitted so far.
func (s *RunState) Output() string { return s.out.String() }
