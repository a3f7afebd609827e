// Package engine implements the dispatch protocol: a single-step rewrite of
// pending calls, and a driver that reduces a term to its normal form under a
// configurable depth limit.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/termgen/go-termgen/internal/helpers"
	"github.com/termgen/go-termgen/platform/term"
)

// DefaultMaxDepth bounds the number of dispatch steps a single Reduce may
// perform. A well-formed generator is structurally decreasing and stays far
// below this; hitting the limit means a combinator never reaches its base
// case.
const DefaultMaxDepth = 10_000

// Reducer drives terms to their normal form. It holds no evaluation state:
// every counter and accumulator lives in the terms themselves, so reducing
// structurally equal terms always yields structurally equal results.
type Reducer struct {
	maxDepth int

	logHandler slog.Handler
	logger     *slog.Logger
}

// New creates a Reducer. A nil handler falls back to the default text
// handler; maxDepth <= 0 selects DefaultMaxDepth.
func New(handler slog.Handler, maxDepth int) *Reducer {
	handler, logger := helpers.SetupLogger(handler, "engine", "Reducer")
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Reducer{
		maxDepth:   maxDepth,
		logHandler: handler,
		logger:     logger,
	}
}

func (r *Reducer) String() string {
	return fmt.Sprintf("engine.Reducer{maxDepth: %d}", r.maxDepth)
}

// MaxDepth returns the configured step limit.
func (r *Reducer) MaxDepth() int { return r.maxDepth }

// Step performs exactly one rewrite of a pending call whose arguments are
// already in the shape the operation requires. It never recurses: applying
// the operation once is the whole step. Values pass through unchanged.
func (r *Reducer) Step(t term.Term) (term.Term, error) {
	call, ok := t.(*term.Call)
	if !ok {
		return t, nil
	}
	return call.Op.Apply(call.Args)
}

// Reduce rewrites t until no pending calls remain, or fails with
// ErrDepthExceeded after the configured number of dispatch steps. Arguments
// of strict operations are fully reduced before the operation is applied;
// non-strict operations have only their first argument (the scrutinee)
// reduced, so an untaken branch is never rewritten.
func (r *Reducer) Reduce(ctx context.Context, t term.Term) (term.Term, error) {
	budget := r.maxDepth
	out, err := r.reduce(ctx, t, &budget)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReduceToText reduces t and renders the resulting value as C source text.
func (r *Reducer) ReduceToText(ctx context.Context, t term.Term) (string, error) {
	out, err := r.Reduce(ctx, t)
	if err != nil {
		return "", err
	}
	text, err := term.Render(out)
	if err != nil {
		return "", fmt.Errorf("reduced term did not render: %w", err)
	}
	return text, nil
}

func (r *Reducer) reduce(ctx context.Context, t term.Term, budget *int) (term.Term, error) {
	switch v := t.(type) {
	case *term.Call:
		return r.reduceCall(ctx, v, budget)
	case term.Cons:
		head, err := r.reduce(ctx, v.Head, budget)
		if err != nil {
			return nil, err
		}
		tail, err := r.reduce(ctx, v.Tail, budget)
		if err != nil {
			return nil, err
		}
		return term.Cons{Head: head, Tail: tail}, nil
	case term.Tuple:
		out := make(term.Tuple, len(v))
		for i, el := range v {
			reduced, err := r.reduce(ctx, el, budget)
			if err != nil {
				return nil, err
			}
			out[i] = reduced
		}
		return out, nil
	case term.Seq:
		out := make(term.Seq, len(v))
		for i, el := range v {
			reduced, err := r.reduce(ctx, el, budget)
			if err != nil {
				return nil, err
			}
			out[i] = reduced
		}
		return out, nil
	default:
		return t, nil
	}
}

// reduceCall prepares a call's arguments per the operation's strictness,
// spends one step of the budget on the dispatch, and continues reducing
// whatever the operation rewrote to.
func (r *Reducer) reduceCall(ctx context.Context, call *term.Call, budget *int) (term.Term, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	args := make([]term.Term, len(call.Args))
	copy(args, call.Args)

	if call.Op.StrictArgs() {
		for i, a := range args {
			reduced, err := r.reduce(ctx, a, budget)
			if err != nil {
				return nil, err
			}
			args[i] = reduced
		}
	} else if len(args) > 0 {
		// Only the scrutinee is reduced; branch arguments stay unrewritten
		// so the untaken branch can safely contain a term that would error.
		scrutinee, err := r.reduce(ctx, args[0], budget)
		if err != nil {
			return nil, err
		}
		args[0] = scrutinee
	}

	if *budget <= 0 {
		return nil, fmt.Errorf(
			"%w: %d dispatch steps spent without reaching a value (op %s)",
			ErrDepthExceeded, r.maxDepth, call.Op.OpName(),
		)
	}
	*budget--

	out, err := call.Op.Apply(args)
	if err != nil {
		return nil, fmt.Errorf("dispatch of %s failed: %w", call.Op.OpName(), err)
	}
	r.logger.Debug("dispatched", "op", call.Op.OpName(), "result", out.String())

	return r.reduce(ctx, out, budget)
}
