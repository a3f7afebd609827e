// Package ops defines the operation type the engine dispatches on, plus the
// registry that maps operation names to implementations for front-ends that
// resolve operations by name.
package ops

import (
	"fmt"

	"github.com/termgen/go-termgen/platform/term"
)

// Op is a named operation with a fixed arity. The arity is part of the value
// and never changes after construction; term.NewCall enforces it when a call
// is built.
type Op struct {
	name   string
	arity  int
	strict bool
	apply  func(args []term.Term) (term.Term, error)
}

// New constructs a strict operation: the engine reduces every argument to a
// value before the operation is applied.
func New(name string, arity int, apply func(args []term.Term) (term.Term, error)) *Op {
	return &Op{name: name, arity: arity, strict: true, apply: apply}
}

// NewNonStrict constructs a non-strict operation: the engine reduces only the
// first argument (the scrutinee); the remaining arguments reach Apply
// unrewritten. This is the shape of the branch-selection primitives: the
// untaken branch must never be rewritten.
func NewNonStrict(name string, arity int, apply func(args []term.Term) (term.Term, error)) *Op {
	return &Op{name: name, arity: arity, strict: false, apply: apply}
}

// OpName implements term.Op.
func (o *Op) OpName() string { return o.name }

// OpArity implements term.Op.
func (o *Op) OpArity() int { return o.arity }

// StrictArgs implements term.Op.
func (o *Op) StrictArgs() bool { return o.strict }

// Apply performs a single rewrite step. The argument count was validated
// when the call was constructed; this re-check guards direct callers.
func (o *Op) Apply(args []term.Term) (term.Term, error) {
	if len(args) != o.arity {
		return nil, fmt.Errorf(
			"%w: %s expects %d argument(s), got %d",
			term.ErrArityMismatch, o.name, o.arity, len(args),
		)
	}
	return o.apply(args)
}

func (o *Op) String() string {
	return fmt.Sprintf("ops.Op{%s/%d}", o.name, o.arity)
}
