// Package ctext provides the two primitives the rewrite engine requires of
// its host (unconditional fragment concatenation and non-strict binary
// selection) plus small fragment-shaping operations.
package ctext

import (
	"fmt"

	"github.com/termgen/go-termgen/platform/ops"
	"github.com/termgen/go-termgen/platform/term"
)

var (
	// Cat rewrites two finalized fragments to their juxtaposition, with no
	// separator. This is the concatenation primitive identifier synthesis
	// is built on.
	Cat = ops.New("text.cat", 2, func(args []term.Term) (term.Term, error) {
		a, err := expectText(args[0])
		if err != nil {
			return nil, err
		}
		b, err := expectText(args[1])
		if err != nil {
			return nil, err
		}
		return a + b, nil
	})

	// Paren wraps a fragment in parentheses.
	Paren = ops.New("text.paren", 1, func(args []term.Term) (term.Term, error) {
		s, err := expectText(args[0])
		if err != nil {
			return nil, err
		}
		return term.Text("(" + string(s) + ")"), nil
	})

	// If selects between two pre-formed fragments on a Boolean scrutinee
	// without rewriting the unselected one.
	If = ops.NewNonStrict("text.if", 3, func(args []term.Term) (term.Term, error) {
		cond, ok := args[0].(term.Bool)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotBool, args[0].String())
		}
		if cond {
			return args[1], nil
		}
		return args[2], nil
	})
)

func expectText(t term.Term) (term.Text, error) {
	s, ok := t.(term.Text)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotText, t.String())
	}
	return s, nil
}

// Register adds the text operations to a registry.
func Register(r *ops.Registry) error {
	for _, op := range []*ops.Op{Cat, Paren, If} {
		if err := r.Register(op); err != nil {
			return err
		}
	}
	return nil
}
