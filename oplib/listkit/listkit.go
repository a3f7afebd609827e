// Package listkit provides structural pattern matching over the engine's
// cons lists. Matching is an ordinary Go function over algebraic data;
// recursive combinators thread any auxiliary state (an index, an
// accumulator) through their own call arguments, never through the package.
package listkit

import (
	"fmt"

	"github.com/termgen/go-termgen/platform/ops"
	"github.com/termgen/go-termgen/platform/term"
)

// Match dispatches on the two list constructors: onNil for the empty list,
// onCons with the head and tail otherwise. Exactly one branch runs.
func Match(
	lst term.Term,
	onNil func() (term.Term, error),
	onCons func(head, tail term.Term) (term.Term, error),
) (term.Term, error) {
	switch v := lst.(type) {
	case term.Nil:
		return onNil()
	case term.Cons:
		return onCons(v.Head, v.Tail)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotList, lst.String())
	}
}

var (
	// IsNil reports whether a list is empty, for use as an If scrutinee.
	IsNil = ops.New("list.isNil", 1, func(args []term.Term) (term.Term, error) {
		switch args[0].(type) {
		case term.Nil:
			return term.Bool(true), nil
		case term.Cons:
			return term.Bool(false), nil
		default:
			return nil, fmt.Errorf("%w: %s", ErrNotList, args[0].String())
		}
	})

	// Head rewrites a non-empty list to its first element.
	Head = ops.New("list.head", 1, func(args []term.Term) (term.Term, error) {
		return Match(args[0],
			func() (term.Term, error) { return nil, ErrEmptyList },
			func(head, _ term.Term) (term.Term, error) { return head, nil },
		)
	})

	// Tail rewrites a non-empty list to everything after its first element.
	Tail = ops.New("list.tail", 1, func(args []term.Term) (term.Term, error) {
		return Match(args[0],
			func() (term.Term, error) { return nil, ErrEmptyList },
			func(_, tail term.Term) (term.Term, error) { return tail, nil },
		)
	})
)

// Len walks a fully-reduced list and returns its length.
func Len(lst term.Term) (int, error) {
	n := 0
	for {
		switch v := lst.(type) {
		case term.Nil:
			return n, nil
		case term.Cons:
			n++
			lst = v.Tail
		default:
			return 0, fmt.Errorf("%w: %s", ErrNotList, lst.String())
		}
	}
}

// Register adds the list operations to a registry.
func Register(r *ops.Registry) error {
	for _, op := range []*ops.Op{IsNil, Head, Tail} {
		if err := r.Register(op); err != nil {
			return err
		}
	}
	return nil
}
