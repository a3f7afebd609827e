// Package natural provides the counter operations recursive generators are
// bounded by: increment, decrement, equality, and the non-strict
// branch-on-zero primitive.
package natural

import (
	"fmt"

	"github.com/termgen/go-termgen/platform/ops"
	"github.com/termgen/go-termgen/platform/term"
)

var (
	// Inc rewrites a counter to its successor.
	Inc = ops.New("nat.inc", 1, func(args []term.Term) (term.Term, error) {
		n, err := expectNat(args[0])
		if err != nil {
			return nil, err
		}
		return n + 1, nil
	})

	// Dec rewrites a counter to its predecessor. Decrementing zero is a
	// programming error in the caller: a counter-driven recursion was
	// entered with an out-of-range bound.
	Dec = ops.New("nat.dec", 1, func(args []term.Term) (term.Term, error) {
		n, err := expectNat(args[0])
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, ErrUnderflow
		}
		return n - 1, nil
	})

	// Eq compares two counters.
	Eq = ops.New("nat.eq", 2, func(args []term.Term) (term.Term, error) {
		a, err := expectNat(args[0])
		if err != nil {
			return nil, err
		}
		b, err := expectNat(args[1])
		if err != nil {
			return nil, err
		}
		return term.Bool(a == b), nil
	})

	// IfZero selects its second argument when the scrutinee is zero and its
	// third otherwise. Only the scrutinee is reduced before selection; the
	// untaken branch is returned nowhere and therefore never rewritten, so a
	// branch valid only for n > 0 may freely reference Dec(n).
	IfZero = ops.NewNonStrict("nat.ifZero", 3, func(args []term.Term) (term.Term, error) {
		n, err := expectNat(args[0])
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return args[1], nil
		}
		return args[2], nil
	})
)

func expectNat(t term.Term) (term.Nat, error) {
	n, ok := t.(term.Nat)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotNat, t.String())
	}
	return n, nil
}

// Register adds the natural-number operations to a registry.
func Register(r *ops.Registry) error {
	for _, op := range []*ops.Op{Inc, Dec, Eq, IfZero} {
		if err := r.Register(op); err != nil {
			return err
		}
	}
	return nil
}
