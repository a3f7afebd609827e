// Package tuplekit packs and unpacks fixed-arity groups of terms. Recursive
// generators accumulate their fragments into tuples, then strip the leading
// placeholder element with Drop before joining, the structural counterpart
// of assembling a separated sequence and cutting the leading separator.
package tuplekit

import (
	"fmt"
	"strings"

	"github.com/termgen/go-termgen/platform/ops"
	"github.com/termgen/go-termgen/platform/term"
)

var (
	// Append rewrites (tuple, x) to the tuple with x added at the end.
	Append = ops.New("tuple.append", 2, func(args []term.Term) (term.Term, error) {
		t, err := expectTuple(args[0])
		if err != nil {
			return nil, err
		}
		out := make(term.Tuple, 0, len(t)+1)
		out = append(out, t...)
		out = append(out, args[1])
		return out, nil
	})

	// Concat rewrites two tuples to their concatenation.
	Concat = ops.New("tuple.concat", 2, func(args []term.Term) (term.Term, error) {
		a, err := expectTuple(args[0])
		if err != nil {
			return nil, err
		}
		b, err := expectTuple(args[1])
		if err != nil {
			return nil, err
		}
		out := make(term.Tuple, 0, len(a)+len(b))
		out = append(out, a...)
		out = append(out, b...)
		return out, nil
	})

	// Drop rewrites (n, tuple) to the tuple without its n leading items.
	Drop = ops.New("tuple.drop", 2, func(args []term.Term) (term.Term, error) {
		n, ok := args[0].(term.Nat)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotNat, args[0].String())
		}
		t, err := expectTuple(args[1])
		if err != nil {
			return nil, err
		}
		if int(n) > len(t) {
			return nil, fmt.Errorf(
				"%w: cannot drop %d leading item(s) from a tuple of %d",
				ErrTooShort, int(n), len(t),
			)
		}
		out := make(term.Tuple, len(t)-int(n))
		copy(out, t[n:])
		return out, nil
	})

	// JoinComma rewrites a tuple of fragments to a single comma-separated
	// fragment. An empty tuple joins to the empty fragment, never a comma.
	JoinComma = ops.New("tuple.joinComma", 1, func(args []term.Term) (term.Term, error) {
		return join(args[0], ", ")
	})
)

// Pack builds a tuple value from the given terms.
func Pack(elems ...term.Term) term.Tuple {
	out := make(term.Tuple, len(elems))
	copy(out, elems)
	return out
}

func join(t term.Term, sep string) (term.Term, error) {
	tup, err := expectTuple(t)
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(tup))
	for i, el := range tup {
		s, err := term.Render(el)
		if err != nil {
			return nil, err
		}
		parts[i] = s
	}
	return term.Text(strings.Join(parts, sep)), nil
}

func expectTuple(t term.Term) (term.Tuple, error) {
	tup, ok := t.(term.Tuple)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotTuple, t.String())
	}
	return tup, nil
}

// Register adds the tuple operations to a registry.
func Register(r *ops.Registry) error {
	for _, op := range []*ops.Op{Append, Concat, Drop, JoinComma} {
		if err := r.Register(op); err != nil {
			return err
		}
	}
	return nil
}
