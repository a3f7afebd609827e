package term

import (
	"fmt"
	"strconv"
	"strings"
)

// Render turns a fully-reduced value into C source text.
//
// Seq elements are joined with single spaces, skipping empty fragments, so
// generators can juxtapose fragments without tracking separators. Tuples do
// not render: a generator must decide the separator (comma, terminator)
// before its result leaves the engine.
func Render(t Term) (string, error) {
	switch v := t.(type) {
	case Text:
		return string(v), nil
	case Nat:
		return strconv.FormatUint(uint64(v), 10), nil
	case Seq:
		parts := make([]string, 0, len(v))
		for _, el := range v {
			s, err := Render(el)
			if err != nil {
				return "", err
			}
			if s == "" {
				continue
			}
			parts = append(parts, s)
		}
		return strings.Join(parts, " "), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrNotRendered, t.String())
	}
}

// Equal reports structural equality of two terms. Calls compare by operation
// name and argument structure, so the referential-transparency guarantee
// (same op, structurally equal args, structurally equal result) is checkable.
func Equal(a, b Term) bool {
	switch av := a.(type) {
	case Text:
		bv, ok := b.(Text)
		return ok && av == bv
	case Nat:
		bv, ok := b.(Nat)
		return ok && av == bv
	case Bool:
		bv, ok := b.(Bool)
		return ok && av == bv
	case Nil:
		_, ok := b.(Nil)
		return ok
	case Cons:
		bv, ok := b.(Cons)
		return ok && Equal(av.Head, bv.Head) && Equal(av.Tail, bv.Tail)
	case Tuple:
		bv, ok := b.(Tuple)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case Seq:
		bv, ok := b.(Seq)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Call:
		bv, ok := b.(*Call)
		if !ok || av.Op.OpName() != bv.Op.OpName() || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ListOf builds a Cons chain from the given elements.
func ListOf(elems ...Term) Term {
	var lst Term = Nil{}
	for i := len(elems) - 1; i >= 0; i-- {
		lst = Cons{Head: elems[i], Tail: lst}
	}
	return lst
}

// TextsOf builds a list of Text fragments, a convenience for type lists.
func TextsOf(fragments ...string) Term {
	elems := make([]Term, len(fragments))
	for i, f := range fragments {
		elems[i] = Text(f)
	}
	return ListOf(elems...)
}
