// Package term defines the data the rewrite engine operates on: finalized
// values (C source fragments, counters, lists, tuples) and pending calls
// awaiting a dispatch step.
package term

import (
	"fmt"
	"strings"
)

// Term is either a finalized value or a pending Call. The sealed marker
// method restricts implementations to this package.
type Term interface {
	term() // sealed marker
	String() string
}

// Op is the contract a registered operation satisfies. The concrete type
// lives in platform/ops; it is declared here so Call does not depend on the
// registry.
type Op interface {
	// OpName returns the operation's registered name.
	OpName() string

	// OpArity returns the fixed number of arguments the operation accepts.
	OpArity() int

	// StrictArgs reports whether the engine must reduce all arguments to
	// values before applying the operation. Non-strict operations receive
	// only their first argument (the scrutinee) reduced; the remaining
	// arguments are passed unrewritten.
	StrictArgs() bool

	// Apply performs a single rewrite step.
	Apply(args []Term) (Term, error)
}

// Text is a finalized C source fragment.
type Text string

func (Text) term() {}

func (t Text) String() string { return string(t) }

// Nat is a non-negative counter driving bounded recursion.
type Nat uint

func (Nat) term() {}

func (n Nat) String() string { return fmt.Sprintf("%d", uint(n)) }

// Bool is the result of a comparison, consumed by branch selection.
type Bool bool

func (Bool) term() {}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Nil is the empty list.
type Nil struct{}

func (Nil) term() {}

func (Nil) String() string { return "nil" }

// Cons is a non-empty list: a head element plus the rest. Tail must be Nil
// or another Cons; lists are finite and never mutated.
type Cons struct {
	Head Term
	Tail Term
}

func (Cons) term() {}

func (c Cons) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	var cur Term = c
	first := true
	for {
		cell, ok := cur.(Cons)
		if !ok {
			break
		}
		if !first {
			sb.WriteString(" ")
		}
		first = false
		sb.WriteString(cell.Head.String())
		cur = cell.Tail
	}
	sb.WriteString("]")
	return sb.String()
}

// Tuple is an ordered, fixed-arity group of terms. It is both the
// argument-passing convention between combinators and the shape recursive
// generators accumulate fragments into.
type Tuple []Term

func (Tuple) term() {}

func (t Tuple) String() string {
	parts := make([]string, len(t))
	for i, el := range t {
		parts[i] = el.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Seq is a juxtaposition of sub-terms. Each element reduces independently;
// rendering joins the resulting fragments with single spaces, skipping
// empty fragments.
type Seq []Term

func (Seq) term() {}

func (s Seq) String() string {
	parts := make([]string, 0, len(s))
	for _, el := range s {
		parts = append(parts, el.String())
	}
	return strings.Join(parts, " ")
}

// Call is a pending invocation of an operation. It is only ever built
// through NewCall, which checks arity at construction time.
type Call struct {
	Op   Op
	Args []Term
}

func (*Call) term() {}

func (c *Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Op.OpName() + "(" + strings.Join(parts, ", ") + ")"
}

// NewCall builds a pending invocation of op. The argument count is checked
// against the operation's fixed arity here, so an arity mismatch surfaces
// where the call is constructed rather than when it is eventually dispatched.
func NewCall(op Op, args ...Term) (*Call, error) {
	if op == nil {
		return nil, ErrNilOp
	}
	if len(args) != op.OpArity() {
		return nil, fmt.Errorf(
			"%w: %s expects %d argument(s), got %d",
			ErrArityMismatch, op.OpName(), op.OpArity(), len(args),
		)
	}
	return &Call{Op: op, Args: args}, nil
}

// MustCall is NewCall for call sites with a statically correct argument
// count, such as op libraries building their own recursive steps.
func MustCall(op Op, args ...Term) *Call {
	c, err := NewCall(op, args...)
	if err != nil {
		panic(err)
	}
	return c
}

// IsValue reports whether t contains no pending calls anywhere.
func IsValue(t Term) bool {
	switch v := t.(type) {
	case *Call:
		return false
	case Cons:
		return IsValue(v.Head) && IsValue(v.Tail)
	case Tuple:
		for _, el := range v {
			if !IsValue(el) {
				return false
			}
		}
		return true
	case Seq:
		for _, el := range v {
			if !IsValue(el) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
