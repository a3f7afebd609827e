package gen

import (
	"fmt"

	"github.com/termgen/go-termgen/oplib/ctext"
	"github.com/termgen/go-termgen/oplib/listkit"
	"github.com/termgen/go-termgen/oplib/natural"
	"github.com/termgen/go-termgen/oplib/tuplekit"
	"github.com/termgen/go-termgen/platform/ops"
	"github.com/termgen/go-termgen/platform/term"
)

// The indexed generators accumulate fragments into a tuple seeded with a
// single empty placeholder, then strip it with tuple.drop once the
// recursion bottoms out. Every auxiliary value (the position index, the
// accumulator) is threaded through the recursive call's own arguments.

var (
	// IndexedParams rewrites a type list to `(T0 _0, …, Tn _n)`, or `(void)`
	// for the empty list; a zero-argument C parameter list is never bare
	// empty parentheses.
	IndexedParams = ops.New("gen.indexedParams", 1, func(args []term.Term) (term.Term, error) {
		isNil := term.MustCall(listkit.IsNil, args[0])
		items := term.MustCall(indexedParamsAux, args[0], term.Nat(0), seedAcc())
		return term.MustCall(ctext.If,
			isNil,
			term.Text("(void)"),
			term.MustCall(ctext.Paren, joinDroppingSeed(items)),
		), nil
	})

	// IndexedFields rewrites a type list to `T0 _0; T1 _1; …;`, or emptiness
	// for the empty list. Fields live inside a block, so no substitute for
	// the empty case is needed.
	IndexedFields = ops.New("gen.indexedFields", 1, func(args []term.Term) (term.Term, error) {
		return term.MustCall(indexedFieldsAux, args[0], term.Nat(0)), nil
	})

	// IndexedInitializerList rewrites a count to `{ _0, …, _{n-1} }`, or
	// exactly `{ 0 }` for zero, since braces need some content to be legal C.
	IndexedInitializerList = ops.New("gen.indexedInitializerList", 1, func(args []term.Term) (term.Term, error) {
		items := term.MustCall(indexedItemsAux, args[0], term.Nat(0), seedAcc())
		return term.MustCall(natural.IfZero,
			args[0],
			term.Text("{ 0 }"),
			term.MustCall(Braced, joinDroppingSeed(items)),
		), nil
	})

	// IndexedArgs rewrites a count to `_0, …, _{n-1}`; zero yields the empty
	// fragment, never a stray comma.
	IndexedArgs = ops.New("gen.indexedArgs", 1, func(args []term.Term) (term.Term, error) {
		items := term.MustCall(indexedItemsAux, args[0], term.Nat(0), seedAcc())
		return joinDroppingSeed(items), nil
	})
)

// The auxiliary operations build their own recursive step inside their
// rewrite functions, so they cannot be assigned in their declarations: a
// package-level initializer that mentions the variable it initializes, even
// from inside a function literal, is an initialization cycle. Declaring them
// first and assigning in init breaks the cycle; the closures dereference the
// variables only at dispatch time, long after init has run.
var (
	indexedItemsAux  *ops.Op
	indexedParamsAux *ops.Op
	indexedFieldsAux *ops.Op
)

func init() {
	// indexedItemsAux counts remaining steps down to zero, appending `_i` for
	// position i. The recursive branch contains nat.dec of the scrutinee,
	// which is only safe because nat.ifZero never rewrites the untaken branch.
	indexedItemsAux = ops.New("gen.indexedItemsAux", 3, func(args []term.Term) (term.Term, error) {
		remaining, index, acc := args[0], args[1], args[2]

		i, ok := index.(term.Nat)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrBadIndex, index.String())
		}

		recurse := term.MustCall(indexedItemsAux,
			term.MustCall(natural.Dec, remaining),
			term.MustCall(natural.Inc, index),
			term.MustCall(tuplekit.Append, acc, term.Text(fmt.Sprintf("_%d", uint(i)))),
		)
		return term.MustCall(natural.IfZero, remaining, acc, recurse), nil
	})

	// indexedParamsAux walks the type list, appending `T _i` per element.
	indexedParamsAux = ops.New("gen.indexedParamsAux", 3, func(args []term.Term) (term.Term, error) {
		lst, index, acc := args[0], args[1], args[2]

		i, ok := index.(term.Nat)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrBadIndex, index.String())
		}

		return listkit.Match(lst,
			func() (term.Term, error) {
				return acc, nil
			},
			func(head, tail term.Term) (term.Term, error) {
				ty, err := term.Render(head)
				if err != nil {
					return nil, err
				}
				item := term.Text(fmt.Sprintf("%s _%d", ty, uint(i)))
				return term.MustCall(indexedParamsAux,
					tail,
					term.MustCall(natural.Inc, index),
					term.MustCall(tuplekit.Append, acc, item),
				), nil
			},
		)
	})

	// indexedFieldsAux walks the type list, juxtaposing `T _i;` pieces.
	indexedFieldsAux = ops.New("gen.indexedFieldsAux", 2, func(args []term.Term) (term.Term, error) {
		lst, index := args[0], args[1]

		i, ok := index.(term.Nat)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrBadIndex, index.String())
		}

		return listkit.Match(lst,
			func() (term.Term, error) {
				return term.Text(""), nil
			},
			func(head, tail term.Term) (term.Term, error) {
				ty, err := term.Render(head)
				if err != nil {
					return nil, err
				}
				field := term.Text(fmt.Sprintf("%s _%d;", ty, uint(i)))
				rest := term.MustCall(indexedFieldsAux, tail, term.MustCall(natural.Inc, index))
				return term.Seq{field, rest}, nil
			},
		)
	})
}

// seedAcc is the accumulator's placeholder head, dropped after assembly.
func seedAcc() term.Tuple {
	return tuplekit.Pack(term.Text(""))
}

func joinDroppingSeed(items term.Term) term.Term {
	return term.MustCall(tuplekit.JoinComma,
		term.MustCall(tuplekit.Drop, term.Nat(1), items),
	)
}
