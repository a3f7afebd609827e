package internal

import (
	"fmt"

	"github.com/termgen/go-termgen/gen"
	"github.com/termgen/go-termgen/platform/term"
	starlarkLib "go.starlark.net/starlark"
)

// TermValue wraps an engine term as an opaque Starlark value. Generator
// programs pass these between builtins; only emit and render force them.
type TermValue struct {
	Term term.Term
}

func (v *TermValue) String() string          { return v.Term.String() }
func (v *TermValue) Type() string            { return "term" }
func (v *TermValue) Freeze()                 {}
func (v *TermValue) Truth() starlarkLib.Bool { return starlarkLib.True }
func (v *TermValue) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: term")
}

// toTerm accepts either a wrapped term, a string (finalized fragment), or a
// non-negative int (counter).
func toTerm(v starlarkLib.Value) (term.Term, error) {
	switch val := v.(type) {
	case *TermValue:
		return val.Term, nil
	case starlarkLib.String:
		return term.Text(val.GoString()), nil
	case starlarkLib.Int:
		n, ok := val.Uint64()
		if !ok {
			return nil, fmt.Errorf("counter out of range: %s", val.String())
		}
		return term.Nat(n), nil
	default:
		return nil, fmt.Errorf("cannot use %s as a term", v.Type())
	}
}

// opBuiltins maps each Starlark builtin name to the registered operation it
// constructs a call of. Arity comes from the operation itself; a wrong
// argument count fails at call-construction time.
var opBuiltins = map[string]string{
	"cat":               "text.cat",
	"paren":             "text.paren",
	"if_zero":           "nat.ifZero",
	"braced":            "gen.braced",
	"typedef":           "gen.typedef",
	"struct_def":        "gen.struct",
	"anon_struct":       "gen.anonStruct",
	"union_def":         "gen.union",
	"anon_union":        "gen.anonUnion",
	"enum_def":          "gen.enum",
	"anon_enum":         "gen.anonEnum",
	"indexed_params":    "gen.indexedParams",
	"indexed_fields":    "gen.indexedFields",
	"indexed_init_list": "gen.indexedInitializerList",
	"indexed_args":      "gen.indexedArgs",
}

// BuiltinNames returns every predeclared name generator programs may use,
// for the compiler's resolve step.
func BuiltinNames() []string {
	names := []string{
		"text", "nat", "c_list",
		"gensym", "emit", "render",
		"introduce_vars", "introduce_ptr", "chain_expr", "suppress_unused",
	}
	for name := range opBuiltins {
		names = append(names, name)
	}
	return names
}

// Builtins assembles the Starlark universe for one run.
func Builtins(state *RunState) starlarkLib.StringDict {
	universe := make(starlarkLib.StringDict)

	universe["text"] = starlarkLib.NewBuiltin("text",
		func(_ *starlarkLib.Thread, b *starlarkLib.Builtin, args starlarkLib.Tuple, kwargs []starlarkLib.Tuple) (starlarkLib.Value, error) {
			var s string
			if err := starlarkLib.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &s); err != nil {
				return nil, err
			}
			return &TermValue{Term: term.Text(s)}, nil
		})

	universe["nat"] = starlarkLib.NewBuiltin("nat",
		func(_ *starlarkLib.Thread, b *starlarkLib.Builtin, args starlarkLib.Tuple, kwargs []starlarkLib.Tuple) (starlarkLib.Value, error) {
			var n int
			if err := starlarkLib.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &n); err != nil {
				return nil, err
			}
			if n < 0 {
				return nil, fmt.Errorf("%s: counter must be non-negative, got %d", b.Name(), n)
			}
			return &TermValue{Term: term.Nat(n)}, nil
		})

	universe["c_list"] = starlarkLib.NewBuiltin("c_list",
		func(_ *starlarkLib.Thread, b *starlarkLib.Builtin, args starlarkLib.Tuple, kwargs []starlarkLib.Tuple) (starlarkLib.Value, error) {
			if len(kwargs) > 0 {
				return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
			}
			elems := make([]term.Term, len(args))
			for i, a := range args {
				t, err := toTerm(a)
				if err != nil {
					return nil, fmt.Errorf("%s: argument %d: %w", b.Name(), i+1, err)
				}
				elems[i] = t
			}
			return &TermValue{Term: term.ListOf(elems...)}, nil
		})

	for builtinName, opName := range opBuiltins {
		universe[builtinName] = opBuiltin(state, builtinName, opName)
	}

	universe["gensym"] = starlarkLib.NewBuiltin("gensym",
		func(_ *starlarkLib.Thread, b *starlarkLib.Builtin, args starlarkLib.Tuple, kwargs []starlarkLib.Tuple) (starlarkLib.Value, error) {
			var prefix, id string
			if err := starlarkLib.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &prefix, &id); err != nil {
				return nil, err
			}
			sym, err := state.Reducer.ReduceToText(state.Ctx, state.Session.SymTerm(prefix, id))
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			return starlarkLib.String(sym), nil
		})

	universe["introduce_vars"] = starlarkLib.NewBuiltin("introduce_vars",
		func(_ *starlarkLib.Thread, b *starlarkLib.Builtin, args starlarkLib.Tuple, kwargs []starlarkLib.Tuple) (starlarkLib.Value, error) {
			var decls, stmt string
			if err := starlarkLib.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &decls, &stmt); err != nil {
				return nil, err
			}
			out := gen.IntroduceVars(state.Session, decls, func() string { return stmt })
			return starlarkLib.String(out), nil
		})

	universe["introduce_ptr"] = starlarkLib.NewBuiltin("introduce_ptr",
		func(_ *starlarkLib.Thread, b *starlarkLib.Builtin, args starlarkLib.Tuple, kwargs []starlarkLib.Tuple) (starlarkLib.Value, error) {
			var ty, name, init, stmt string
			if err := starlarkLib.UnpackPositionalArgs(b.Name(), args, kwargs, 4, &ty, &name, &init, &stmt); err != nil {
				return nil, err
			}
			out := gen.IntroduceNonNullPtr(ty, name, init, func(string) string { return stmt })
			return starlarkLib.String(out), nil
		})

	universe["chain_expr"] = starlarkLib.NewBuiltin("chain_expr",
		func(_ *starlarkLib.Thread, b *starlarkLib.Builtin, args starlarkLib.Tuple, kwargs []starlarkLib.Tuple) (starlarkLib.Value, error) {
			var expr, stmt string
			if err := starlarkLib.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &expr, &stmt); err != nil {
				return nil, err
			}
			out := gen.ChainExpr(state.Session, expr, func() string { return stmt })
			return starlarkLib.String(out), nil
		})

	universe["suppress_unused"] = starlarkLib.NewBuiltin("suppress_unused",
		func(_ *starlarkLib.Thread, b *starlarkLib.Builtin, args starlarkLib.Tuple, kwargs []starlarkLib.Tuple) (starlarkLib.Value, error) {
			var expr, stmt string
			if err := starlarkLib.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &expr, &stmt); err != nil {
				return nil, err
			}
			out := gen.SuppressUnused(state.Session, expr, func() string { return stmt })
			return starlarkLib.String(out), nil
		})

	universe["render"] = starlarkLib.NewBuiltin("render",
		func(_ *starlarkLib.Thread, b *starlarkLib.Builtin, args starlarkLib.Tuple, kwargs []starlarkLib.Tuple) (starlarkLib.Value, error) {
			text, err := reduceArg(state, b, args, kwargs)
			if err != nil {
				return nil, err
			}
			return starlarkLib.String(text), nil
		})

	universe["emit"] = starlarkLib.NewBuiltin("emit",
		func(_ *starlarkLib.Thread, b *starlarkLib.Builtin, args starlarkLib.Tuple, kwargs []starlarkLib.Tuple) (starlarkLib.Value, error) {
			text, err := reduceArg(state, b, args, kwargs)
			if err != nil {
				return nil, err
			}
			state.Emit(text)
			return starlarkLib.None, nil
		})

	return universe
}

// opBuiltin constructs a builtin that builds (but does not reduce) a call of
// the named registered operation.
func opBuiltin(state *RunState, builtinName, opName string) *starlarkLib.Builtin {
	return starlarkLib.NewBuiltin(builtinName,
		func(_ *starlarkLib.Thread, b *starlarkLib.Builtin, args starlarkLib.Tuple, kwargs []starlarkLib.Tuple) (starlarkLib.Value, error) {
			if len(kwargs) > 0 {
				return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
			}
			op, err := state.Registry.Lookup(opName)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			termArgs := make([]term.Term, len(args))
			for i, a := range args {
				t, err := toTerm(a)
				if err != nil {
					return nil, fmt.Errorf("%s: argument %d: %w", b.Name(), i+1, err)
				}
				termArgs[i] = t
			}
			call, err := term.NewCall(op, termArgs...)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			return &TermValue{Term: call}, nil
		})
}

func reduceArg(
	state *RunState,
	b *starlarkLib.Builtin,
	args starlarkLib.Tuple,
	kwargs []starlarkLib.Tuple,
) (string, error) {
	var v starlarkLib.Value
	if err := starlarkLib.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &v); err != nil {
		return "", err
	}
	t, err := toTerm(v)
	if err != nil {
		return "", fmt.Errorf("%s: %w", b.Name(), err)
	}
	text, err := state.Reducer.ReduceToText(state.Ctx, t)
	if err != nil {
		return "", fmt.Errorf("%s: %w", b.Name(), err)
	}
	return text, nil
}
