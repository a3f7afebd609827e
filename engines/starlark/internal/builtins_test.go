package internal

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termgen/go-termgen/engine"
	"github.com/termgen/go-termgen/platform/term"
	starlarkLib "go.starlark.net/starlark"
)

func newTestState(t *testing.T) *RunState {
	t.Helper()
	state, err := NewRunState(context.Background(), engine.New(nil, 0))
	require.NoError(t, err)
	return state
}

// callBuiltin invokes a builtin from the universe with positional args only.
func callBuiltin(
	t *testing.T,
	universe starlarkLib.StringDict,
	name string,
	args ...starlarkLib.Value,
) (starlarkLib.Value, error) {
	t.Helper()
	b, ok := universe[name].(*starlarkLib.Builtin)
	require.True(t, ok, "builtin %q missing from universe", name)
	thread := &starlarkLib.Thread{Name: "test"}
	return starlarkLib.Call(thread, b, starlarkLib.Tuple(args), nil)
}

func TestBuiltinNamesCoverUniverse(t *testing.T) {
	t.Parallel()

	universe := Builtins(newTestState(t))
	names := BuiltinNames()
	assert.Len(t, universe, len(names))
	for _, name := range names {
		assert.Contains(t, universe, name)
	}
}

func TestToTerm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    starlarkLib.Value
		expected term.Term
		wantErr  bool
	}{
		{"string to text", starlarkLib.String("int"), term.Text("int"), false},
		{"int to nat", starlarkLib.MakeInt(7), term.Nat(7), false},
		{"wrapped term", &TermValue{Term: term.Nat(3)}, term.Nat(3), false},
		{"negative int", starlarkLib.MakeInt(-1), nil, true},
		{"none", starlarkLib.None, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := toTerm(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, term.Equal(tt.expected, got))
		})
	}
}

func TestValueBuiltins(t *testing.T) {
	t.Parallel()

	universe := Builtins(newTestState(t))

	t.Run("text", func(t *testing.T) {
		t.Parallel()
		v, err := callBuiltin(t, universe, "text", starlarkLib.String("int x;"))
		require.NoError(t, err)
		tv, ok := v.(*TermValue)
		require.True(t, ok)
		assert.True(t, term.Equal(term.Text("int x;"), tv.Term))
	})

	t.Run("nat", func(t *testing.T) {
		t.Parallel()
		v, err := callBuiltin(t, universe, "nat", starlarkLib.MakeInt(4))
		require.NoError(t, err)
		tv, ok := v.(*TermValue)
		require.True(t, ok)
		assert.True(t, term.Equal(term.Nat(4), tv.Term))
	})

	t.Run("nat rejects negatives", func(t *testing.T) {
		t.Parallel()
		_, err := callBuiltin(t, universe, "nat", starlarkLib.MakeInt(-2))
		require.Error(t, err)
	})

	t.Run("c_list", func(t *testing.T) {
		t.Parallel()
		v, err := callBuiltin(t, universe, "c_list",
			starlarkLib.String("int"), starlarkLib.String("char*"))
		require.NoError(t, err)
		tv, ok := v.(*TermValue)
		require.True(t, ok)
		assert.True(t, term.Equal(
			term.ListOf(term.Text("int"), term.Text("char*")),
			tv.Term,
		))
	})
}

func TestOpBuiltins(t *testing.T) {
	t.Parallel()

	state := newTestState(t)
	universe := Builtins(state)

	t.Run("constructs an unreduced call", func(t *testing.T) {
		t.Parallel()
		v, err := callBuiltin(t, universe, "cat",
			starlarkLib.String("a"), starlarkLib.String("b"))
		require.NoError(t, err)
		tv, ok := v.(*TermValue)
		require.True(t, ok)
		assert.False(t, term.IsValue(tv.Term), "op builtins build calls, not results")

		out, err := state.Reducer.ReduceToText(state.Ctx, tv.Term)
		require.NoError(t, err)
		assert.Equal(t, "ab", out)
	})

	t.Run("wrong arity fails immediately", func(t *testing.T) {
		t.Parallel()
		_, err := callBuiltin(t, universe, "cat", starlarkLib.String("a"))
		require.ErrorIs(t, err, term.ErrArityMismatch)
	})

	t.Run("keyword arguments rejected", func(t *testing.T) {
		t.Parallel()
		b := universe["cat"].(*starlarkLib.Builtin)
		thread := &starlarkLib.Thread{Name: "test"}
		_, err := starlarkLib.Call(thread, b,
			starlarkLib.Tuple{starlarkLib.String("a"), starlarkLib.String("b")},
			[]starlarkLib.Tuple{{starlarkLib.String("x"), starlarkLib.String("y")}},
		)
		require.Error(t, err)
	})
}

func TestEmitAndRender(t *testing.T) {
	t.Parallel()

	state := newTestState(t)
	universe := Builtins(state)

	v, err := callBuiltin(t, universe, "braced", starlarkLib.String("int a;"))
	require.NoError(t, err)

	rendered, err := callBuiltin(t, universe, "render", v)
	require.NoError(t, err)
	assert.Equal(t, starlarkLib.String("{ int a; }"), rendered)

	_, err = callBuiltin(t, universe, "emit", v)
	require.NoError(t, err)
	_, err = callBuiltin(t, universe, "emit", starlarkLib.String("int b;"))
	require.NoError(t, err)

	assert.Equal(t, "{ int a; }\nint b;\n", state.Output())
}

func TestGensymBuiltin(t *testing.T) {
	t.Parallel()

	state := newTestState(t)
	universe := Builtins(state)

	first, err := callBuiltin(t, universe, "gensym",
		starlarkLib.String("tg_"), starlarkLib.String("coords"))
	require.NoError(t, err)
	second, err := callBuiltin(t, universe, "gensym",
		starlarkLib.String("tg_"), starlarkLib.String("coords"))
	require.NoError(t, err)

	assert.Equal(t, starlarkLib.String("tg_coords_1"), first)
	assert.Equal(t, starlarkLib.String("tg_coords_2"), second)
}

func TestStatementBuiltins(t *testing.T) {
	t.Parallel()

	state := newTestState(t)
	universe := Builtins(state)

	v, err := callBuiltin(t, universe, "chain_expr",
		starlarkLib.String("x = 5"), starlarkLib.String("puts(\"a\");"))
	require.NoError(t, err)
	s, ok := starlarkLib.AsString(v)
	require.True(t, ok)
	assert.Contains(t, s, "= ((x = 5), 0);")

	v, err = callBuiltin(t, universe, "introduce_ptr",
		starlarkLib.String("double"), starlarkLib.String("p"),
		starlarkLib.String("&x"), starlarkLib.String("f(p);"))
	require.NoError(t, err)
	s, ok = starlarkLib.AsString(v)
	require.True(t, ok)
	assert.Equal(t, "for (double *p = (&x); p != (void *)0; p = (void *)0) f(p);", s)
}

func TestTermValue(t *testing.T) {
	t.Parallel()

	v := &TermValue{Term: term.Text("x")}
	assert.Equal(t, "term", v.Type())
	assert.Equal(t, starlarkLib.True, v.Truth())
	_, err := v.Hash()
	require.Error(t, err)
}
