package gen_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termgen/go-termgen/engine"
	"github.com/termgen/go-termgen/gen"
	"github.com/termgen/go-termgen/platform/ops"
	"github.com/termgen/go-termgen/platform/term"
)

func reduceText(t *testing.T, input term.Term) string {
	t.Helper()
	r := engine.New(nil, 0)
	out, err := r.ReduceToText(context.Background(), input)
	require.NoError(t, err)
	return out
}

func TestDeclarations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		op       *ops.Op
		args     []term.Term
		expected string
	}{
		{
			"braced",
			gen.Braced,
			[]term.Term{term.Text("int a, b, c;")},
			"{ int a, b, c; }",
		},
		{
			"typedef",
			gen.Typedef,
			[]term.Term{term.Text("Point"), term.Text("struct { int x, y; }")},
			"typedef struct { int x, y; } Point;",
		},
		{
			"struct",
			gen.Struct,
			[]term.Term{term.Text("Point"), term.Text("int x, y;")},
			"struct Point { int x, y; }",
		},
		{
			"anonymous struct",
			gen.AnonStruct,
			[]term.Term{term.Text("int x, y;")},
			"struct { int x, y; }",
		},
		{
			"union",
			gen.Union,
			[]term.Term{term.Text("Value"), term.Text("int i; float f;")},
			"union Value { int i; float f; }",
		},
		{
			"anonymous union",
			gen.AnonUnion,
			[]term.Term{term.Text("int i; float f;")},
			"union { int i; float f; }",
		},
		{
			"enum",
			gen.Enum,
			[]term.Term{term.Text("Color"), term.Text("RED, GREEN")},
			"enum Color { RED, GREEN }",
		},
		{
			"anonymous enum",
			gen.AnonEnum,
			[]term.Term{term.Text("RED, GREEN")},
			"enum { RED, GREEN }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			call, err := term.NewCall(tt.op, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, reduceText(t, call))
		})
	}
}

func TestDeclarationsArePure(t *testing.T) {
	t.Parallel()

	// Formatting combinators read nothing but their arguments: two calls
	// with structurally equal inputs reduce to structurally equal outputs.
	build := func() term.Term {
		return term.MustCall(gen.Struct, term.Text("Point"), term.Text("int x, y;"))
	}

	r := engine.New(nil, 0)
	first, err := r.Reduce(context.Background(), build())
	require.NoError(t, err)
	second, err := r.Reduce(context.Background(), build())
	require.NoError(t, err)
	assert.True(t, term.Equal(first, second))
}

func TestDeclarationArity(t *testing.T) {
	t.Parallel()

	// The named forms take two arguments, the anonymous forms one.
	_, err := term.NewCall(gen.Struct, term.Text("body only"))
	require.ErrorIs(t, err, term.ErrArityMismatch)

	_, err = term.NewCall(gen.AnonStruct, term.Text("name"), term.Text("body"))
	require.ErrorIs(t, err, term.ErrArityMismatch)
}

func TestBracedEmptyBody(t *testing.T) {
	t.Parallel()

	call := term.MustCall(gen.Braced, term.Text(""))
	assert.Equal(t, "{}", reduceText(t, call))
}
