package termgen

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/termgen/go-termgen/engine"
	"github.com/termgen/go-termgen/options"
)

func TestFromStarlarkString(t *testing.T) {
	t.Parallel()

	t.Run("builds and runs a generator", func(t *testing.T) {
		t.Parallel()
		g, err := FromStarlarkString(`emit(typedef("Point", "struct { int x, y; }"))`)
		require.NoError(t, err)

		resp, err := g.Generate(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "typedef struct { int x, y; } Point;\n", resp.Output())
	})

	t.Run("empty source", func(t *testing.T) {
		t.Parallel()
		_, err := FromStarlarkString("   ")
		require.Error(t, err)
	})

	t.Run("compile error", func(t *testing.T) {
		t.Parallel()
		_, err := FromStarlarkString("def broken(")
		require.Error(t, err)
	})
}

func TestFromStarlarkFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "gen.star")
	source := strings.Join([]string{
		`types = c_list("int", "long long", "char*")`,
		`emit(struct_def("Pack", render(indexed_fields(types))))`,
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(source), 0o644))

	g, err := FromStarlarkFile(path)
	require.NoError(t, err)

	resp, err := g.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "struct Pack { int _0; long long _1; char* _2; }\n", resp.Output())
	assert.Equal(t, "file://"+path, resp.GetUnitID())
}

func TestNewStarlarkGenerator(t *testing.T) {
	t.Parallel()

	t.Run("loader is required", func(t *testing.T) {
		t.Parallel()
		_, err := NewStarlarkGenerator()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no loader specified")
	})

	t.Run("bad option surfaces", func(t *testing.T) {
		t.Parallel()
		_, err := FromStarlarkString("x = 1", options.WithMaxDepth(-1))
		require.Error(t, err)
	})
}

func TestGenerateString(t *testing.T) {
	t.Parallel()

	t.Run("full generator program", func(t *testing.T) {
		t.Parallel()
		source := strings.Join([]string{
			`types = c_list("int", "char*")`,
			`emit(typedef("Args", "struct " + render(braced(render(indexed_fields(types))))))`,
			`emit("void apply" + render(indexed_params(types)) + ";")`,
			`emit("static const Args zero = " + render(indexed_init_list(nat(2))) + ";")`,
		}, "\n")

		out, err := GenerateString(context.Background(), source)
		require.NoError(t, err)
		assert.Equal(t, strings.Join([]string{
			"typedef struct { int _0; char* _1; } Args;",
			"void apply(int _0, char* _1);",
			"static const Args zero = { _0, _1 };",
			"",
		}, "\n"), out)
	})

	t.Run("empty parameter list becomes void", func(t *testing.T) {
		t.Parallel()
		out, err := GenerateString(context.Background(),
			`emit("int zero" + render(indexed_params(c_list())) + ";")`)
		require.NoError(t, err)
		assert.Equal(t, "int zero(void);\n", out)
	})

	t.Run("depth limit is configurable", func(t *testing.T) {
		t.Parallel()
		source := `emit(render(indexed_args(nat(100))))`

		_, err := GenerateString(context.Background(), source, options.WithMaxDepth(10))
		require.ErrorIs(t, err, engine.ErrDepthExceeded)

		out, err := GenerateString(context.Background(), source)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(out, "_0, _1,"))
	})
}
