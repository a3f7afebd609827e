package script

import (
	"errors"
	"io"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLoader struct {
	source string
	err    error
}

func (l *stubLoader) GetReader() (io.ReadCloser, error) {
	if l.err != nil {
		return nil, l.err
	}
	return io.NopCloser(strings.NewReader(l.source)), nil
}

func (l *stubLoader) GetSourceURL() *url.URL { return nil }

type stubContent struct {
	source string
}

func (c *stubContent) GetSource() string { return c.source }
func (c *stubContent) GetByteCode() any  { return c.source }

type stubCompiler struct {
	err error
}

func (c *stubCompiler) Compile(reader io.ReadCloser) (ExecutableContent, error) {
	defer func() { _ = reader.Close() }()
	if c.err != nil {
		return nil, c.err
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	return &stubContent{source: string(data)}, nil
}

func TestNewExecutableUnit(t *testing.T) {
	t.Parallel()

	t.Run("explicit unit ID", func(t *testing.T) {
		t.Parallel()
		unit, err := NewExecutableUnit(nil, "unit-1", &stubLoader{source: "x = 1"}, &stubCompiler{})
		require.NoError(t, err)
		assert.Equal(t, "unit-1", unit.GetID())
		assert.Equal(t, "x = 1", unit.GetContent().GetSource())
	})

	t.Run("checksum ID fallback", func(t *testing.T) {
		t.Parallel()
		unit, err := NewExecutableUnit(nil, "", &stubLoader{source: "x = 1"}, &stubCompiler{})
		require.NoError(t, err)
		assert.Len(t, unit.GetID(), checksumLength)

		again, err := NewExecutableUnit(nil, "", &stubLoader{source: "x = 1"}, &stubCompiler{})
		require.NoError(t, err)
		assert.Equal(t, unit.GetID(), again.GetID(), "same source, same identity")
	})

	t.Run("nil compiler", func(t *testing.T) {
		t.Parallel()
		_, err := NewExecutableUnit(nil, "unit-1", &stubLoader{source: "x = 1"}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "compiler is nil")
	})

	t.Run("nil loader", func(t *testing.T) {
		t.Parallel()
		_, err := NewExecutableUnit(nil, "unit-1", nil, &stubCompiler{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loader is nil")
	})

	t.Run("loader failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("disk on fire")
		_, err := NewExecutableUnit(nil, "unit-1", &stubLoader{err: boom}, &stubCompiler{})
		require.ErrorIs(t, err, boom)
	})

	t.Run("compiler failure", func(t *testing.T) {
		t.Parallel()
		boom := errors.New("syntax error")
		_, err := NewExecutableUnit(nil, "unit-1", &stubLoader{source: "x = 1"}, &stubCompiler{err: boom})
		require.ErrorIs(t, err, boom)
	})
}
