package logging

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_NoPathDiscards(t *testing.T) {
	lg, closeFn, err := New(Config{})
	require.NoError(t, err)
	require.NotNil(t, lg)
	assert.NoError(t, closeFn())
	assert.False(t, lg.Enabled(context.Background(), slog.LevelError))
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fa2en.log")

	lg, closeFn, err := New(Config{Path: path, Version: "test", Level: slog.LevelDebug})
	require.NoError(t, err)
	lg.Info("mapping saved", "entries", 3)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "mapping saved")
	assert.Contains(t, string(data), "entries=3")
	assert.Contains(t, string(data), "version=test")
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	lg := NewWithWriter(&buf, Config{JSON: true})
	lg.Warn("load failed")

	assert.Contains(t, buf.String(), `"msg":"load failed"`)
	assert.Contains(t, buf.String(), `"level":"WARN"`)
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestContextHelpers(t *testing.T) {
	lg, rec := NewRecorder()
	ctx := WithLogger(context.Background(), lg)

	FromContext(ctx).Info("hello", "k", "v")
	FromContext(context.Background()).Info("dropped")

	entries := rec.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Msg)
	assert.Equal(t, "v", entries[0].Attrs["k"])
}
