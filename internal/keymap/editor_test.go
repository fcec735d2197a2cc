package keymap

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempConfig(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), ".fa2en_config")
}

func TestLoadFile_Missing(t *testing.T) {
	m, ok, err := LoadFile(tempConfig(t))
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, m)
}

func TestLoadFile_TrimsWhitespace(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("  a:b|c:d\n\n"), 0644))

	m, ok, err := LoadFile(path)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []Entry{{From: "a", To: "b"}, {From: "c", To: "d"}}, m.Entries())
}

func TestLoadFile_InvalidUTF8(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte{0xff, 0xfe, ':', 'a'}, 0644))

	_, ok, err := LoadFile(path)
	assert.False(t, ok)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.ErrorIs(t, err, ErrNotText)
	assert.Equal(t, path, loadErr.Path)
}

func TestLoadFile_Directory(t *testing.T) {
	dir := t.TempDir()

	_, ok, err := LoadFile(dir)
	assert.False(t, ok)

	var loadErr *LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestSaveFile_Overwrites(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("old:content|that:is|much:longer"), 0644))

	require.NoError(t, SaveFile(path, Parse("a:b")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a:b", string(data))
}

func TestSaveFile_Failure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "config")

	err := SaveFile(path, Parse("a:b"))

	var saveErr *SaveError
	require.ErrorAs(t, err, &saveErr)
	assert.Equal(t, path, saveErr.Path)
	assert.Contains(t, err.Error(), "failed to save config")
}

func TestNewEditor_MissingFileUsesDefault(t *testing.T) {
	e, err := NewEditor(NewStore(tempConfig(t)))
	require.NoError(t, err)

	assert.Equal(t, 32, e.Mapping().Len())
	assert.True(t, e.Mapping().Equal(Parse(Default)))
	assert.Equal(t, 32, e.Grid().Len())
}

func TestNewEditor_EmptyFileUsesDefault(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0644))

	e, err := NewEditor(NewStore(path), WithDefault("x:y"))
	require.NoError(t, err)
	assert.Equal(t, []Entry{{From: "x", To: "y"}}, e.Mapping().Entries())
}

func TestNewEditor_LoadsFile(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("ض:z|ص:x"), 0644))

	e, err := NewEditor(NewStore(path))
	require.NoError(t, err)
	assert.Equal(t, "ض:z|ص:x", Serialize(e.Mapping()))
}

func TestNewEditor_LoadErrorFallsBackToDefault(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte{0xff}, 0644))

	e, err := NewEditor(NewStore(path), WithDefault("a:b"))

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	require.NotNil(t, e)
	assert.Equal(t, "a:b", Serialize(e.Mapping()))
}

func TestEditor_ResetToDefault(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("a:b"), 0644))

	e, err := NewEditor(NewStore(path))
	require.NoError(t, err)

	grid := e.Reset()
	assert.Equal(t, 32, grid.Len())
	assert.True(t, grid.Mapping().Equal(Parse(Default)))

	require.NoError(t, e.Save(grid))
	saved, ok, err := LoadFile(path)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, saved.Equal(Parse(Default)))
}

func TestEditor_SaveSkipsIncompleteRows(t *testing.T) {
	path := tempConfig(t)
	e, err := NewEditor(NewStore(path), WithDefault("a:1|b:2|c:3|d:4"))
	require.NoError(t, err)

	grid := e.Grid()
	grid.ClearCell(2, ColumnTo)
	require.NoError(t, e.Save(grid))

	assert.Equal(t, "a:1|b:2|d:4", Serialize(e.Mapping()))
}

func TestEditor_RoundTripAfterEdit(t *testing.T) {
	path := tempConfig(t)

	e, err := NewEditor(NewStore(path))
	require.NoError(t, err)

	grid := e.Grid()
	grid.SetCell(0, ColumnTo, "Q")
	require.NoError(t, e.Save(grid))
	edited := e.Mapping()

	restarted, err := NewEditor(NewStore(path))
	require.NoError(t, err)
	assert.True(t, restarted.Mapping().Equal(edited))
	assert.False(t, restarted.Mapping().Equal(Parse(Default)))

	to, _ := restarted.Mapping().Get("ض")
	assert.Equal(t, "Q", to)
}

func TestEditor_SaveFailureKeepsState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config")
	e, err := NewEditor(NewStore(path), WithDefault("a:1"))
	require.NoError(t, err)

	grid := e.Grid()
	grid.SetCell(0, ColumnTo, "2")
	err = e.Save(grid)

	var saveErr *SaveError
	require.ErrorAs(t, err, &saveErr)
	to, _ := e.Mapping().Get("a")
	assert.Equal(t, "2", to, "in-memory mapping follows the grid even when the write fails")
}

func TestEditor_UnsavedTracksFile(t *testing.T) {
	path := tempConfig(t)
	require.NoError(t, os.WriteFile(path, []byte("a:b"), 0644))

	e, err := NewEditor(NewStore(path))
	require.NoError(t, err)
	assert.False(t, e.Unsaved(e.Grid()))

	grid := e.Reset()
	assert.True(t, e.Unsaved(grid), "reset is not written until saved")

	require.NoError(t, e.Save(grid))
	assert.False(t, e.Unsaved(grid))
}

func TestEditor_UnsavedAfterFailedSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config")
	e, err := NewEditor(NewStore(path), WithDefault("a:1"))
	require.NoError(t, err)

	grid := e.Grid()
	grid.SetCell(0, ColumnTo, "2")
	require.Error(t, e.Save(grid))

	assert.True(t, e.Unsaved(grid))
	assert.True(t, e.Unsaved(e.Grid()))
}

func TestEditor_SaveHooks(t *testing.T) {
	var seen []string
	e, err := NewEditor(NewStore(tempConfig(t)),
		WithDefault("a:1"),
		WithSaveHook(func(m *Mapping) error {
			seen = append(seen, Serialize(m))
			return nil
		}),
		WithSaveHook(func(m *Mapping) error {
			return errors.New("ignored")
		}),
	)
	require.NoError(t, err)

	require.NoError(t, e.Save(e.Grid()))
	require.NoError(t, e.Replace(Parse("b:2")))
	assert.Equal(t, []string{"a:1", "b:2"}, seen)
}

func TestEditor_HooksSkippedOnFailure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory paths behave differently on windows")
	}
	called := false
	dir := t.TempDir()
	e, err := NewEditor(NewStore(dir), WithSaveHook(func(*Mapping) error {
		called = true
		return nil
	}))
	require.Error(t, err, "loading a directory is a load failure")

	assert.Error(t, e.Save(e.Grid()))
	assert.False(t, called)
}

func TestCommands(t *testing.T) {
	current := Parse("a:1")
	grid := GridFromMapping(Parse("b:2"))

	assert.Equal(t, "x:y", Serialize(ResetCommand("x:y")(current, grid)))
	assert.Equal(t, "b:2", Serialize(SaveCommand()(current, grid)))
	assert.Equal(t, "a:1", Serialize(current), "commands do not mutate their input")
}
