package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiowebux/fa2en/internal/keymap"
)

// execute runs the command tree against a fresh home directory layout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	flagConfig = ""
	flagLogFile = ""
	flagLogLevel = "info"
	flagDebug = false
	flagYes = false
	flagOverwrite = false
	flagExportFormat = keymap.FormatRaw
	flagImportFormat = ""
	flagLimit = 20

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(""))
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FA2EN_CONFIG", "")
	return home
}

func TestPathCommand(t *testing.T) {
	home := setHome(t)

	out, err := execute(t, "path")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".fa2en_config")+"\n", out)

	custom := filepath.Join(home, "layout.txt")
	out, err = execute(t, "path", "--config", custom)
	require.NoError(t, err)
	assert.Equal(t, custom+"\n", out)
}

func TestSetDiffExport(t *testing.T) {
	home := setHome(t)

	_, err := execute(t, "set", "ب", "x")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, ".fa2en_config"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "ب:x")

	out, err := execute(t, "diff")
	require.NoError(t, err)
	assert.Equal(t, "~ ب:f -> x\n", out)

	out, err = execute(t, "export", "-f", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "ب: x")

	out, err = execute(t, "query", "[?from=='ب'].to | [0]")
	require.NoError(t, err)
	assert.Equal(t, "x\n", out)

	out, err = execute(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Persian")

	_, err = execute(t, "set", "a|b", "x")
	assert.Error(t, err)
}

func TestImportResetAndHistory(t *testing.T) {
	home := setHome(t)

	source := filepath.Join(home, "layout.yaml")
	require.NoError(t, os.WriteFile(source, []byte("ض: q\n"), 0644))

	out, err := execute(t, "import", source)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 1 entries")

	out, err = execute(t, "reset", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "32 entries")

	data, err := os.ReadFile(filepath.Join(home, ".fa2en_config"))
	require.NoError(t, err)
	assert.Equal(t, keymap.Default, string(data))

	out, err = execute(t, "history")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "1 entries")

	out, err = execute(t, "restore", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Restored snapshot #1")

	data, err = os.ReadFile(filepath.Join(home, ".fa2en_config"))
	require.NoError(t, err)
	assert.Equal(t, "ض:q", string(data))

	out, err = execute(t, "history", "clear")
	require.NoError(t, err)
	assert.Equal(t, "History cleared.\n", out)

	_, err = execute(t, "restore", "abc")
	assert.Error(t, err)
}

func TestKeybindsCommands(t *testing.T) {
	home := setHome(t)

	out, err := execute(t, "keybinds", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "defaults are in use")

	out, err = execute(t, "keybinds", "export")
	require.NoError(t, err)
	assert.Contains(t, out, filepath.Join(home, ".fa2en", "keybinds.yaml"))

	_, err = execute(t, "keybinds", "export")
	assert.Error(t, err, "refuses to overwrite without --overwrite")

	out, err = execute(t, "keybinds", "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "No issues found")

	broken := filepath.Join(home, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("grid:\n  save: s\n  reset: s\n"), 0644))
	out, err = execute(t, "keybinds", "validate", broken)
	assert.Error(t, err)
	assert.Contains(t, out, "conflict")
}

func TestLoadErrorFailsCLICommands(t *testing.T) {
	home := setHome(t)
	require.NoError(t, os.Mkdir(filepath.Join(home, ".fa2en_config"), 0755))

	_, err := execute(t, "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestDebugWritesLogFile(t *testing.T) {
	home := setHome(t)

	_, err := execute(t, "set", "ب", "x", "--debug")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(home, ".fa2en", "fa2en.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "mapping saved")
}

func TestFailingCommandReleasesResources(t *testing.T) {
	home := setHome(t)

	_, err := execute(t, "import", filepath.Join(home, "missing.yaml"), "--debug")
	require.Error(t, err)

	assert.Nil(t, app.history, "history database is closed")
	assert.Nil(t, app.closeLog, "log file is closed")

	data, err := os.ReadFile(filepath.Join(home, ".fa2en", "fa2en.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "starting")
}
