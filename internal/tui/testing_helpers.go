package tui

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/fa2en/internal/keymap"
)

// testClipboard stands in for the system clipboard
type testClipboard struct {
	text string
	err  error
}

func (c *testClipboard) read() (string, error) {
	if c.err != nil {
		return "", c.err
	}
	return c.text, nil
}

func (c *testClipboard) write(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

var errNoClipboard = errors.New("clipboard unavailable")

// CreateTestModel creates a Model backed by a mapping file in a temp dir.
// An empty content leaves the file missing.
func CreateTestModel(t *testing.T, content string) (*Model, *testClipboard) {
	t.Helper()

	path := filepath.Join(t.TempDir(), ".fa2en_config")
	if content != "" {
		writeFile(t, path, content)
	}

	editor, loadErr := keymap.NewEditor(keymap.NewStore(path))
	if loadErr != nil {
		t.Fatalf("Failed to create editor: %v", loadErr)
	}

	clip := &testClipboard{}
	m, err := New(Options{
		Editor:         editor,
		Version:        "test-version",
		ReadClipboard:  clip.read,
		WriteClipboard: clip.write,
	})
	if err != nil {
		t.Fatalf("Failed to create test model: %v", err)
	}

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return &m, clip
}

// press sends each key to the model in order
func press(m *Model, keys ...tea.KeyMsg) {
	for _, k := range keys {
		m.Update(k)
	}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(kt tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: kt}
}

// AssertModelField compares a model field with its expected value
func AssertModelField[T comparable](t *testing.T, fieldName string, got, want T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", fieldName, got, want)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}
