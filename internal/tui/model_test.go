package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studiowebux/fa2en/internal/keymap"
)

func TestNew_RequiresEditor(t *testing.T) {
	_, err := New(Options{})
	assert.Error(t, err)
}

func TestNew_MissingFileShowsDefault(t *testing.T) {
	m, _ := CreateTestModel(t, "")

	AssertModelField(t, "mode", m.mode, ModeGrid)
	AssertModelField(t, "focus", m.focus, FocusGrid)
	AssertModelField(t, "grid rows", m.grid.Len(), 32)
	assert.True(t, m.grid.Mapping().Equal(keymap.Parse(keymap.Default)))
}

func TestNew_LoadedFileFillsGrid(t *testing.T) {
	m, _ := CreateTestModel(t, "a:b|c:d")

	require.Equal(t, 2, m.grid.Len())
	assert.Equal(t, "a", m.grid.Cell(0, keymap.ColumnFrom).Text)
	assert.Equal(t, "d", m.grid.Cell(1, keymap.ColumnTo).Text)
}

func TestNew_LoadErrorOpensNotice(t *testing.T) {
	// A directory cannot be read as a mapping file
	path := t.TempDir()
	editor, loadErr := keymap.NewEditor(keymap.NewStore(path))
	require.Error(t, loadErr)

	m, err := New(Options{Editor: editor, LoadErr: loadErr})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	AssertModelField(t, "mode", m.mode, ModeNotice)
	AssertModelField(t, "noticeKind", m.noticeKind, NoticeError)
	assert.Equal(t, "Error", m.noticeTitle)
	assert.True(t, strings.HasPrefix(m.noticeText, "Failed to load config"), m.noticeText)
	assert.Contains(t, m.View(), "Error")

	// The default layout is still usable behind the notice
	assert.Equal(t, 32, m.grid.Len())

	press(&m, keyType(tea.KeyEsc))
	AssertModelField(t, "mode after close", m.mode, ModeGrid)
}

func TestInit_SetsWindowTitle(t *testing.T) {
	m, _ := CreateTestModel(t, "a:b")
	assert.NotNil(t, m.Init())
}

func TestView_RendersGridAndButtons(t *testing.T) {
	m, _ := CreateTestModel(t, "ب:f|ل:g")
	view := m.View()

	assert.Contains(t, view, WindowTitle)
	assert.Contains(t, view, HeaderFrom)
	assert.Contains(t, view, HeaderTo)
	assert.Contains(t, view, ButtonSave)
	assert.Contains(t, view, ButtonReset)
	assert.Contains(t, view, "ب")
	assert.Contains(t, view, "2 entries")
}

func TestView_BeforeWindowSize(t *testing.T) {
	editor, err := keymap.NewEditor(keymap.NewStore(filepath.Join(t.TempDir(), "cfg")))
	require.NoError(t, err)
	m, err := New(Options{Editor: editor})
	require.NoError(t, err)

	assert.Equal(t, "Initializing...", m.View())
}

func TestView_MarksModifiedAndIncompleteRows(t *testing.T) {
	m, _ := CreateTestModel(t, "a:b")

	press(m, keyRunes("a"), keyRunes("x"), keyType(tea.KeyEnter))
	view := m.View()

	assert.Contains(t, view, "(skipped)")
	assert.NotContains(t, view, "(modified)", "an incomplete row does not change the mapping")

	press(m, keyRunes("x"), keyRunes("k"))
	press(m, keyRunes("e"), keyRunes("z"), keyType(tea.KeyEnter))
	assert.Contains(t, m.View(), "(modified)")
}

func TestView_SkippedMarkerFitsAtAnyWidth(t *testing.T) {
	for _, width := range []int{60, 100, 200} {
		m, _ := CreateTestModel(t, "a:b")
		m.Update(tea.WindowSizeMsg{Width: width, Height: 30})

		press(m, keyRunes("a"), keyRunes("x"), keyType(tea.KeyEnter))
		assert.Contains(t, m.View(), GridSkippedMarker, "width %d", width)
	}
}

func TestView_ModifiedAfterResetUntilSaved(t *testing.T) {
	m, _ := CreateTestModel(t, "a:b")
	assert.NotContains(t, m.View(), "(modified)")

	press(m, keyRunes("R"))
	assert.Contains(t, m.View(), "(modified)", "reset is not written to the file")
	assert.Equal(t, "a:b", readFile(t, m.editor.Path()))

	press(m, keyRunes("s"), keyType(tea.KeyEnter))
	require.Equal(t, ModeGrid, m.mode)
	assert.NotContains(t, m.View(), "(modified)")
	assert.Equal(t, keymap.Default, readFile(t, m.editor.Path()))
}

func TestSave_WritesGridAndShowsSuccess(t *testing.T) {
	m, _ := CreateTestModel(t, "a:b")

	press(m, keyRunes("e"), keyType(tea.KeyBackspace), keyRunes("ک"), keyType(tea.KeyEnter))
	require.Equal(t, "ک", m.grid.Cell(0, keymap.ColumnFrom).Text)

	press(m, keyRunes("s"))

	AssertModelField(t, "mode", m.mode, ModeNotice)
	assert.Equal(t, "Success", m.noticeTitle)
	assert.Equal(t, "Mapping saved successfully.", m.noticeText)
	assert.Equal(t, "ک:b", readFile(t, m.editor.Path()))
	assert.Equal(t, "ک:b", keymap.Serialize(m.editor.Mapping()))
}

func TestSave_SkipsIncompleteRows(t *testing.T) {
	m, _ := CreateTestModel(t, "a:b")

	// Add a row with only the Persian side filled in
	press(m, keyRunes("a"), keyRunes("ژ"), keyType(tea.KeyEnter))
	require.Equal(t, 2, m.grid.Len())

	press(m, keyRunes("s"))
	assert.Equal(t, "a:b", readFile(t, m.editor.Path()))
}

func TestSave_FailureShowsErrorAndKeepsRunning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing-dir", "cfg")
	editor, err := keymap.NewEditor(keymap.NewStore(path))
	require.NoError(t, err)
	m, err := New(Options{Editor: editor})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	press(&m, keyRunes("d"), keyRunes("s"))

	AssertModelField(t, "mode", m.mode, ModeNotice)
	AssertModelField(t, "noticeKind", m.noticeKind, NoticeError)
	assert.True(t, strings.HasPrefix(m.noticeText, "Failed to save config"), m.noticeText)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))

	// In-memory state follows the grid even though the write failed
	assert.Equal(t, 31, editor.Mapping().Len())

	press(&m, keyType(tea.KeyEnter))
	AssertModelField(t, "mode after close", m.mode, ModeGrid)
}

func TestReset_ReplacesGridWithoutWriting(t *testing.T) {
	m, _ := CreateTestModel(t, "a:b")

	press(m, keyRunes("R"))

	AssertModelField(t, "mode", m.mode, ModeGrid)
	assert.Equal(t, 32, m.grid.Len())
	assert.True(t, m.editor.Mapping().Equal(keymap.Parse(keymap.Default)))
	assert.Equal(t, "a:b", readFile(t, m.editor.Path()), "reset alone does not save")
	assert.NotEmpty(t, m.statusMsg)

	press(m, keyRunes("s"))
	assert.Equal(t, keymap.Default, readFile(t, m.editor.Path()))
}

func TestUpdate_ClearMessagesOnlyWhenUnchanged(t *testing.T) {
	m, _ := CreateTestModel(t, "a:b")

	m.setStatusMessage("first")
	m.setStatusMessage("second")
	m.Update(clearStatusMsg{text: "first"})
	assert.Equal(t, "second", m.statusMsg)
	m.Update(clearStatusMsg{text: "second"})
	assert.Empty(t, m.statusMsg)

	m.setErrorMessage("boom")
	m.Update(clearErrorMsg{text: "boom"})
	assert.Empty(t, m.errorMsg)
}

func TestTruncateMessage(t *testing.T) {
	long := strings.Repeat("ش", MaxFooterMessage+10)
	got := truncateMessage(long)

	assert.Len(t, []rune(got), MaxFooterMessage)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.Equal(t, "short", truncateMessage("short"))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Failed", capitalize("failed"))
	assert.Equal(t, "پ", capitalize("پ"))
	assert.Equal(t, "", capitalize(""))
}
