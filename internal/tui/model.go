package tui

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/fa2en/internal/keybinds"
	"github.com/studiowebux/fa2en/internal/keymap"
	"github.com/studiowebux/fa2en/internal/logging"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeGrid Mode = iota
	ModeCellEdit
	ModeNotice
	ModeHelp
)

// Focus is the control receiving grid-context keys
type Focus int

const (
	FocusGrid Focus = iota
	FocusSave
	FocusReset
)

// NoticeKind selects the notice styling
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeError
)

// Options configures a Model
type Options struct {
	Editor *keymap.Editor

	// LoadErr is shown as an error notice on startup
	LoadErr error

	Keybinds       *keybinds.Registry
	Logger         *slog.Logger
	Version        string
	MessageTimeout time.Duration

	// Clipboard access, replaced in tests
	ReadClipboard  func() (string, error)
	WriteClipboard func(string) error
}

// Model represents the TUI state
type Model struct {
	// Core state
	editor   *keymap.Editor
	keybinds *keybinds.Registry
	logger   *slog.Logger
	mode     Mode
	version  string

	// Grid state. The grid diverges from the editor mapping until save/reset.
	grid     keymap.Grid
	row      int
	col      int
	focus    Focus
	gridView viewport.Model
	helpView viewport.Model

	// Cell editing state (cursor is a rune offset)
	editInput  string
	editCursor int

	// Notice state
	noticeTitle string
	noticeText  string
	noticeKind  NoticeKind
	noticeNext  Mode // mode restored when the notice closes

	// UI state
	width          int
	height         int
	statusMsg      string
	errorMsg       string
	messageTimeout time.Duration
	quitArmed      bool // quit pressed once with unsaved changes

	readClipboard  func() (string, error)
	writeClipboard func(string) error
}

// New creates a new TUI model
func New(opts Options) (Model, error) {
	if opts.Editor == nil {
		return Model{}, fmt.Errorf("tui: editor is required")
	}

	m := Model{
		editor:         opts.Editor,
		keybinds:       opts.Keybinds,
		logger:         opts.Logger,
		mode:           ModeGrid,
		version:        opts.Version,
		grid:           opts.Editor.Grid(),
		focus:          FocusGrid,
		gridView:       viewport.New(80, 20),
		helpView:       viewport.New(80, 20),
		messageTimeout: opts.MessageTimeout,
		readClipboard:  opts.ReadClipboard,
		writeClipboard: opts.WriteClipboard,
	}

	if m.keybinds == nil {
		m.keybinds = keybinds.NewDefaultRegistry()
	}
	if m.logger == nil {
		m.logger = logging.NewNop()
	}
	if m.messageTimeout == 0 {
		m.messageTimeout = DefaultMessageTimeout
	}
	if m.readClipboard == nil {
		m.readClipboard = clipboard.ReadAll
	}
	if m.writeClipboard == nil {
		m.writeClipboard = clipboard.WriteAll
	}

	if opts.LoadErr != nil {
		m.showNotice("Error", capitalize(opts.LoadErr.Error()), NoticeError)
	}

	m.refreshGridView()
	return m, nil
}

// Init initializes the TUI
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(WindowTitle)
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateViewports()

	case clearStatusMsg:
		if msg.text == m.statusMsg {
			m.statusMsg = ""
		}

	case clearErrorMsg:
		if msg.text == m.errorMsg {
			m.errorMsg = ""
		}
	}

	m.refreshGridView()
	return m, cmd
}

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case ModeNotice:
		return m.renderNotice()
	case ModeHelp:
		return m.renderHelp()
	default:
		return m.renderMain()
	}
}

// Grid returns a copy of the grid as currently shown
func (m *Model) Grid() keymap.Grid {
	return m.grid.Clone()
}

// Custom message types
type clearStatusMsg struct{ text string }
type clearErrorMsg struct{ text string }

// Helper methods for setting messages with timeout
func (m *Model) setStatusMessage(msg string) tea.Cmd {
	m.statusMsg = truncateMessage(msg)
	m.errorMsg = ""
	text := m.statusMsg
	return tea.Tick(m.messageTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{text: text}
	})
}

func (m *Model) setErrorMessage(msg string) tea.Cmd {
	m.errorMsg = truncateMessage(msg)
	text := m.errorMsg
	return tea.Tick(m.messageTimeout, func(time.Time) tea.Msg {
		return clearErrorMsg{text: text}
	})
}

// showNotice opens a blocking notice; closing it returns to the current mode
func (m *Model) showNotice(title, text string, kind NoticeKind) {
	if m.mode != ModeNotice {
		m.noticeNext = m.mode
	}
	m.noticeTitle = title
	m.noticeText = text
	m.noticeKind = kind
	m.mode = ModeNotice
}

func truncateMessage(msg string) string {
	runes := []rune(msg)
	if len(runes) > MaxFooterMessage {
		return string(runes[:MaxFooterMessage-3]) + "..."
	}
	return msg
}

func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	if runes[0] >= 'a' && runes[0] <= 'z' {
		runes[0] -= 'a' - 'A'
	}
	return string(runes)
}
