package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/fa2en/internal/keybinds"
	"github.com/studiowebux/fa2en/internal/keymap"
)

// startCellEdit opens the selected cell for editing
func (m *Model) startCellEdit() {
	if m.grid.Len() == 0 {
		return
	}
	m.clampRow()

	m.editInput = ""
	if cell := m.grid.Cell(m.row, m.col); cell != nil {
		m.editInput = cell.Text
	}
	m.editCursor = len([]rune(m.editInput))
	m.mode = ModeCellEdit
}

// commitCellEdit writes the input into the cell. An empty input is kept as
// an empty (present) cell; clear_cell is the way to make a cell absent.
func (m *Model) commitCellEdit() {
	m.grid.SetCell(m.row, m.col, m.editInput)
	m.editInput = ""
	m.editCursor = 0
	m.mode = ModeGrid
}

// handleCellEditKeys handles keys while a cell is being edited
func (m *Model) handleCellEditKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextCellEdit, msg.String())
	if ok {
		switch action {
		case keybinds.ActionQuitForce:
			return tea.Quit

		case keybinds.ActionTextSubmit:
			m.commitCellEdit()
			return nil

		case keybinds.ActionTextNext:
			m.commitCellEdit()
			if m.col == keymap.ColumnFrom {
				m.col = keymap.ColumnTo
			} else if m.row < m.grid.Len()-1 {
				m.row++
				m.col = keymap.ColumnFrom
			}
			m.startCellEdit()
			return nil

		case keybinds.ActionTextCancel:
			m.editInput = ""
			m.editCursor = 0
			m.mode = ModeGrid
			return nil

		case keybinds.ActionTextPaste:
			text, err := m.readClipboard()
			if err != nil {
				return m.setErrorMessage("Paste failed: " + err.Error())
			}
			insertAtCursor(&m.editInput, &m.editCursor, []rune(text))
			return nil
		}
	}

	if handleTextInputWithCursor(&m.editInput, &m.editCursor, msg) {
		return nil
	}

	switch msg.Type {
	case tea.KeyRunes:
		if !msg.Alt {
			insertAtCursor(&m.editInput, &m.editCursor, msg.Runes)
		}
	case tea.KeySpace:
		insertAtCursor(&m.editInput, &m.editCursor, []rune{' '})
	}
	return nil
}

// handleTextInputWithCursor applies cursor movement and deletion keys.
// cursorPos counts runes so Persian text edits correctly.
func handleTextInputWithCursor(input *string, cursorPos *int, msg tea.KeyMsg) bool {
	runes := []rune(*input)
	if *cursorPos < 0 {
		*cursorPos = 0
	}
	if *cursorPos > len(runes) {
		*cursorPos = len(runes)
	}

	switch msg.String() {
	case "left":
		if *cursorPos > 0 {
			*cursorPos--
		}
	case "right":
		if *cursorPos < len(runes) {
			*cursorPos++
		}
	case "home", "ctrl+a":
		*cursorPos = 0
	case "end", "ctrl+e":
		*cursorPos = len(runes)
	case "ctrl+k":
		*input = ""
		*cursorPos = 0
	case "backspace":
		if *cursorPos > 0 {
			*input = string(runes[:*cursorPos-1]) + string(runes[*cursorPos:])
			*cursorPos--
		}
	case "delete":
		if *cursorPos < len(runes) {
			*input = string(runes[:*cursorPos]) + string(runes[*cursorPos+1:])
		}
	default:
		return false
	}
	return true
}

func insertAtCursor(input *string, cursorPos *int, text []rune) {
	runes := []rune(*input)
	if *cursorPos > len(runes) {
		*cursorPos = len(runes)
	}
	out := make([]rune, 0, len(runes)+len(text))
	out = append(out, runes[:*cursorPos]...)
	out = append(out, text...)
	out = append(out, runes[*cursorPos:]...)
	*input = string(out)
	*cursorPos += len(text)
}
