package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studiowebux/fa2en/internal/keybinds"
	"github.com/studiowebux/fa2en/internal/keymap"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch m.mode {
	case ModeCellEdit:
		return m.handleCellEditKeys(msg)
	case ModeNotice:
		return m.handleNoticeKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleGridKeys(msg)
	}
}

// handleGridKeys handles keys while the grid or a button has focus
func (m *Model) handleGridKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextGrid, msg.String())
	if partial || !ok {
		return nil
	}

	armed := m.quitArmed
	m.quitArmed = false

	switch action {
	case keybinds.ActionQuit:
		if !armed && m.editor.Unsaved(m.grid) {
			m.quitArmed = true
			key := m.keybinds.GetBindingString(keybinds.ContextGrid, keybinds.ActionQuit)
			return m.setErrorMessage(fmt.Sprintf("Unsaved changes. Press %s again to quit", key))
		}
		return tea.Quit
	case keybinds.ActionQuitForce:
		return tea.Quit

	case keybinds.ActionNavigateUp:
		m.focusGrid()
		m.moveRow(-1)
	case keybinds.ActionNavigateDown:
		m.focusGrid()
		m.moveRow(1)
	case keybinds.ActionPageUp:
		m.focusGrid()
		m.moveRow(-m.pageSize())
	case keybinds.ActionPageDown:
		m.focusGrid()
		m.moveRow(m.pageSize())
	case keybinds.ActionGoToTop:
		m.focusGrid()
		m.row = 0
	case keybinds.ActionGoToBottom:
		m.focusGrid()
		m.row = max(0, m.grid.Len()-1)

	case keybinds.ActionNavigateLeft:
		switch m.focus {
		case FocusGrid:
			m.col = keymap.ColumnFrom
		case FocusReset:
			m.focus = FocusSave
		}
	case keybinds.ActionNavigateRight:
		switch m.focus {
		case FocusGrid:
			m.col = keymap.ColumnTo
		case FocusSave:
			m.focus = FocusReset
		}

	case keybinds.ActionSwitchFocus:
		m.focus = (m.focus + 1) % 3
	case keybinds.ActionSwitchFocusRev:
		m.focus = (m.focus + 2) % 3

	case keybinds.ActionActivate:
		switch m.focus {
		case FocusSave:
			return m.save()
		case FocusReset:
			return m.reset()
		default:
			m.startCellEdit()
		}
	case keybinds.ActionEditCell:
		m.focusGrid()
		m.startCellEdit()

	case keybinds.ActionClearCell:
		if m.focus == FocusGrid && m.grid.Len() > 0 {
			m.grid.ClearCell(m.row, m.col)
		}
	case keybinds.ActionAddRow:
		m.focusGrid()
		m.row = m.grid.AppendRow()
		m.col = keymap.ColumnFrom
		m.startCellEdit()
	case keybinds.ActionDeleteRow:
		if m.focus == FocusGrid && m.grid.Len() > 0 {
			m.grid.RemoveRow(m.row)
			m.clampRow()
		}

	case keybinds.ActionSave:
		return m.save()
	case keybinds.ActionReset:
		return m.reset()

	case keybinds.ActionCopyMapping:
		text := keymap.Serialize(m.grid.Mapping())
		if err := m.writeClipboard(text); err != nil {
			return m.setErrorMessage("Copy failed: " + err.Error())
		}
		return m.setStatusMessage("Mapping copied to clipboard")

	case keybinds.ActionOpenHelp:
		m.helpView.GotoTop()
		m.mode = ModeHelp
	}

	return nil
}

// handleNoticeKeys closes the notice; nothing else is reachable while it is shown
func (m *Model) handleNoticeKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextNotice, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuitForce:
		return tea.Quit
	case keybinds.ActionCloseModal:
		m.mode = m.noticeNext
		m.noticeTitle = ""
		m.noticeText = ""
	}
	return nil
}

// handleHelpKeys handles keys in help mode
func (m *Model) handleHelpKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok, partial := m.keybinds.MatchMultiKey(keybinds.ContextHelp, msg.String())
	if partial || !ok {
		return nil
	}

	switch action {
	case keybinds.ActionQuitForce:
		return tea.Quit
	case keybinds.ActionCloseModal:
		m.mode = ModeGrid
	case keybinds.ActionNavigateUp:
		m.helpView.ScrollUp(1)
	case keybinds.ActionNavigateDown:
		m.helpView.ScrollDown(1)
	case keybinds.ActionPageUp:
		m.helpView.PageUp()
	case keybinds.ActionPageDown:
		m.helpView.PageDown()
	case keybinds.ActionGoToTop:
		m.helpView.GotoTop()
	case keybinds.ActionGoToBottom:
		m.helpView.GotoBottom()
	}
	return nil
}

// save reads the grid into the mapping and writes the file
func (m *Model) save() tea.Cmd {
	if err := m.editor.Save(m.grid.Clone()); err != nil {
		m.logger.Error("save from editor failed", "error", err)
		m.showNotice("Error", capitalize(err.Error()), NoticeError)
		return nil
	}
	m.showNotice("Success", "Mapping saved successfully.", NoticeInfo)
	return nil
}

// reset replaces the grid and the live mapping with the default layout
func (m *Model) reset() tea.Cmd {
	m.grid = m.editor.Reset()
	m.clampRow()
	return m.setStatusMessage("Mapping reset to default (not saved)")
}

func (m *Model) focusGrid() {
	m.focus = FocusGrid
}

func (m *Model) moveRow(delta int) {
	m.row += delta
	m.clampRow()
}

func (m *Model) clampRow() {
	if m.row >= m.grid.Len() {
		m.row = m.grid.Len() - 1
	}
	if m.row < 0 {
		m.row = 0
	}
}

func (m *Model) pageSize() int {
	if m.gridView.Height > 1 {
		return m.gridView.Height
	}
	return 1
}
