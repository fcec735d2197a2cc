package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/fa2en/internal/keybinds"
	"github.com/studiowebux/fa2en/internal/keymap"
)

// Adaptive color definitions for light/dark terminal support
var (
	colorGreen  = lipgloss.AdaptiveColor{Light: "#006400", Dark: "#00ff00"} // Dark green / Bright green
	colorRed    = lipgloss.AdaptiveColor{Light: "#8b0000", Dark: "#ff0000"} // Dark red / Bright red
	colorYellow = lipgloss.AdaptiveColor{Light: "#b8860b", Dark: "#ffff00"} // Dark goldenrod / Yellow
	colorBlue   = lipgloss.AdaptiveColor{Light: "#00008b", Dark: "#0000ff"} // Dark blue / Blue
	colorGray   = lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"} // Dark gray / Light gray
	colorCyan   = lipgloss.AdaptiveColor{Light: "#008b8b", Dark: "#00ffff"} // Dark cyan / Cyan
)

// Style definitions
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	styleSelected = lipgloss.NewStyle().
			Background(lipgloss.AdaptiveColor{Light: "#d3d3d3", Dark: "#3a3a3a"}).
			Foreground(lipgloss.AdaptiveColor{Light: "#000000", Dark: "#ffffff"})

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorGreen)

	styleError = lipgloss.NewStyle().
			Foreground(colorRed)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorYellow)

	styleSubtle = lipgloss.NewStyle().
			Foreground(colorGray)

	styleButton = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(0, 2)

	styleButtonFocused = styleButton.
				BorderForeground(colorGreen).
				Bold(true)
)

// renderMain renders the grid, the two buttons and the status bar
func (m *Model) renderMain() string {
	colWidth := m.columnWidth()

	title := styleTitle.Render(WindowTitle)
	if m.version != "" {
		title += styleSubtle.Render("  v" + m.version)
	}

	header := strings.Repeat(" ", GridIndexWidth) +
		padCell(HeaderFrom, colWidth) + " " + padCell(HeaderTo, colWidth)

	gridBorder := colorGray
	if m.focus == FocusGrid {
		gridBorder = colorGreen
	}
	gridBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(gridBorder).
		Width(m.width - 2).
		Render(styleTitle.Render(header) + "\n" + m.gridView.View())

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderButton(ButtonSave, m.focus == FocusSave),
		" ",
		m.renderButton(ButtonReset, m.focus == FocusReset),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		gridBox,
		buttons,
		m.renderStatusBar(),
	)
}

func (m *Model) renderButton(label string, focused bool) string {
	if focused {
		return styleButtonFocused.Render(label)
	}
	return styleButton.Render(label)
}

// renderGridRows renders every grid row; the selected cell is highlighted
func (m *Model) renderGridRows() string {
	if m.grid.Len() == 0 {
		hint := m.keybinds.GetBindingString(keybinds.ContextGrid, keybinds.ActionAddRow)
		return styleSubtle.Render(fmt.Sprintf("No entries. Press %s to add a row.", hint))
	}

	colWidth := m.columnWidth()
	var lines []string
	for i, row := range m.grid.Rows {
		index := padCell(fmt.Sprintf("%d", i+1), GridIndexWidth)
		cells := make([]string, len(row))
		for col := range row {
			cells[col] = m.renderCell(i, col, row[col], colWidth)
		}
		line := styleSubtle.Render(index) + cells[keymap.ColumnFrom] + " " + cells[keymap.ColumnTo]
		if !row.Complete() {
			line += styleWarning.Render(GridSkippedMarker)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCell(row, col int, cell *keymap.Cell, width int) string {
	selected := m.focus == FocusGrid && row == m.row && col == m.col

	if selected && m.mode == ModeCellEdit {
		return styleSelected.Render(padCell(addCursorAt(m.editInput, m.editCursor), width))
	}

	text := ""
	if cell != nil {
		text = cell.Text
	}
	text = padCell(text, width)
	if selected {
		return styleSelected.Render(text)
	}
	return text
}

// renderStatusBar renders the status bar at the bottom
func (m *Model) renderStatusBar() string {
	left := fmt.Sprintf("%s | %d entries", m.editor.Path(), m.grid.Mapping().Len())
	if m.editor.Unsaved(m.grid) {
		left += styleWarning.Render(" (modified)")
	}

	right := ""
	switch {
	case m.mode == ModeCellEdit:
		right = styleSubtle.Render(fmt.Sprintf("%s save cell | %s cancel",
			m.keybinds.GetBindingString(keybinds.ContextCellEdit, keybinds.ActionTextSubmit),
			m.keybinds.GetBindingString(keybinds.ContextCellEdit, keybinds.ActionTextCancel)))
	case m.errorMsg != "":
		right = styleError.Render(m.errorMsg)
	case m.statusMsg != "":
		right = styleSuccess.Render(m.statusMsg)
	default:
		right = styleSubtle.Render(fmt.Sprintf("%s for help | %s to quit",
			m.keybinds.GetBindingString(keybinds.ContextGrid, keybinds.ActionOpenHelp),
			m.keybinds.GetBindingString(keybinds.ContextGrid, keybinds.ActionQuit)))
	}

	spacing := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if spacing < 1 {
		spacing = 1
	}

	return left + strings.Repeat(" ", spacing) + right
}

// columnWidth splits the grid box between the two label columns, leaving room
// for the skipped marker after the second column
func (m *Model) columnWidth() int {
	w := (m.width - GridIndexWidth - ViewportPaddingHorizontal - 1 - lipgloss.Width(GridSkippedMarker)) / 2
	if w < GridMinColWidth {
		return GridMinColWidth
	}
	return w
}

// updateViewports resizes the viewports after a window size change
func (m *Model) updateViewports() {
	m.gridView.Width = m.width - ViewportPaddingHorizontal
	m.gridView.Height = m.height - MainViewHeightOffset
	if m.gridView.Height < 1 {
		m.gridView.Height = 1
	}
}

// refreshGridView re-renders the grid rows and keeps the selected row visible
func (m *Model) refreshGridView() {
	offset := m.gridView.YOffset
	m.gridView.SetContent(m.renderGridRows())

	height := m.gridView.Height
	switch {
	case height <= 0:
	case m.row < offset:
		offset = m.row
	case m.row >= offset+height:
		offset = m.row - height + 1
	}
	m.gridView.SetYOffset(offset)
}

// padCell pads or truncates text to width display cells
func padCell(text string, width int) string {
	w := lipgloss.Width(text)
	if w > width {
		runes := []rune(text)
		for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
			runes = runes[:len(runes)-1]
		}
		return string(runes) + "…"
	}
	return text + strings.Repeat(" ", width-w)
}

// addCursorAt inserts a block cursor at rune offset pos
func addCursorAt(s string, pos int) string {
	runes := []rune(s)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	return string(runes[:pos]) + "█" + string(runes[pos:])
}
