package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/studiowebux/fa2en/internal/keybinds"
)

// renderNotice renders the blocking error/success notice
func (m *Model) renderNotice() string {
	style := styleSuccess
	if m.noticeKind == NoticeError {
		style = styleError
	}

	footer := fmt.Sprintf("%s to close",
		m.keybinds.GetBindingString(keybinds.ContextNotice, keybinds.ActionCloseModal))

	return m.renderModal(m.noticeTitle, style.Render(m.noticeText), footer, NoticeWidth, NoticeHeight)
}

// renderHelp renders the keybinding reference
func (m *Model) renderHelp() string {
	width := m.width - ModalWidthMargin
	height := m.height - ModalHeightMarginMed

	m.helpView.Width = width - ViewportPaddingHorizontal
	m.helpView.Height = height - ModalOverheadLines - ModalFooterLines
	if m.helpView.Height < 1 {
		m.helpView.Height = 1
	}
	offset := m.helpView.YOffset
	m.helpView.SetContent(m.helpContent())
	m.helpView.SetYOffset(offset)

	footer := fmt.Sprintf("%s to close",
		m.keybinds.GetBindingString(keybinds.ContextHelp, keybinds.ActionCloseModal))

	return m.renderFrame("Help", m.helpView.View(), footer, width, height)
}

func (m *Model) helpContent() string {
	sections := []struct {
		title   string
		context keybinds.Context
	}{
		{"Grid", keybinds.ContextGrid},
		{"Cell editing", keybinds.ContextCellEdit},
		{"Global", keybinds.ContextGlobal},
	}

	var b strings.Builder
	b.WriteString("Each row maps a Persian character to an English key.\n")
	b.WriteString("Rows with an empty cell are skipped when saving.\n")
	b.WriteString(fmt.Sprintf("Mapping file: %s\n", m.editor.Path()))

	for _, section := range sections {
		b.WriteString("\n")
		b.WriteString(styleTitle.Render(section.title))
		b.WriteString("\n")

		seen := make(map[keybinds.Action]bool)
		for _, binding := range m.keybinds.ListBindings(section.context) {
			if seen[binding.Action] {
				continue
			}
			seen[binding.Action] = true
			keys := m.keybinds.GetBindingString(section.context, binding.Action)
			b.WriteString(fmt.Sprintf("  %-22s %s\n", keys, binding.Action.Description()))
		}
	}
	return b.String()
}

// renderModal renders a centered modal with static content
func (m *Model) renderModal(title, content, footer string, width, height int) string {
	if width > m.width-ViewportPaddingHorizontal {
		width = m.width - ViewportPaddingHorizontal
	}
	if height > m.height-ModalHeightMarginMed {
		height = m.height - ModalHeightMarginMed
	}
	content = lipgloss.NewStyle().Width(width - ViewportPaddingHorizontal).Render(content)
	return m.renderFrame(title, content, footer, width, height)
}

// renderFrame draws the bordered box shared by every modal
func (m *Model) renderFrame(title, content, footer string, width, height int) string {
	full := styleTitle.Render(title) + "\n\n" + content
	if footer != "" {
		full += "\n\n" + styleSubtle.Render(footer)
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBlue).
		Width(width).
		Height(height).
		Padding(1, 2).
		Render(full)

	if width >= m.width-2 || height >= m.height-1 {
		return box
	}

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
