package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const helpText = "tab/shift+tab: section • ↑/↓: field • enter: edit • ctrl+a: add row • ctrl+d: remove row • ctrl+s: export • esc: quit"

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("🪐 planetmaker"))
	if path := m.exportPath; path != "" {
		b.WriteString(m.styles.Help.Render("  → " + path))
	}
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")
	b.WriteString(m.renderFields())
	b.WriteString("\n")

	if m.status != "" {
		style := m.styles.StatusOK
		if m.statusErr {
			style = m.styles.StatusError
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Help.Render(helpText))
	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.session.Editors()))
	for i, e := range m.session.Editors() {
		style := m.styles.Tab
		if i == m.activeTab {
			style = m.styles.ActiveTab
		}
		tabs = append(tabs, style.Render(e.Title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderFields() string {
	entries := m.entries()
	if len(entries) == 0 {
		msg := "No fields."
		if len(m.editor().Form().Groups) > 0 {
			msg = "No rows. Press ctrl+a to add one."
		}
		return m.styles.Box.Render(m.styles.Help.Render(msg))
	}

	lines := make([]string, 0, len(entries))
	for i, e := range entries {
		marker := "  "
		label := m.styles.Label.Render(e.Label)
		value := m.styles.Value.Render(oneLine(e.Field.Value))
		if i == m.cursor {
			marker = m.styles.Selected.Render("▸ ")
			if m.editing {
				value = m.input.View()
			} else {
				value = m.styles.Selected.Render(oneLine(e.Field.Value))
			}
		}
		lines = append(lines, fmt.Sprintf("%s%s %s", marker, label, value))
	}
	return m.styles.Box.Render(strings.Join(lines, "\n"))
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ⏎ ")
}
