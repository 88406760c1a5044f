// Package tui is the terminal form for editing a planet: one tab per section, one line per
// field, with the File actions bound to keys.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	Primary = lipgloss.Color("#4FC3F7") // sky blue
	Accent  = lipgloss.Color("#FFB74D") // sand
	Muted   = lipgloss.Color("#78909C")
	Border  = lipgloss.Color("#37474F")

	Success     = lipgloss.Color("#8BC34A")
	Destructive = lipgloss.Color("#E53935")
)

// Styles holds every style the views use.
type Styles struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Selected    lipgloss.Style
	Section     lipgloss.Style
	Box         lipgloss.Style
	Help        lipgloss.Style
	StatusOK    lipgloss.Style
	StatusError lipgloss.Style
}

func DefaultStyles() Styles {
	tab := lipgloss.NewStyle().Padding(0, 1).Foreground(Muted)
	return Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Tab:         tab,
		ActiveTab:   tab.Foreground(Accent).Bold(true).Underline(true),
		Label:       lipgloss.NewStyle().Foreground(Muted).Width(40),
		Value:       lipgloss.NewStyle(),
		Selected:    lipgloss.NewStyle().Foreground(Accent).Bold(true),
		Section:     lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginTop(1),
		Box:         lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1),
		Help:        lipgloss.NewStyle().Foreground(Muted),
		StatusOK:    lipgloss.NewStyle().Foreground(Success),
		StatusError: lipgloss.NewStyle().Foreground(Destructive),
	}
}
