package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/provide-io/planetmaker/pkg/editor"
	"github.com/provide-io/planetmaker/pkg/session"
)

// Model is the bubbletea model of the planet form.
type Model struct {
	session    *session.Session
	exportPath string

	activeTab int
	cursor    int
	editing   bool
	input     textinput.Model

	status    string
	statusErr bool
	width     int
	height    int
	styles    Styles
}

// New builds the form over s. ctrl+s exports to exportPath.
func New(s *session.Session, exportPath string) Model {
	in := textinput.New()
	in.CharLimit = 0 // unlimited, heightmap points run long
	in.Width = 60
	return Model{
		session:    s,
		exportPath: exportPath,
		input:      in,
		styles:     DefaultStyles(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	if m.editing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tabs := len(m.session.Editors())
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "tab", "right":
		m.activeTab = (m.activeTab + 1) % tabs
		m.cursor = 0
	case "shift+tab", "left":
		m.activeTab = (m.activeTab - 1 + tabs) % tabs
		m.cursor = 0
	case "down", "j":
		if m.cursor < len(m.entries())-1 {
			m.cursor++
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "enter":
		entries := m.entries()
		if len(entries) == 0 {
			return m, nil
		}
		f := entries[m.cursor].Field
		m.input.SetValue(toInput(f))
		m.input.CursorEnd()
		m.editing = true
		return m, m.input.Focus()
	case "ctrl+a":
		m.addRow()
	case "ctrl+d":
		m.removeRow()
	case "ctrl+s":
		m.export()
	}
	return m, nil
}

func (m Model) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		f := m.entries()[m.cursor].Field
		f.Value = fromInput(f, m.input.Value())
		m.stopEditing()
		m.setStatus("", false)
		return m, nil
	case "esc", "ctrl+c":
		m.stopEditing()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopEditing() {
	m.editing = false
	m.input.Blur()
	m.input.SetValue("")
}

func (m Model) editor() editor.Editor {
	return m.session.Editors()[m.activeTab]
}

func (m Model) entries() []editor.Entry {
	return m.editor().Form().Entries()
}

// addRow appends a row to the first group of the active tab and moves onto it.
func (m *Model) addRow() {
	form := m.editor().Form()
	if len(form.Groups) == 0 {
		m.setStatus("This tab has no rows", true)
		return
	}
	g := form.Groups[0]
	g.Add()
	prefix := fmt.Sprintf("%s.%d.", g.Key, len(g.Rows)-1)
	for i, e := range form.Entries() {
		if strings.HasPrefix(e.Path, prefix) {
			m.cursor = i
			break
		}
	}
	m.setStatus(fmt.Sprintf("Added %s %d", strings.ToLower(g.Label), len(g.Rows)), false)
}

// removeRow deletes the row holding the cursor.
func (m *Model) removeRow() {
	entries := m.entries()
	if len(entries) == 0 {
		return
	}
	parts := strings.SplitN(entries[m.cursor].Path, ".", 3)
	form := m.editor().Form()
	if len(parts) != 3 || form.Field(entries[m.cursor].Path) != nil {
		m.setStatus("Not on a row", true)
		return
	}
	g := form.Group(parts[0])
	i, err := strconv.Atoi(parts[1])
	if g == nil || err != nil {
		m.setStatus("Not on a row", true)
		return
	}
	if err := g.Remove(i); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	if n := len(m.entries()); m.cursor >= n {
		m.cursor = max(0, n-1)
	}
	m.setStatus(fmt.Sprintf("Removed %s %d", strings.ToLower(g.Label), i+1), false)
}

func (m *Model) export() {
	if m.exportPath == "" {
		m.setStatus("No export path", true)
		return
	}
	path, err := m.session.Export(m.exportPath)
	if err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("Exported "+path, false)
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

// Line fields are edited on one line with \n separators.
func toInput(f *editor.Field) string {
	if f.Kind == editor.KindLines {
		return strings.ReplaceAll(f.Value, "\n", `\n`)
	}
	return f.Value
}

func fromInput(f *editor.Field, s string) string {
	if f.Kind == editor.KindLines {
		return strings.ReplaceAll(s, `\n`, "\n")
	}
	return s
}
