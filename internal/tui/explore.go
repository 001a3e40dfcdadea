// Package tui is the interactive extension browser behind "argue explore".
// It lists the enumerated extensions of a framework in a scrollable pane,
// shows the full IN/OUT/UNDEC labelling of the selected one, and supports
// substring filtering by argument name.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/argue/internal/af"
	"github.com/Iron-Ham/argue/internal/semantics"
	"github.com/Iron-Ham/argue/internal/tui/styles"
)

// Model is the bubbletea model for the explore view. It is read-only over
// labellings computed before the program starts; the view never re-runs the
// solver.
type Model struct {
	title      string
	labellings []*semantics.Labelling

	filter    textinput.Model
	filtering bool // filter input focused

	cursor   int // index into visible()
	width    int
	height   int
	quitting bool
}

// NewModel creates an explore model over pre-computed complete or stable
// labellings. The title names the framework and semantics being browsed.
func NewModel(title string, labellings []*semantics.Labelling) Model {
	filter := textinput.New()
	filter.Placeholder = "filter by argument"
	filter.Prompt = "/ "
	filter.CharLimit = 64

	return Model{
		title:      title,
		labellings: labellings,
		filter:     filter,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateList(msg)
	}
	return m, nil
}

// updateFilter handles keys while the filter input is focused.
func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.filtering = false
		m.filter.Blur()
		return m, nil
	case "esc":
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.cursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.clampCursor()
	return m, cmd
}

// updateList handles keys in list navigation mode.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		return m, tea.Quit

	case "esc":
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			m.cursor = 0
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit

	case "/":
		m.filtering = true
		return m, m.filter.Focus()

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}

	case "g", "home":
		m.cursor = 0

	case "G", "end":
		if n := len(m.visible()); n > 0 {
			m.cursor = n - 1
		}
	}
	return m, nil
}

// Selected returns the labelling under the cursor, or nil when the filter
// leaves nothing visible.
func (m Model) Selected() *semantics.Labelling {
	vis := m.visible()
	if len(vis) == 0 {
		return nil
	}
	return vis[m.cursor]
}

// visible returns the labellings whose extension mentions the filter text.
// An empty filter shows everything; the empty extension only survives an
// empty filter.
func (m Model) visible() []*semantics.Labelling {
	needle := strings.TrimSpace(m.filter.Value())
	if needle == "" {
		return m.labellings
	}

	var out []*semantics.Labelling
	for _, l := range m.labellings {
		for _, arg := range l.Extension() {
			if strings.Contains(string(arg), needle) {
				out = append(out, l)
				break
			}
		}
	}
	return out
}

func (m *Model) clampCursor() {
	if n := len(m.visible()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(styles.Title.Render(m.title))
	b.WriteString(styles.Muted.Render(fmt.Sprintf("  %d extensions", len(m.labellings))))
	b.WriteString("\n\n")

	if m.filtering || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("\n\n")
	}

	vis := m.visible()
	if len(vis) == 0 {
		b.WriteString(styles.Muted.Render("no extensions match the filter"))
		b.WriteString("\n")
	} else {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			m.renderList(vis),
			"  ",
			m.renderDetail(vis[m.cursor]),
		))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("↑/↓ select · / filter · q quit"))
	return b.String()
}

// renderList renders the extension list with the cursor row highlighted.
func (m Model) renderList(vis []*semantics.Labelling) string {
	var rows []string
	for i, l := range vis {
		line := renderSet(l.Extension())
		if i == m.cursor {
			rows = append(rows, styles.Selected.Render(line))
		} else {
			rows = append(rows, styles.Unselected.Render(line))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderDetail renders the labelling partition of the selected extension.
func (m Model) renderDetail(l *semantics.Labelling) string {
	rows := []string{
		styles.LabelIn.Render("IN    ") + styles.Text.Render(renderSet(l.WithLabel(semantics.In))),
		styles.LabelOut.Render("OUT   ") + styles.Text.Render(renderSet(l.WithLabel(semantics.Out))),
		styles.LabelUndec.Render("UNDEC ") + styles.Text.Render(renderSet(l.WithLabel(semantics.Undec))),
	}
	return styles.DetailBox.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// renderSet formats a set of arguments as "{a,b,c}".
func renderSet(args []af.Argument) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(string(arg))
	}
	b.WriteByte('}')
	return b.String()
}
