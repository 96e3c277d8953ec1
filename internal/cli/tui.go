package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/sbgnconv/pkg/dump"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorText)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// ElementListModel - Interactive element browser
// =============================================================================

// ElementListModel is the bubbletea model of `inspect --interactive`. The
// list shows one row per element; enter toggles a detail pane for the row
// under the cursor.
type ElementListModel struct {
	Summary  dump.Summary
	Cursor   int
	Height   int
	Offset   int
	Expanded bool
}

// NewElementListModel creates a browser over the elements of s.
func NewElementListModel(s dump.Summary) ElementListModel {
	return ElementListModel{Summary: s, Height: 15}
}

func (m ElementListModel) Init() tea.Cmd {
	return nil
}

func (m ElementListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	n := len(m.Summary.Elements)
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < n-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			if n > 0 {
				m.Cursor = n - 1
			}
		case "enter", " ":
			m.Expanded = !m.Expanded
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 8
		if m.Height < 5 {
			m.Height = 5
		}
	}
	m.scroll()
	return m, nil
}

// scroll keeps the cursor inside the visible window.
func (m *ElementListModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

// Selected returns the element under the cursor.
func (m ElementListModel) Selected() (dump.Element, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Summary.Elements) {
		return dump.Element{}, false
	}
	return m.Summary.Elements[m.Cursor], true
}

func (m ElementListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(mapTitle(m.Summary)))
	b.WriteString(" " + listDimStyle.Render(m.Summary.Language))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ details  q quit"))
	b.WriteString("\n\n")

	if len(m.Summary.Elements) == 0 {
		b.WriteString(listDimStyle.Render("  no elements"))
		return b.String()
	}

	end := min(m.Offset+m.Height, len(m.Summary.Elements))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		e := m.Summary.Elements[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, e.ID, e.Kind, orDash(e.Label), orDash(e.Parent)})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "Kind", "Label", "Parent").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if m.Offset+row == m.Cursor {
				return listSelectedStyle
			}
			if col == 4 {
				return listDimStyle
			}
			return listNormalStyle
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if m.Expanded {
		if e, ok := m.Selected(); ok {
			b.WriteString(elementDetail(e))
		}
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Summary.Elements))))

	return b.String()
}

// elementDetail renders the non-empty fields of e as key/value lines.
func elementDetail(e dump.Element) string {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	var b strings.Builder
	field := func(k, v string) {
		if v != "" {
			b.WriteString("  " + keyStyle.Render(k) + " " + StyleValue.Render(v) + "\n")
		}
	}

	field("id", e.ID)
	field("kind", e.Kind)
	field("label", e.Label)
	field("parent", e.Parent)
	field("compartment", e.Compartment)
	field("element", e.Element)
	field("source", e.Source)
	field("target", e.Target)
	field("value", e.Value)
	field("variable", e.Variable)
	field("prefix", e.Prefix)
	if e.Reversible {
		field("reversible", "yes")
	}
	if e.Box != nil {
		field("bbox", fmt.Sprintf("%g,%g %gx%g", e.Box.X, e.Box.Y, e.Box.W, e.Box.H))
	}
	for _, a := range e.Annotations {
		field(a.Qualifier, a.Resource)
	}
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
