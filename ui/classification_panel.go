package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-scripts/webscraper/internal/classification"
)

type classColumn int

const (
	columnOfferable classColumn = iota
	columnSelected
)

// ClassificationPanel picks the categories attached to every record.
// The left column offers unselected vocabulary entries, the right one
// lists the selection.
type ClassificationPanel struct {
	selector *classification.Selector
	column   classColumn
	cursors  [2]int
	focused  bool
	width    int
	height   int
}

// NewClassificationPanel creates the panel over s
func NewClassificationPanel(s *classification.Selector) *ClassificationPanel {
	return &ClassificationPanel{selector: s}
}

func (p *ClassificationPanel) Init() tea.Cmd {
	return nil
}

func (p *ClassificationPanel) Focus() tea.Cmd {
	p.focused = true
	return nil
}

func (p *ClassificationPanel) Blur() {
	p.focused = false
}

func (p *ClassificationPanel) items(c classColumn) []string {
	if c == columnSelected {
		return p.selector.Selected()
	}
	return p.selector.Offerable()
}

func (p *ClassificationPanel) clampCursors() {
	for c := range p.cursors {
		n := len(p.items(classColumn(c)))
		if p.cursors[c] >= n {
			p.cursors[c] = max(n-1, 0)
		}
	}
}

func (p *ClassificationPanel) Update(msg tea.Msg) (Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	items := p.items(p.column)
	switch {
	case key.Matches(keyMsg, keys.Left):
		p.column = columnOfferable
	case key.Matches(keyMsg, keys.Right):
		p.column = columnSelected
	case key.Matches(keyMsg, keys.Up):
		if p.cursors[p.column] > 0 {
			p.cursors[p.column]--
		}
	case key.Matches(keyMsg, keys.Down):
		if p.cursors[p.column] < len(items)-1 {
			p.cursors[p.column]++
		}
	case key.Matches(keyMsg, keys.Submit), key.Matches(keyMsg, keys.Delete):
		if len(items) == 0 {
			return p, nil
		}
		label := items[p.cursors[p.column]]
		if p.column == columnOfferable {
			p.selector.Add(label)
		} else {
			p.selector.Remove(label)
		}
		p.clampCursors()
	}
	return p, nil
}

func (p *ClassificationPanel) renderColumn(c classColumn, heading, empty string) string {
	var sb strings.Builder
	sb.WriteString(infoStyle.Render(heading) + "\n")

	items := p.items(c)
	if len(items) == 0 {
		sb.WriteString(dimStyle.Render(empty) + "\n")
	}
	for i, label := range items {
		if p.focused && p.column == c && i == p.cursors[c] {
			sb.WriteString(cursorStyle.Render("> "+label) + "\n")
			continue
		}
		if c == columnSelected {
			sb.WriteString("  " + badgeStyle.Render(label) + "\n")
		} else {
			sb.WriteString("  " + label + "\n")
		}
	}
	return sb.String()
}

func (p *ClassificationPanel) View() string {
	colWidth := max((p.width-6)/2, 0)
	left := lipgloss.NewStyle().Width(colWidth).Render(
		p.renderColumn(columnOfferable, "Add category", "All categories selected"))
	right := lipgloss.NewStyle().Width(colWidth).Render(
		p.renderColumn(columnSelected, "Selected categories", "No category selected"))

	content := titleStyle.Render("Content Classification") + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return panelStyle(lipgloss.Color("35"), p.focused, p.width, p.height).Render(content)
}

func (p *ClassificationPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}
