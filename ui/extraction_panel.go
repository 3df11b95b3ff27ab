package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-scripts/webscraper/internal/extraction"
)

var (
	checkedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	uncheckedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
)

// ExtractionPanel is a checkbox list of the fields to extract
type ExtractionPanel struct {
	config  *extraction.Config
	cursor  int
	focused bool
	width   int
	height  int
}

// NewExtractionPanel creates the panel editing cfg in place
func NewExtractionPanel(cfg *extraction.Config) *ExtractionPanel {
	return &ExtractionPanel{config: cfg}
}

func (p *ExtractionPanel) Init() tea.Cmd {
	return nil
}

func (p *ExtractionPanel) Focus() tea.Cmd {
	p.focused = true
	return nil
}

func (p *ExtractionPanel) Blur() {
	p.focused = false
}

func (p *ExtractionPanel) Update(msg tea.Msg) (Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		if p.cursor > 0 {
			p.cursor--
		}
	case key.Matches(keyMsg, keys.Down):
		if p.cursor < len(extraction.Options)-1 {
			p.cursor++
		}
	case key.Matches(keyMsg, keys.Toggle):
		// Options only holds known fields
		_ = p.config.Flip(extraction.Options[p.cursor].Field)
	}
	return p, nil
}

func (p *ExtractionPanel) View() string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Fields to Extract") + "\n\n")

	for i, opt := range extraction.Options {
		box := uncheckedStyle.Render("[ ]")
		if p.config.Enabled(opt.Field) {
			box = checkedStyle.Render("[x]")
		}

		label := opt.Label
		if p.focused && i == p.cursor {
			label = cursorStyle.Render("> " + label)
		} else {
			label = "  " + label
		}

		sb.WriteString(box + label + " " + dimStyle.Render(opt.Description) + "\n")
	}

	return panelStyle(lipgloss.Color("63"), p.focused, p.width, p.height).Render(sb.String())
}

func (p *ExtractionPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// Cursor returns the highlighted option index
func (p *ExtractionPanel) Cursor() int {
	return p.cursor
}
