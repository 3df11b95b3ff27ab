package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-scripts/webscraper/internal/notice"
	"github.com/go-scripts/webscraper/internal/session"
)

// Component is a panel of the form
type Component interface {
	Init() tea.Cmd
	Update(tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Focusable is a Component that can receive keyboard input
type Focusable interface {
	Component
	Focus() tea.Cmd
	Blur()
}

// Define common styles
var (
	borderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240"))

	focusedBorderColor = lipgloss.Color("205")

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	badgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
)

// panelStyle returns the frame of a panel of the given outer size
func panelStyle(color lipgloss.Color, focused bool, width, height int) lipgloss.Style {
	style := borderStyle.BorderForeground(color)
	if focused {
		style = style.BorderForeground(focusedBorderColor)
	}
	return style.Width(max(width-2, 0)).Height(max(height-2, 0))
}

// Layout arranges the form panels and tracks keyboard focus
type Layout struct {
	urls           *URLPanel
	extraction     *ExtractionPanel
	classification *ClassificationPanel
	stats          *StatsPanel
	results        *ResultsPanel
	notices        *NoticeConsole

	order   []Focusable
	focused int
	width   int
	height  int
}

// NewLayout creates all panels around the session state
func NewLayout(s *session.Session) *Layout {
	l := &Layout{
		urls:           NewURLPanel(s.URLs),
		extraction:     NewExtractionPanel(s.Extraction),
		classification: NewClassificationPanel(s.Classification),
		stats:          NewStatsPanel(),
		results:        NewResultsPanel(s.Pipeline),
		notices:        NewNoticeConsole(),
	}
	l.order = []Focusable{l.urls, l.extraction, l.classification, l.results, l.notices}
	return l
}

// SetSize adjusts the layout and all components to the given dimensions
func (l *Layout) SetSize(width, height int) {
	l.width = width
	l.height = height

	halfWidth := width / 2
	topHeight := height / 2
	bottomHeight := height - topHeight - 1 // help line

	urlHeight := topHeight * 3 / 5
	classHeight := topHeight * 3 / 5

	l.urls.SetSize(halfWidth, urlHeight)
	l.extraction.SetSize(halfWidth, topHeight-urlHeight)
	l.classification.SetSize(width-halfWidth, classHeight)
	l.stats.SetSize(width-halfWidth, topHeight-classHeight)

	resultsHeight := bottomHeight * 2 / 3
	l.results.SetSize(width, resultsHeight)
	l.notices.SetSize(width, bottomHeight-resultsHeight)
}

// Init initializes all panels and focuses the first one
func (l *Layout) Init() tea.Cmd {
	cmds := []tea.Cmd{
		l.stats.Init(),
		l.order[l.focused].Focus(),
	}
	for _, c := range l.order {
		cmds = append(cmds, c.Init())
	}
	return tea.Batch(cmds...)
}

// Focused returns the panel receiving keys
func (l *Layout) Focused() Focusable {
	return l.order[l.focused]
}

// FocusNext moves focus forward, wrapping around
func (l *Layout) FocusNext() tea.Cmd {
	return l.moveFocus(1)
}

// FocusPrev moves focus backwards, wrapping around
func (l *Layout) FocusPrev() tea.Cmd {
	return l.moveFocus(-1)
}

func (l *Layout) moveFocus(delta int) tea.Cmd {
	l.order[l.focused].Blur()
	l.focused = (l.focused + delta + len(l.order)) % len(l.order)
	return l.order[l.focused].Focus()
}

// Update routes key presses to the focused panel and everything else to
// all panels
func (l *Layout) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		l.SetSize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		_, cmd := l.order[l.focused].Update(msg)
		return cmd
	}

	var cmds []tea.Cmd
	for _, c := range l.order {
		_, cmd := c.Update(msg)
		cmds = append(cmds, cmd)
	}
	_, cmd := l.stats.Update(msg)
	cmds = append(cmds, cmd)
	return tea.Batch(cmds...)
}

// View renders the complete layout
func (l *Layout) View() string {
	left := lipgloss.JoinVertical(lipgloss.Left, l.urls.View(), l.extraction.View())
	right := lipgloss.JoinVertical(lipgloss.Left, l.classification.View(), l.stats.View())
	top := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		top,
		l.results.View(),
		l.notices.View(),
	)
}

// AddNotice shows a notice in the console
func (l *Layout) AddNotice(n notice.Notice) {
	l.notices.Add(n)
}

// Results returns the results panel
func (l *Layout) Results() *ResultsPanel {
	return l.results
}

// Stats returns the statistics panel
func (l *Layout) Stats() *StatsPanel {
	return l.stats
}

// URLs returns the URL panel
func (l *Layout) URLs() *URLPanel {
	return l.urls
}
