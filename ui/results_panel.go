package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-scripts/webscraper/internal/pipeline"
)

// processedURL is one line of the progress list
type processedURL struct {
	url string
	err error
}

// ResultsPanel shows run progress and, once idle, the JSON artifact
type ResultsPanel struct {
	pipeline *pipeline.Pipeline
	spinner  spinner.Model
	bar      progress.Model
	viewport viewport.Model

	running   bool
	total     int
	processed []processedURL
	records   int
	copied    bool
	focused   bool
	width     int
	height    int
}

// NewResultsPanel creates the panel reading from p
func NewResultsPanel(p *pipeline.Pipeline) *ResultsPanel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	return &ResultsPanel{
		pipeline: p,
		spinner:  s,
		bar:      progress.New(progress.WithDefaultGradient()),
		viewport: viewport.New(0, 0),
	}
}

func (r *ResultsPanel) Init() tea.Cmd {
	return nil
}

func (r *ResultsPanel) Focus() tea.Cmd {
	r.focused = true
	return nil
}

func (r *ResultsPanel) Blur() {
	r.focused = false
}

// SetSize updates the panel dimensions
func (r *ResultsPanel) SetSize(width, height int) {
	r.width = width
	r.height = height
	r.viewport.Width = max(width-4, 0)
	r.viewport.Height = max(height-6, 0)
	r.bar.Width = max(width-8, 10)
}

// Update handles scrolling and the spinner animation
func (r *ResultsPanel) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !r.running {
			return r, nil
		}
		var cmd tea.Cmd
		r.spinner, cmd = r.spinner.Update(msg)
		return r, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			r.viewport.LineUp(1)
		case key.Matches(msg, keys.Down):
			r.viewport.LineDown(1)
		case msg.String() == "pgup":
			r.viewport.HalfViewUp()
		case msg.String() == "pgdown":
			r.viewport.HalfViewDown()
		}
	}
	return r, nil
}

// StartRun switches to the progress view and starts the spinner
func (r *ResultsPanel) StartRun(total int) tea.Cmd {
	r.running = true
	r.total = total
	r.processed = r.processed[:0]
	r.records = 0
	r.viewport.SetContent("")
	return r.spinner.Tick
}

// Record adds the outcome of one URL to the progress list
func (r *ResultsPanel) Record(ev pipeline.Event) {
	r.processed = append(r.processed, processedURL{url: ev.URL, err: ev.Err})
	if ev.Record != nil {
		r.records++
	}
}

// FinishRun renders the JSON of the pipeline's result set
func (r *ResultsPanel) FinishRun() {
	r.running = false
	r.records = len(r.pipeline.Results())

	data, err := r.pipeline.JSON()
	if err != nil {
		r.viewport.SetContent(errorStyle.Render(err.Error()))
		return
	}
	r.viewport.SetContent(string(data))
	r.viewport.GotoTop()
}

// SetCopied toggles the "Copied!" indicator
func (r *ResultsPanel) SetCopied(copied bool) {
	r.copied = copied
}

// Running reports whether a run is displayed as in progress
func (r *ResultsPanel) Running() bool {
	return r.running
}

// RecordCount returns the number of records of the displayed run
func (r *ResultsPanel) RecordCount() int {
	return r.records
}

func (r *ResultsPanel) actions() string {
	run := "[ctrl+r] Run scraping"
	if r.running {
		run = r.spinner.View() + " Processing..."
	}

	actions := []string{infoStyle.Render(run)}
	if r.records > 0 && !r.running {
		copyLabel := "[ctrl+y] Copy JSON"
		if r.copied {
			copyLabel = "Copied!"
		}
		actions = append(actions, infoStyle.Render(copyLabel))
	}
	return strings.Join(actions, "  ")
}

func (r *ResultsPanel) View() string {
	header := titleStyle.Render("Scraping Results") + "  " + r.actions()

	var body string
	switch {
	case r.running:
		done := len(r.processed)
		var sb strings.Builder
		sb.WriteString(dimStyle.Render(fmt.Sprintf("Processing URLs... (%d/%d)", done, r.total)) + "\n")
		if r.total > 0 {
			sb.WriteString(r.bar.ViewAs(float64(done)/float64(r.total)) + "\n")
		}
		for _, p := range r.processed {
			if p.err != nil {
				sb.WriteString(errorStyle.Render("✗ ") + p.url + "\n")
				continue
			}
			sb.WriteString(successStyle.Render("✓ ") + p.url + "\n")
		}
		body = sb.String()

	case r.records > 0:
		body = badgeStyle.Render(fmt.Sprintf("%d sites processed", r.records)) + "\n" + r.viewport.View()

	default:
		body = dimStyle.Render("Press ctrl+r to start scraping")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, header, "", body)
	return panelStyle(lipgloss.Color("35"), r.focused, r.width, r.height).Render(content)
}
