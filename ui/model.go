package ui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/go-scripts/webscraper/internal/clipboard"
	"github.com/go-scripts/webscraper/internal/notice"
	"github.com/go-scripts/webscraper/internal/pipeline"
	"github.com/go-scripts/webscraper/internal/session"
)

// copiedDuration is how long the "Copied!" indicator stays on
const copiedDuration = 2 * time.Second

// Message types
type runStepMsg struct {
	event pipeline.Event
	err   error
}

type copyResultMsg struct {
	notice notice.Notice
}

type copiedResetMsg struct{}

type noticeMsg struct {
	notice notice.Notice
}

func emitNotice(n notice.Notice) tea.Cmd {
	return func() tea.Msg {
		return noticeMsg{notice: n}
	}
}

// Model is the root Bubble Tea model of the scraper form
type Model struct {
	ctx       context.Context
	session   *session.Session
	clipboard clipboard.Writer
	logger    *log.Logger
	layout    *Layout
	help      help.Model

	run       *pipeline.Run
	startTime time.Time
	copied    bool
}

// NewModel creates the form over s
func NewModel(ctx context.Context, s *session.Session, clip clipboard.Writer, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.Default()
	}
	return &Model{
		ctx:       ctx,
		session:   s,
		clipboard: clip,
		logger:    logger,
		layout:    NewLayout(s),
		help:      help.New(),
	}
}

// Init is the first function called. It returns an optional initial command.
func (m *Model) Init() tea.Cmd {
	return m.layout.Init()
}

// Update handles all the updates and state transitions
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		m.layout.SetSize(msg.Width, msg.Height-1) // header line
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Run):
			return m, m.startRun()
		case key.Matches(msg, keys.Copy):
			return m, m.copyJSON()
		case key.Matches(msg, keys.Next):
			return m, m.layout.FocusNext()
		case key.Matches(msg, keys.Prev):
			return m, m.layout.FocusPrev()
		}
		return m, m.layout.Update(msg)

	case runStepMsg:
		return m, m.handleStep(msg)

	case copyResultMsg:
		m.layout.AddNotice(msg.notice)
		if msg.notice.Level != notice.LevelSuccess {
			return m, nil
		}
		m.copied = true
		m.layout.Results().SetCopied(true)
		return m, tea.Tick(copiedDuration, func(time.Time) tea.Msg {
			return copiedResetMsg{}
		})

	case copiedResetMsg:
		m.copied = false
		m.layout.Results().SetCopied(false)
		return m, nil

	case noticeMsg:
		m.layout.AddNotice(msg.notice)
		return m, nil
	}

	return m, m.layout.Update(msg)
}

// startRun begins a run with the current form state. It does nothing
// while a run is in progress.
func (m *Model) startRun() tea.Cmd {
	if m.run != nil {
		return nil
	}

	run, err := m.session.StartRun()
	switch {
	case errors.Is(err, pipeline.ErrNoURLs):
		m.layout.AddNotice(notice.NoURLs())
		return nil
	case err != nil:
		m.layout.AddNotice(notice.Info("Cannot start: %v", err))
		return nil
	}

	m.run = run
	m.startTime = time.Now()
	m.layout.Stats().UpdateStats(RunStats{
		RunID:     run.ID,
		Total:     run.Total(),
		StartTime: m.startTime,
	})

	return tea.Batch(m.layout.Results().StartRun(run.Total()), m.step())
}

// step handles the next URL of the active run in the background
func (m *Model) step() tea.Cmd {
	run, ctx := m.run, m.ctx
	return func() tea.Msg {
		ev, err := run.Next(ctx)
		return runStepMsg{event: ev, err: err}
	}
}

func (m *Model) handleStep(msg runStepMsg) tea.Cmd {
	if m.run == nil {
		return nil
	}

	if msg.err != nil {
		aborted := !errors.Is(msg.err, pipeline.ErrRunFinished)
		if aborted {
			m.logger.Error("run aborted", "run", m.run.ID, "err", msg.err)
		}
		m.finishRun(aborted)
		return nil
	}

	ev := msg.event
	m.layout.Results().Record(ev)
	if ev.Err != nil {
		m.layout.AddNotice(notice.ItemFailed(ev.URL, ev.Err))
	}

	summary := m.run.Summary()
	m.layout.Stats().UpdateStats(RunStats{
		RunID:     summary.RunID,
		Total:     summary.Total,
		Processed: summary.Processed,
		Failed:    summary.Failed,
		StartTime: m.startTime,
	})

	if ev.Done {
		m.finishRun(false)
		return nil
	}
	return m.step()
}

func (m *Model) finishRun(aborted bool) {
	summary := m.run.Summary()
	m.run = nil

	stats := m.layout.Stats().Stats()
	stats.Processed = summary.Processed
	stats.Failed = summary.Failed
	stats.EndTime = time.Now()
	m.layout.Stats().UpdateStats(stats)

	m.layout.Results().FinishRun()
	if aborted {
		m.layout.AddNotice(notice.Info("Scraping stopped after %d sites.", summary.Processed))
		return
	}
	m.layout.AddNotice(notice.RunComplete(summary.Processed, summary.Failed))
}

// copyJSON copies the result set in the background, including the partial
// set of a run in progress. It does nothing when there is nothing to copy.
func (m *Model) copyJSON() tea.Cmd {
	if len(m.session.Pipeline.Results()) == 0 || m.copied {
		return nil
	}

	data, err := m.session.Pipeline.JSON()
	if err != nil {
		return emitNotice(notice.CopyFailed(err))
	}

	w := m.clipboard
	return func() tea.Msg {
		return copyResultMsg{notice: clipboard.Copy(w, string(data))}
	}
}

// Running reports whether a run is in progress
func (m *Model) Running() bool {
	return m.run != nil
}

// View renders the form
func (m *Model) View() string {
	header := titleStyle.Render("Web Scraper") + " " +
		dimStyle.Render("Configure sites to scrape and extract structured data as JSON")

	return lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		m.layout.View(),
		m.help.View(keys),
	)
}
