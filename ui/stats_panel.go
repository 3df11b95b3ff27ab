package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RunStats holds the counters of the current or last run
type RunStats struct {
	RunID     string
	Total     int
	Processed int
	Failed    int
	StartTime time.Time
	EndTime   time.Time
}

// StatsPanel displays run statistics
type StatsPanel struct {
	stats      RunStats
	width      int
	height     int
	labelStyle lipgloss.Style
	valueStyle lipgloss.Style
}

func NewStatsPanel() *StatsPanel {
	return &StatsPanel{
		labelStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		valueStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")),
	}
}

func (s *StatsPanel) Init() tea.Cmd {
	return nil
}

func (s *StatsPanel) SetSize(width, height int) {
	s.width = width
	s.height = height
}

func (s *StatsPanel) Update(msg tea.Msg) (Component, tea.Cmd) {
	return s, nil
}

func (s *StatsPanel) View() string {
	var content strings.Builder
	content.WriteString(titleStyle.Render("Run Statistics") + "\n\n")

	if s.stats.StartTime.IsZero() {
		content.WriteString(dimStyle.Render("No run yet"))
		return panelStyle(lipgloss.Color("99"), false, s.width, s.height).Render(content.String())
	}

	done := s.stats.Processed + s.stats.Failed
	progress := 0.0
	if s.stats.Total > 0 {
		progress = float64(done) / float64(s.stats.Total) * 100
	}

	perSecond := 0.0
	if elapsed := s.elapsed().Seconds(); elapsed > 0 {
		perSecond = float64(done) / elapsed
	}

	stats := []struct {
		label string
		value string
	}{
		{"Progress", fmt.Sprintf("%.1f%% (%d/%d)", progress, done, s.stats.Total)},
		{"Records", fmt.Sprintf("%d", s.stats.Processed)},
		{"Failed", fmt.Sprintf("%d", s.stats.Failed)},
		{"URLs/Second", fmt.Sprintf("%.2f", perSecond)},
		{"Elapsed Time", formatElapsed(s.elapsed())},
	}

	columnWidth := max((s.width-8)/2, 0)
	for _, stat := range stats {
		content.WriteString(fmt.Sprintf("%-*s %s\n",
			columnWidth,
			s.labelStyle.Render(stat.label+":"),
			s.valueStyle.Render(stat.value),
		))
	}

	return panelStyle(lipgloss.Color("99"), false, s.width, s.height).Render(content.String())
}

// UpdateStats replaces the statistics
func (s *StatsPanel) UpdateStats(stats RunStats) {
	s.stats = stats
}

// Stats returns the statistics shown
func (s *StatsPanel) Stats() RunStats {
	return s.stats
}

func (s *StatsPanel) elapsed() time.Duration {
	if s.stats.StartTime.IsZero() {
		return 0
	}
	if !s.stats.EndTime.IsZero() {
		return s.stats.EndTime.Sub(s.stats.StartTime)
	}
	return time.Since(s.stats.StartTime)
}

func formatElapsed(elapsed time.Duration) string {
	return fmt.Sprintf("%02d:%02d:%02d",
		int(elapsed.Hours()),
		int(elapsed.Minutes())%60,
		int(elapsed.Seconds())%60,
	)
}
