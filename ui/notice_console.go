package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-scripts/webscraper/internal/notice"
)

// Styles for different notice levels
var (
	errorNoticeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("196")).
				Bold(true)

	successNoticeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("42"))

	infoNoticeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110"))

	timestampStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("242")).
			Italic(true)
)

var (
	filterAll    = key.NewBinding(key.WithKeys("1"))
	filterErrors = key.NewBinding(key.WithKeys("2"))
)

// NoticeConsole lists the notices of the session, newest last
type NoticeConsole struct {
	viewport   viewport.Model
	entries    []notice.Notice
	errorsOnly bool
	focused    bool
	width      int
	height     int
}

// NewNoticeConsole creates an empty console
func NewNoticeConsole() *NoticeConsole {
	return &NoticeConsole{
		viewport: viewport.New(0, 0),
		entries:  make([]notice.Notice, 0),
	}
}

func (c *NoticeConsole) Init() tea.Cmd {
	return nil
}

func (c *NoticeConsole) Focus() tea.Cmd {
	c.focused = true
	return nil
}

func (c *NoticeConsole) Blur() {
	c.focused = false
}

// SetSize updates the console dimensions
func (c *NoticeConsole) SetSize(width, height int) {
	c.width = width
	c.height = height
	c.viewport.Width = max(width-4, 0)
	c.viewport.Height = max(height-4, 0)
	c.updateContent()
}

// Add appends a notice
func (c *NoticeConsole) Add(n notice.Notice) {
	c.entries = append(c.entries, n)
	c.updateContent()
}

// Entries returns all notices received
func (c *NoticeConsole) Entries() []notice.Notice {
	return c.entries
}

// Latest returns the newest notice
func (c *NoticeConsole) Latest() (notice.Notice, bool) {
	if len(c.entries) == 0 {
		return notice.Notice{}, false
	}
	return c.entries[len(c.entries)-1], true
}

func (c *NoticeConsole) Update(msg tea.Msg) (Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		c.viewport.LineUp(1)
	case key.Matches(keyMsg, keys.Down):
		c.viewport.LineDown(1)
	case key.Matches(keyMsg, filterAll):
		c.errorsOnly = false
		c.updateContent()
	case key.Matches(keyMsg, filterErrors):
		c.errorsOnly = true
		c.updateContent()
	}
	return c, nil
}

func (c *NoticeConsole) View() string {
	filter := "all"
	if c.errorsOnly {
		filter = "errors"
	}
	footer := infoStyle.Render(fmt.Sprintf("Filter: %s (1:All 2:Errors) | Total: %d | Errors: %d",
		filter, len(c.entries), c.countErrors()))

	content := titleStyle.Render("Notices") + "\n" + c.viewport.View() + "\n" + footer
	return panelStyle(lipgloss.Color("196"), c.focused, c.width, c.height).Render(content)
}

// updateContent updates the viewport content
func (c *NoticeConsole) updateContent() {
	var sb strings.Builder

	for _, n := range c.entries {
		if c.errorsOnly && n.Level != notice.LevelError {
			continue
		}

		var style lipgloss.Style
		switch n.Level {
		case notice.LevelError:
			style = errorNoticeStyle
		case notice.LevelSuccess:
			style = successNoticeStyle
		default:
			style = infoNoticeStyle
		}

		sb.WriteString(fmt.Sprintf("%s [%s] %s\n",
			timestampStyle.Render(n.At.Format("15:04:05")),
			style.Render(n.Level.String()),
			n.Message,
		))
	}

	c.viewport.SetContent(sb.String())
	c.viewport.GotoBottom()
}

func (c *NoticeConsole) countErrors() int {
	count := 0
	for _, n := range c.entries {
		if n.Level == notice.LevelError {
			count++
		}
	}
	return count
}
