package ui

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-scripts/webscraper/internal/notice"
	"github.com/go-scripts/webscraper/internal/urls"
)

// urlItem is a stored URL shown in the list
type urlItem struct {
	url string
}

// FilterValue implements list.Item interface
func (i urlItem) FilterValue() string { return i.url }

// Title returns the item's title
func (i urlItem) Title() string { return i.url }

// Description returns the item's description
func (i urlItem) Description() string { return "" }

// URLPanel edits the list of URLs to scrape
type URLPanel struct {
	urls    *urls.List
	input   textinput.Model
	list    list.Model
	focused bool
	width   int
	height  int
}

// NewURLPanel creates the panel over l
func NewURLPanel(l *urls.List) *URLPanel {
	input := textinput.New()
	input.Placeholder = "https://example.com"
	input.Prompt = "> "

	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("170"))

	lm := list.New([]list.Item{}, delegate, 0, 0)
	lm.SetShowTitle(false)
	lm.SetShowHelp(false)
	lm.SetShowStatusBar(false)
	lm.SetFilteringEnabled(false)
	lm.DisableQuitKeybindings()

	p := &URLPanel{
		urls:  l,
		input: input,
		list:  lm,
	}
	p.refresh()
	return p
}

func (p *URLPanel) Init() tea.Cmd {
	return nil
}

// Focus gives the text input the cursor
func (p *URLPanel) Focus() tea.Cmd {
	p.focused = true
	return p.input.Focus()
}

// Blur removes the cursor
func (p *URLPanel) Blur() {
	p.focused = false
	p.input.Blur()
}

func (p *URLPanel) Update(msg tea.Msg) (Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		p.input, cmd = p.input.Update(msg)
		return p, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.Up):
		p.list.CursorUp()
		return p, nil
	case key.Matches(keyMsg, keys.Down):
		p.list.CursorDown()
		return p, nil
	case key.Matches(keyMsg, keys.Submit):
		return p, p.submit()
	case key.Matches(keyMsg, keys.Delete):
		return p, p.removeSelected()
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *URLPanel) submit() tea.Cmd {
	value := p.input.Value()
	err := p.urls.Add(value)
	switch {
	case errors.Is(err, urls.ErrEmptyURL):
		return nil
	case err != nil:
		return emitNotice(notice.URLRejected(value, err))
	}

	p.input.Reset()
	p.refresh()
	p.list.Select(len(p.list.Items()) - 1)
	return nil
}

func (p *URLPanel) removeSelected() tea.Cmd {
	if len(p.list.Items()) == 0 {
		return nil
	}
	idx := p.list.Index()
	if err := p.urls.Remove(idx); err != nil {
		return emitNotice(notice.Info("Nothing removed: %v", err))
	}
	p.refresh()
	if idx >= len(p.list.Items()) && idx > 0 {
		p.list.Select(idx - 1)
	}
	return nil
}

// refresh rebuilds the list items from the URL list
func (p *URLPanel) refresh() {
	stored := p.urls.Items()
	items := make([]list.Item, 0, len(stored))
	for _, u := range stored {
		items = append(items, urlItem{url: u})
	}
	p.list.SetItems(items)
}

func (p *URLPanel) View() string {
	title := titleStyle.Render(fmt.Sprintf("Site URLs (%d)", p.urls.Len()))

	body := dimStyle.Render("No URLs added yet")
	if p.urls.Len() > 0 {
		body = p.list.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left, title, p.input.View(), "", body)
	return panelStyle(lipgloss.Color("99"), p.focused, p.width, p.height).Render(content)
}

func (p *URLPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(width-8, 10)
	p.list.SetSize(max(width-4, 0), max(height-6, 0))
}

// InputValue returns the text currently typed
func (p *URLPanel) InputValue() string {
	return p.input.Value()
}

// Selected returns the index of the highlighted URL
func (p *URLPanel) Selected() int {
	return p.list.Index()
}
