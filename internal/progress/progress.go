package progress

import (
	"fmt"
	"net/url"
	"sync"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/progress"
)

const maxURLWidth = 40

// Tracker follows a headless run and renders a one-line status
type Tracker struct {
	bar       progress.Model
	total     int
	processed int
	failed    int
	current   string
	mu        sync.Mutex
}

// New creates a Tracker for total URLs
func New(total int) *Tracker {
	bar := progress.New(progress.WithDefaultGradient(), progress.WithWidth(30))
	return &Tracker{
		bar:   bar,
		total: total,
	}
}

// Done records the outcome of one URL
func (t *Tracker) Done(url string, failed bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.processed++
	if failed {
		t.failed++
	}
	t.current = url
}

// Percent returns the completed fraction in [0, 1]
func (t *Tracker) Percent() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.percent()
}

func (t *Tracker) percent() float64 {
	if t.total == 0 {
		return 0
	}
	return float64(t.processed) / float64(t.total)
}

// Counts returns processed and failed totals
func (t *Tracker) Counts() (processed, failed int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.processed, t.failed
}

// Line renders the progress bar, counters and last URL
func (t *Tracker) Line() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	line := fmt.Sprintf(" %s %d/%d", t.bar.ViewAs(t.percent()), t.processed, t.total)
	if t.failed > 0 {
		line += fmt.Sprintf(" (%d failed)", t.failed)
	}
	if t.current != "" {
		line += " " + FormatURL(t.current)
	}
	return line
}

// FormatURL shortens a URL for single-line display, keeping the host.
// Widths are counted in runes.
func FormatURL(urlStr string) string {
	if utf8.RuneCountInString(urlStr) <= maxURLWidth {
		return urlStr
	}

	// Keep the domain, then truncate the path from the left
	u, err := url.Parse(urlStr)
	if err == nil && u.Host != "" {
		domain := u.Host
		path := []rune(u.Path)
		if room := maxURLWidth - utf8.RuneCountInString(domain) - 3; room > 0 && len(path) > room {
			return domain + "..." + string(path[len(path)-room:])
		}
		return domain + string(path)
	}
	r := []rune(urlStr)
	return "..." + string(r[len(r)-maxURLWidth:])
}
