package urls

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrEmptyURL is returned when adding an empty string
	ErrEmptyURL = errors.New("url is empty")
	// ErrDuplicateURL is returned when the URL is already in the list
	ErrDuplicateURL = errors.New("url already added")
	// ErrIndexOutOfRange is returned by Remove for an invalid position
	ErrIndexOutOfRange = errors.New("index out of range")
)

// List is an ordered, de-duplicated list of URLs to scrape
type List struct {
	urls []string
	seen map[string]bool
	mu   sync.Mutex
}

// New creates a List seeded with the given URLs. Empty and repeated
// entries are skipped.
func New(initial ...string) *List {
	l := &List{
		urls: make([]string, 0, len(initial)),
		seen: make(map[string]bool),
	}
	for _, u := range initial {
		_ = l.Add(u)
	}
	return l
}

// Add appends a URL to the end of the list. Comparison is exact string
// equality; no URL validation happens here.
func (l *List) Add(url string) error {
	if url == "" {
		return ErrEmptyURL
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.seen[url] {
		return fmt.Errorf("%w: %s", ErrDuplicateURL, url)
	}

	l.urls = append(l.urls, url)
	l.seen[url] = true
	return nil
}

// Remove deletes the URL at index, keeping the order of the rest
func (l *List) Remove(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.urls) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(l.urls))
	}

	delete(l.seen, l.urls[index])
	l.urls = append(l.urls[:index], l.urls[index+1:]...)
	return nil
}

// Items returns a copy of the URLs in insertion order
func (l *List) Items() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]string, len(l.urls))
	copy(out, l.urls)
	return out
}

// Contains reports whether url is in the list
func (l *List) Contains(url string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.seen[url]
}

// Len returns the number of URLs
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.urls)
}
