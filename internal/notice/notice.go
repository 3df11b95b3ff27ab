// Package notice defines the short, transient messages shown to the user
// after validation failures, finished runs and clipboard copies.
package notice

import (
	"fmt"
	"time"
)

// Level is the severity of a notice
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "OK"
	case LevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Notice is a single user-facing message
type Notice struct {
	Level   Level
	Message string
	At      time.Time
}

func (n Notice) String() string {
	return fmt.Sprintf("[%s] %s", n.Level, n.Message)
}

func newNotice(level Level, format string, args ...any) Notice {
	return Notice{
		Level:   level,
		Message: fmt.Sprintf(format, args...),
		At:      time.Now(),
	}
}

// Info builds an informational notice
func Info(format string, args ...any) Notice {
	return newNotice(LevelInfo, format, args...)
}

// NoURLs is emitted when a run is requested with an empty URL list
func NoURLs() Notice {
	return newNotice(LevelError, "Add at least one URL before scraping")
}

// RunComplete is emitted when a run finishes
func RunComplete(processed, failed int) Notice {
	if failed > 0 {
		return newNotice(LevelSuccess, "Scraping complete! %d sites processed, %d failed.", processed, failed)
	}
	return newNotice(LevelSuccess, "Scraping complete! %d sites processed.", processed)
}

// ItemFailed is emitted when one URL of a run could not be processed
func ItemFailed(url string, err error) Notice {
	return newNotice(LevelError, "Skipped %s: %v", url, err)
}

// URLRejected is emitted when a URL cannot be added to the list
func URLRejected(url string, err error) Notice {
	if url == "" {
		return newNotice(LevelError, "Cannot add URL: %v", err)
	}
	return newNotice(LevelError, "Cannot add %s: %v", url, err)
}

// CopySucceeded is emitted after the JSON was copied to the clipboard
func CopySucceeded() Notice {
	return newNotice(LevelSuccess, "JSON copied to clipboard!")
}

// CopyFailed is emitted when the clipboard write fails
func CopyFailed(err error) Notice {
	return newNotice(LevelError, "Failed to copy JSON: %v", err)
}
