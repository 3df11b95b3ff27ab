// Package clipboard copies the JSON artifact to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/go-scripts/webscraper/internal/notice"
)

// ErrUnsupported is returned when no clipboard utility is available
var ErrUnsupported = errors.New("clipboard not supported on this system")

// Writer puts text on a clipboard
type Writer interface {
	WriteAll(text string) error
}

// System writes to the operating system clipboard
type System struct{}

// WriteAll implements Writer
func (System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Copy writes text to w and reports the outcome as a notice
func Copy(w Writer, text string) notice.Notice {
	if err := w.WriteAll(text); err != nil {
		return notice.CopyFailed(err)
	}
	return notice.CopySucceeded()
}
