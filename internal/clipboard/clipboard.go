// Package clipboard provides the clipboard writers the widget copies through.
package clipboard

import (
	"errors"
	"sync"

	sysclip "github.com/atotto/clipboard"
)

var ErrUnsupported = errors.New("system clipboard is not available")

// Writer puts text on a clipboard.
type Writer interface {
	WriteText(text string) error
}

// System writes to the operating system clipboard.
type System struct{}

// WriteText copies text to the system clipboard.
func (System) WriteText(text string) error {
	if sysclip.Unsupported {
		return ErrUnsupported
	}
	return sysclip.WriteAll(text)
}

// Browser leaves the write to the page, which copies with navigator.clipboard.
type Browser struct{}

// WriteText does nothing.
func (Browser) WriteText(string) error { return nil }

// Memory records the last text written. Safe for concurrent use.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
}

// WriteText stores text.
func (m *Memory) WriteText(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.writes++
	return nil
}

// Text returns the last text written and how many writes happened.
func (m *Memory) Text() (string, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, m.writes
}
