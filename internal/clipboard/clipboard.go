// Package clipboard keeps the editor's multi-line clipboard and mirrors it
// to the system clipboard when one is available.
package clipboard

import (
	"strings"

	syscb "github.com/atotto/clipboard"
)

// Clipboard holds copied lines. The in-process copy is authoritative so the
// editor behaves identically on headless systems; the OS clipboard is
// updated best-effort.
type Clipboard struct {
	lines []string
}

// New returns an empty clipboard.
func New() *Clipboard {
	return &Clipboard{}
}

// Copy stores lines and pushes the newline-joined text to the system
// clipboard. A system clipboard failure is not an error.
func (c *Clipboard) Copy(lines []string) {
	c.lines = append([]string{}, lines...)
	if len(c.lines) == 0 {
		return
	}
	_ = syscb.WriteAll(strings.Join(c.lines, "\n"))
}

// Lines returns the stored lines.
func (c *Clipboard) Lines() []string {
	return append([]string{}, c.lines...)
}

// IsEmpty reports whether nothing has been copied.
func (c *Clipboard) IsEmpty() bool { return len(c.lines) == 0 }
