// Package tui provides a Bubble Tea terminal UI for the frame simulator.
package tui

import "strings"

// History keeps the most recent input lines for Up/Down recall and for
// "again". Repeat requests themselves are never stored.
type History struct {
	entries []string
	max     int
	cursor  int // -1 while not navigating
}

// NewHistory creates a history holding at most max lines.
func NewHistory(max int) *History {
	return &History{
		entries: make([]string, 0, max),
		max:     max,
		cursor:  -1,
	}
}

func isRepeat(line string) bool {
	lower := strings.ToLower(line)
	return lower == "again" || lower == "g"
}

// Push records a line. Repeats and consecutive duplicates are skipped.
func (h *History) Push(line string) {
	if isRepeat(line) {
		return
	}
	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return
	}
	h.entries = append(h.entries, line)
	if len(h.entries) > h.max {
		h.entries = h.entries[1:]
	}
}

// LastInput returns the newest line that is frame input rather than a
// meta-command.
func (h *History) LastInput() (string, bool) {
	for i := len(h.entries) - 1; i >= 0; i-- {
		if !strings.HasPrefix(h.entries[i], "/") {
			return h.entries[i], true
		}
	}
	return "", false
}

// Prev steps back to an older line, stopping at the oldest.
func (h *History) Prev() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	switch {
	case h.cursor == -1:
		h.cursor = len(h.entries) - 1
	case h.cursor > 0:
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Next steps toward the newest line; past it, navigation ends.
func (h *History) Next() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	return h.entries[h.cursor], true
}

// ResetCursor ends navigation.
func (h *History) ResetCursor() {
	h.cursor = -1
}
