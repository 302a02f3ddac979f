package domain

import "github.com/sahilm/fuzzy"

// History keeps submitted command lines, newest first, and a navigation
// cursor. Cursor -1 means "fresh input" (nothing selected).
type History struct {
	entries []string
	limit   int
	cursor  int
}

// NewHistory creates an empty history holding at most limit entries.
// A limit <= 0 means unbounded.
func NewHistory(limit int) *History {
	return &History{limit: limit, cursor: -1}
}

// NewHistoryFrom creates a history seeded with entries (newest first),
// truncated to limit.
func NewHistoryFrom(entries []string, limit int) *History {
	h := NewHistory(limit)
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	h.entries = append([]string(nil), entries...)
	return h
}

// Push records a command line as the newest entry and resets the cursor.
func (h *History) Push(line string) {
	h.entries = append([]string{line}, h.entries...)
	if h.limit > 0 && len(h.entries) > h.limit {
		h.entries = h.entries[:h.limit]
	}
	h.cursor = -1
}

// Older moves the cursor towards older entries and returns the selected line.
// It stops at the oldest entry.
func (h *History) Older() string {
	return h.move(1)
}

// Newer moves the cursor towards newer entries and returns the selected line.
// Moving past the newest entry returns to fresh input ("").
func (h *History) Newer() string {
	return h.move(-1)
}

func (h *History) move(delta int) string {
	next := h.cursor + delta
	if next < -1 {
		next = -1
	}
	if next > len(h.entries)-1 {
		next = len(h.entries) - 1
	}
	h.cursor = next
	if h.cursor < 0 {
		return ""
	}
	return h.entries[h.cursor]
}

// Reset returns the cursor to fresh input without dropping entries.
func (h *History) Reset() {
	h.cursor = -1
}

// Entries returns a copy of the entries, newest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the current cursor position (-1 for fresh input).
func (h *History) Cursor() int {
	return h.cursor
}

// Search returns the entry that best fuzzy-matches query.
// Among equally good matches the newest wins. The cursor is not moved.
func (h *History) Search(query string) (string, bool) {
	if query == "" || len(h.entries) == 0 {
		return "", false
	}
	matches := fuzzy.Find(query, h.entries)
	if len(matches) == 0 {
		return "", false
	}
	// fuzzy's ordering does not keep ties stable, so pick by score and index.
	best := matches[0]
	for _, m := range matches[1:] {
		if m.Score > best.Score || (m.Score == best.Score && m.Index < best.Index) {
			best = m
		}
	}
	return best.Str, true
}
