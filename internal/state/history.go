package state

import "LocalPaint/internal/engine"

// History is a bounded stack of geometry snapshots backed by a ring buffer.
// Pushing onto a full history drops the oldest snapshot; Pop returns the
// newest.
type History struct {
	buf  [][]engine.Vertex
	head int // oldest entry
	n    int
}

// NewHistory returns a history holding at most capacity snapshots. Capacities
// below one are raised to one.
func NewHistory(capacity int) *History {
	return &History{buf: make([][]engine.Vertex, max(capacity, 1))}
}

// Push stores a copy of snapshot and reports whether an older snapshot had
// to be evicted to make room.
func (h *History) Push(snapshot []engine.Vertex) (evicted bool) {
	s := make([]engine.Vertex, len(snapshot))
	copy(s, snapshot)

	if h.n == len(h.buf) {
		h.buf[h.head] = s
		h.head = (h.head + 1) % len(h.buf)
		return true
	}
	h.buf[(h.head+h.n)%len(h.buf)] = s
	h.n++
	return false
}

// Pop removes and returns the most recent snapshot. The caller owns it.
func (h *History) Pop() ([]engine.Vertex, bool) {
	if h.n == 0 {
		return nil, false
	}
	i := (h.head + h.n - 1) % len(h.buf)
	s := h.buf[i]
	h.buf[i] = nil
	h.n--
	return s, true
}

func (h *History) Len() int { return h.n }
func (h *History) Cap() int { return len(h.buf) }

// Reset drops every snapshot.
func (h *History) Reset() {
	clear(h.buf)
	h.head, h.n = 0, 0
}
