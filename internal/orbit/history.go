package orbit

// History is a fixed-capacity ring of the most recently pushed states, used
// for trail display. Entries before the first push are absent, not
// zero-valued, so a fresh buffer draws no phantom trail at the origin.
type History struct {
	buf  []State
	head int
	size int
}

func NewHistory(capacity int) *History {
	if capacity <= 0 {
		panic("orbit: history capacity must be positive")
	}
	return &History{buf: make([]State, capacity)}
}

func (h *History) Cap() int { return len(h.buf) }
func (h *History) Len() int { return h.size }

// Push records s as the most recent state, evicting the oldest entry once
// the buffer is full.
func (h *History) Push(s State) {
	h.buf[h.head] = s
	h.head = (h.head + 1) % len(h.buf)
	if h.size < len(h.buf) {
		h.size++
	}
}

// Snapshot returns the held states newest-first.
func (h *History) Snapshot() []State {
	out := make([]State, h.size)
	for i := 0; i < h.size; i++ {
		out[i] = h.buf[(h.head-1-i+len(h.buf))%len(h.buf)]
	}
	return out
}
