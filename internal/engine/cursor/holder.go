package cursor

import "sync"

// Holder owns the session's cursor position. Handlers read the
// current cursor and write back the moved one; the holder serializes
// access for them.
type Holder struct {
	mu  sync.RWMutex
	cur Cursor
}

// NewHolder creates a holder at the given starting position.
func NewHolder(cur Cursor) *Holder {
	return &Holder{cur: cur}
}

// Get returns the current cursor.
func (h *Holder) Get() Cursor {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.cur
}

// Set replaces the current cursor.
func (h *Holder) Set(cur Cursor) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cur = cur
}

// Update applies f to the current cursor.
func (h *Holder) Update(f func(Cursor) Cursor) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cur = f(h.cur)
}
