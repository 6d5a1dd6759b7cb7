package game

// History is a fixed-capacity ring of positions, newest first. Pushing onto
// a full ring drops the oldest entry.
type History struct {
	buf  []Vec3
	head int
	n    int
}

func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]Vec3, capacity)}
}

func (h *History) Cap() int { return len(h.buf) }
func (h *History) Len() int { return h.n }

func (h *History) PushFront(p Vec3) {
	h.head = (h.head - 1 + len(h.buf)) % len(h.buf)
	h.buf[h.head] = p
	if h.n < len(h.buf) {
		h.n++
	}
}

func (h *History) PopFront() (Vec3, bool) {
	if h.n == 0 {
		return Vec3{}, false
	}
	p := h.buf[h.head]
	h.head = (h.head + 1) % len(h.buf)
	h.n--
	return p, true
}

func (h *History) Front() (Vec3, bool) {
	if h.n == 0 {
		return Vec3{}, false
	}
	return h.buf[h.head], true
}

func (h *History) Snapshot() []Vec3 {
	out := make([]Vec3, h.n)
	for i := range h.n {
		out[i] = h.buf[(h.head+i)%len(h.buf)]
	}
	return out
}
