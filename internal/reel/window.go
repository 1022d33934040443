package reel

// window is a fixed-size ring of consecutive cursors.
//
// Logical index 0 is the head (earliest buffered slot). Shifting moves the
// head instead of copying, so a shift is O(1) and never allocates.
type window struct {
	buf  []int
	head int
}

// newWindow creates a window of n cursors counting up from first.
func newWindow(n, first int) *window {
	w := &window{buf: make([]int, n)}
	w.fill(first)
	return w
}

func (w *window) len() int {
	return len(w.buf)
}

func (w *window) index(i int) int {
	return (w.head + i) % len(w.buf)
}

func (w *window) at(i int) int {
	return w.buf[w.index(i)]
}

func (w *window) set(i, v int) {
	w.buf[w.index(i)] = v
}

// fill resets the window to first, first+1, ...
func (w *window) fill(first int) {
	w.head = 0
	for i := range w.buf {
		w.buf[i] = first + i
	}
}

// shiftForward drops the head and appends last+1 at the tail.
func (w *window) shiftForward() {
	next := w.at(len(w.buf)-1) + 1
	w.buf[w.head] = next
	w.head = (w.head + 1) % len(w.buf)
}

// shiftBackward drops the tail and prepends first-1 at the head.
func (w *window) shiftBackward() {
	prev := w.at(0) - 1
	w.head = (w.head - 1 + len(w.buf)) % len(w.buf)
	w.buf[w.head] = prev
}

// values returns the cursors in logical order.
func (w *window) values() []int {
	out := make([]int, len(w.buf))
	for i := range out {
		out[i] = w.at(i)
	}
	return out
}
