package reel

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/slotreel/internal/layout"
)

// recorder captures notifications as short strings.
type recorder struct {
	events []string
}

func (r *recorder) SpinStarted() { r.events = append(r.events, "spin_started") }
func (r *recorder) Stopped()     { r.events = append(r.events, "stopped") }
func (r *recorder) Shown()       { r.events = append(r.events, "shown") }
func (r *recorder) Hidden()      { r.events = append(r.events, "hidden") }
func (r *recorder) RenderUpdated(order, cursor int) {
	r.events = append(r.events, fmt.Sprintf("render %d=%d", order, cursor))
}
func (r *recorder) CursorChanged(cursor int) {
	r.events = append(r.events, fmt.Sprintf("cursor %d", cursor))
}

func (r *recorder) count(prefix string) int {
	n := 0
	for _, e := range r.events {
		if len(e) >= len(prefix) && e[:len(prefix)] == prefix {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.events = nil
}

// newTestReel returns an initialized reel with three visible slots.
func newTestReel(t *testing.T, speed float64) (*Reel, *recorder) {
	t.Helper()
	r := New().Initialize(3, layout.NewRect(0, 0, 1, 3), speed)
	require.True(t, r.Initialized())
	rec := &recorder{}
	r.Subscribe(rec)
	return r, rec
}

// tickUntilIdle ticks until the reel idles and returns the shifts taken.
func tickUntilIdle(t *testing.T, r *Reel, maxTicks int) int64 {
	t.Helper()
	start := r.Shifts()
	for i := 0; i < maxTicks; i++ {
		r.Tick()
		if r.IsReady() {
			return r.Shifts() - start
		}
	}
	t.Fatalf("reel did not idle within %d ticks (state=%s)", maxTicks, r.State())
	return 0
}

// requireConsecutive checks window[i+1] == window[i]+1 over [from, to).
func requireConsecutive(t *testing.T, cursors []int, from, to int) {
	t.Helper()
	for i := from; i+1 < to; i++ {
		require.Equal(t, cursors[i]+1, cursors[i+1], "window not consecutive at %d: %v", i, cursors)
	}
}
