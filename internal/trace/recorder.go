package trace

import (
	"sync"

	"github.com/roach88/slotreel/internal/machine"
)

// Recorder is a machine.Observer that appends every notification to an
// in-memory log.
//
// Render notifications are high volume (one per buffered slot per shift) and
// are dropped unless WithRenders is given.
type Recorder struct {
	mu      sync.Mutex
	clock   SeqSource
	tick    int64
	renders bool
	events  []Event
}

var _ machine.Observer = (*Recorder)(nil)

// RecorderOption configures a Recorder.
type RecorderOption func(*Recorder)

// WithClock stamps events from clock instead of a private Clock.
func WithClock(clock SeqSource) RecorderOption {
	return func(r *Recorder) {
		r.clock = clock
	}
}

// WithRenders keeps reel_render events.
func WithRenders() RecorderOption {
	return func(r *Recorder) {
		r.renders = true
	}
}

func NewRecorder(opts ...RecorderOption) *Recorder {
	r := &Recorder{clock: NewClock()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// SetTick sets the tick number stamped on subsequent events.
func (r *Recorder) SetTick(tick int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tick = tick
}

// Events returns a copy of the log.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Count returns how many events of kind were recorded.
func (r *Recorder) Count(kind Kind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Reset drops the log. The clock keeps counting.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

func (r *Recorder) record(kind Kind, reel, slot, cursor int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{
		Seq:    r.clock.Next(),
		Tick:   r.tick,
		Kind:   kind,
		Reel:   reel,
		Slot:   slot,
		Cursor: cursor,
	})
}

func (r *Recorder) SpinStarted() {
	r.record(KindSpinStarted, -1, 0, 0)
}

func (r *Recorder) SpinEnded() {
	r.record(KindSpinEnded, -1, 0, 0)
}

func (r *Recorder) ReelSpinStarted(reel int) {
	r.record(KindReelSpinStarted, reel, 0, 0)
}

func (r *Recorder) ReelStopped(reel int) {
	r.record(KindReelStopped, reel, 0, 0)
}

func (r *Recorder) ReelCursorChanged(reel, cursor int) {
	r.record(KindReelCursor, reel, 0, cursor)
}

func (r *Recorder) Shown() {
	r.record(KindShown, -1, 0, 0)
}

func (r *Recorder) Hidden() {
	r.record(KindHidden, -1, 0, 0)
}

func (r *Recorder) Refreshed() {
	r.record(KindRefreshed, -1, 0, 0)
}

func (r *Recorder) ReelRenderUpdated(reel, slot, cursor int) {
	if !r.renders {
		return
	}
	r.record(KindReelRender, reel, slot, cursor)
}
