package trace

import "sync/atomic"

// SeqSource hands out strictly increasing sequence numbers.
type SeqSource interface {
	Next() int64
}

// Clock is a monotonic logical clock. The first Next returns 1.
type Clock struct {
	seq atomic.Int64
}

func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt returns a clock whose next value is start+1.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

func (c *Clock) Current() int64 {
	return c.seq.Load()
}
