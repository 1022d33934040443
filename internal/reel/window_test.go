package reel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow_NewIsConsecutive(t *testing.T) {
	w := newWindow(7, -2)
	assert.Equal(t, []int{-2, -1, 0, 1, 2, 3, 4}, w.values())
	assert.Equal(t, 7, w.len())
}

func TestWindow_ShiftsMatchSliceModel(t *testing.T) {
	w := newWindow(5, 0)
	model := []int{0, 1, 2, 3, 4}

	forward := func() {
		model = append(model[1:], model[len(model)-1]+1)
		w.shiftForward()
	}
	backward := func() {
		model = append([]int{model[0] - 1}, model[:len(model)-1]...)
		w.shiftBackward()
	}

	ops := []func(){forward, forward, forward, backward, forward, backward, backward, backward, backward, backward, forward}
	for i, op := range ops {
		op()
		assert.Equal(t, model, w.values(), "after op %d", i)
	}
}

func TestWindow_SetAfterWrap(t *testing.T) {
	w := newWindow(4, 0)
	for i := 0; i < 6; i++ {
		w.shiftForward()
	}
	assert.Equal(t, []int{6, 7, 8, 9}, w.values())

	w.set(3, 100)
	assert.Equal(t, []int{6, 7, 8, 100}, w.values())

	w.shiftForward()
	assert.Equal(t, []int{7, 8, 100, 101}, w.values())
}

func TestWindow_FillResetsHead(t *testing.T) {
	w := newWindow(3, 0)
	w.shiftForward()
	w.shiftForward()
	w.fill(10)
	assert.Equal(t, []int{10, 11, 12}, w.values())
	assert.Equal(t, 0, w.head)
}

func TestPendingRequest_TakeOnce(t *testing.T) {
	var p pendingRequest
	_, ok := p.take()
	assert.False(t, ok)

	p.set(2, 10)
	req, ok := p.take()
	assert.True(t, ok)
	assert.Equal(t, cursorRequest{waitCount: 2, cursor: 10}, req)

	_, ok = p.take()
	assert.False(t, ok, "request must be consumed exactly once")
}
