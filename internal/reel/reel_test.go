package reel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/slotreel/internal/layout"
)

func TestInitialize_BuildsWindow(t *testing.T) {
	r, _ := newTestReel(t, 1)

	assert.Equal(t, 3, r.DisplayCount())
	assert.Equal(t, 7, r.RenderCount())
	assert.Equal(t, []int{-2, -1, 0, 1, 2, 3, 4}, r.Cursors())
	assert.Equal(t, 0, r.Cursor())
	assert.Equal(t, StateIdle, r.State())
	assert.Equal(t, -1, r.StopCountdown())
	assert.Equal(t, 1.0, r.InitSpeed())
	assert.Zero(t, r.MoveValue())
	assert.True(t, r.Visible())
}

func TestInitialize_Idempotent(t *testing.T) {
	r, _ := newTestReel(t, 1)
	before := r.Cursors()

	r.Initialize(5, layout.NewRect(10, 10, 2, 2), -4)

	assert.Equal(t, 3, r.DisplayCount())
	assert.Equal(t, 1.0, r.Speed())
	assert.Equal(t, 1.0, r.InitSpeed())
	assert.Equal(t, layout.NewRect(0, 0, 1, 3), r.Rect())
	assert.Equal(t, before, r.Cursors())
}

func TestInitialize_RejectsNonPositiveDisplayCount(t *testing.T) {
	r := New().Initialize(0, layout.NewRect(0, 0, 1, 1), 1)
	assert.False(t, r.Initialized())
	assert.Nil(t, r.Cursors())

	// Uninitialized reels ignore everything.
	r.Spin()
	r.Tick()
	assert.Equal(t, StateIdle, r.State())
	assert.Zero(t, r.Shifts())
}

func TestTick_IdleDoesNotMove(t *testing.T) {
	r, rec := newTestReel(t, 10)
	for i := 0; i < 20; i++ {
		r.Tick()
	}
	assert.Zero(t, r.Shifts())
	assert.Zero(t, r.MoveValue())
	assert.Empty(t, rec.events)
}

func TestTick_ShiftForwardAdvancesCursor(t *testing.T) {
	r, _ := newTestReel(t, 10)
	r.Spin()

	for i := 1; i <= 12; i++ {
		r.Tick()
		assert.Equal(t, i, r.Cursor())
		requireConsecutive(t, r.Cursors(), 0, r.RenderCount())
	}
	assert.Equal(t, int64(12), r.Shifts())
	assert.Equal(t, DirectionDown, r.Direction())
}

func TestTick_ShiftBackwardRetreatsCursor(t *testing.T) {
	r, _ := newTestReel(t, -10)
	r.Spin()

	for i := 1; i <= 12; i++ {
		r.Tick()
		assert.Equal(t, -i, r.Cursor())
		requireConsecutive(t, r.Cursors(), 0, r.RenderCount())
	}
	assert.Equal(t, DirectionUp, r.Direction())
}

func TestTick_FractionalTravelAccumulates(t *testing.T) {
	r, _ := newTestReel(t, 1)
	r.Spin()

	for i := 0; i < 5; i++ {
		r.Tick()
	}
	assert.Zero(t, r.Shifts())
	assert.InDelta(t, 0.5, r.MoveValue(), 1e-9)

	for i := 0; i < 20 && r.Shifts() == 0; i++ {
		r.Tick()
	}
	assert.Equal(t, int64(1), r.Shifts())
	assert.Equal(t, 1, r.Cursor())
	assert.Less(t, r.MoveValue(), 1.0)
}

func TestTick_MultipleShiftsPerTick(t *testing.T) {
	r, rec := newTestReel(t, 25)
	r.Spin()
	rec.reset()

	r.Tick()
	assert.Equal(t, int64(2), r.Shifts())
	assert.Equal(t, 2, r.Cursor())
	assert.InDelta(t, 0.5, r.MoveValue(), 1e-9)
	assert.Equal(t, 2, rec.count("cursor "))
}

func TestStop_DownLandsExactly(t *testing.T) {
	r, _ := newTestReel(t, 10)
	r.Spin()
	for i := 0; i < 3; i++ {
		r.Tick()
	}

	r.Stop(2, 10)
	assert.Equal(t, StateStopping, r.State())
	assert.Equal(t, 7, r.StopCountdown())

	shifts := tickUntilIdle(t, r, 100)
	assert.Equal(t, int64(3+Extra+2), shifts)
	assert.Equal(t, 10, r.Cursor())
	assert.Equal(t, StateIdle, r.State())
	assert.Zero(t, r.MoveValue())
	requireConsecutive(t, r.Cursors(), 0, r.RenderCount())
}

func TestStop_UpLandsExactly(t *testing.T) {
	r, _ := newTestReel(t, -10)
	r.Spin()
	for i := 0; i < 3; i++ {
		r.Tick()
	}

	r.Stop(2, 10)
	assert.Equal(t, 5, r.StopCountdown())

	shifts := tickUntilIdle(t, r, 100)
	assert.Equal(t, int64(Extra+1+2), shifts)
	assert.Equal(t, 10, r.Cursor())
	// Visible slots are consecutive once the reel rests.
	requireConsecutive(t, r.Cursors(), Extra, Extra+r.DisplayCount())
}

func TestStop_LandsWithSeveralShiftsPerTick(t *testing.T) {
	for _, speed := range []float64{20, -20, 30, -30} {
		r, _ := newTestReel(t, speed)
		r.Spin()
		r.Tick()

		r.StopAt(42)
		tickUntilIdle(t, r, 100)
		assert.Equal(t, 42, r.Cursor(), "speed %v", speed)
		assert.Zero(t, r.MoveValue(), "leftover travel is discarded on stop")
	}
}

func TestStop_LandsFromEveryPhase(t *testing.T) {
	// The stop must land regardless of where the accumulator sits when the
	// stop is requested.
	for warmup := 0; warmup < 15; warmup++ {
		r, _ := newTestReel(t, 3)
		r.Spin()
		for i := 0; i < warmup; i++ {
			r.Tick()
		}
		r.StopAt(-7)
		tickUntilIdle(t, r, 500)
		assert.Equal(t, -7, r.Cursor(), "warmup %d", warmup)
	}
}

func TestStopAt_UsesDefaultLead(t *testing.T) {
	r, _ := newTestReel(t, 10)
	r.Spin()
	r.StopAt(3)
	assert.Equal(t, 3+Extra+Extra, r.StopCountdown())
}

func TestStopInstant_CoastsWithoutRetarget(t *testing.T) {
	r, _ := newTestReel(t, 10)
	r.Spin()
	r.Tick()
	start := r.Cursor()

	r.StopInstant(3)
	shifts := tickUntilIdle(t, r, 100)
	assert.Equal(t, int64(3), shifts)
	assert.Equal(t, start+3, r.Cursor())
}

func TestStopInstant_ZeroIdlesOnNextShift(t *testing.T) {
	r, _ := newTestReel(t, 10)
	r.Spin()
	r.StopInstant(0)
	assert.Equal(t, StateStopping, r.State())

	r.Tick()
	assert.Equal(t, StateIdle, r.State())
	assert.Equal(t, 1, r.Cursor())
}

func TestStopInstant_NegativeIgnored(t *testing.T) {
	r, _ := newTestReel(t, 10)
	r.Spin()
	r.StopInstant(-1)
	assert.Equal(t, StateMoving, r.State())
	assert.Equal(t, -1, r.StopCountdown())
}

func TestSpin_IgnoredWhileMoving(t *testing.T) {
	r, rec := newTestReel(t, 10)
	r.Spin()
	r.Tick()
	rec.reset()

	state, countdown, cursors, move := r.State(), r.StopCountdown(), r.Cursors(), r.MoveValue()
	r.Spin()

	assert.Equal(t, state, r.State())
	assert.Equal(t, countdown, r.StopCountdown())
	assert.Equal(t, cursors, r.Cursors())
	assert.Equal(t, move, r.MoveValue())
	assert.Empty(t, rec.events)
}

func TestSpin_IgnoredWhileStopping(t *testing.T) {
	r, _ := newTestReel(t, 10)
	r.Spin()
	r.StopInstant(4)
	r.Spin()
	assert.Equal(t, StateStopping, r.State())
	assert.Equal(t, 4, r.StopCountdown())
}

func TestStop_IgnoredWhileIdle(t *testing.T) {
	r, rec := newTestReel(t, 10)
	cursors := r.Cursors()

	r.Stop(2, 10)
	r.StopInstant(1)

	assert.Equal(t, StateIdle, r.State())
	assert.Equal(t, -1, r.StopCountdown())
	assert.Equal(t, cursors, r.Cursors())

	// The ignored stop must not leave a cursor request behind.
	r.Spin()
	r.Tick()
	requireConsecutive(t, r.Cursors(), 0, r.RenderCount())
	assert.Equal(t, 1, rec.count("spin_started"))
}

func TestStop_IgnoredWhileStopping(t *testing.T) {
	r, _ := newTestReel(t, 10)
	r.Spin()
	r.Stop(2, 10)
	r.Stop(0, 99)
	r.StopInstant(0)
	assert.Equal(t, 7, r.StopCountdown())

	tickUntilIdle(t, r, 100)
	assert.Equal(t, 10, r.Cursor())
}

func TestSpin_AfterStopRestarts(t *testing.T) {
	r, rec := newTestReel(t, 10)
	r.Spin()
	r.StopAt(5)
	tickUntilIdle(t, r, 100)

	r.Spin()
	assert.Equal(t, StateMoving, r.State())
	assert.Equal(t, -1, r.StopCountdown())
	r.Tick()
	assert.Equal(t, 6, r.Cursor())
	assert.Equal(t, 2, rec.count("spin_started"))
	assert.Equal(t, 1, rec.count("stopped"))
}

func TestEvents_SpinRefreshesBeforeStarting(t *testing.T) {
	r, rec := newTestReel(t, 10)
	r.Spin()

	require.Len(t, rec.events, r.RenderCount()+1)
	assert.Equal(t, "render -2=-2", rec.events[0])
	assert.Equal(t, "render 4=4", rec.events[r.RenderCount()-1])
	assert.Equal(t, "spin_started", rec.events[r.RenderCount()])
}

func TestEvents_StopShiftOrder(t *testing.T) {
	r, rec := newTestReel(t, 10)
	r.Spin()
	r.StopInstant(0)
	rec.reset()

	r.Tick()

	require.Len(t, rec.events, 1+r.RenderCount()+1)
	assert.Equal(t, "stopped", rec.events[0])
	assert.Equal(t, "render -2=-1", rec.events[1])
	assert.Equal(t, "cursor 1", rec.events[len(rec.events)-1])
}

func TestEvents_StoppedExactlyOnce(t *testing.T) {
	r, rec := newTestReel(t, 10)
	r.Spin()
	r.StopAt(0)
	tickUntilIdle(t, r, 100)
	for i := 0; i < 10; i++ {
		r.Tick()
	}
	assert.Equal(t, 1, rec.count("stopped"))
}

func TestSetAllCursors(t *testing.T) {
	r, rec := newTestReel(t, 1)
	r.SetAllCursors(7)
	assert.Equal(t, []int{5, 6, 7, 8, 9, 10, 11}, r.Cursors())
	assert.Equal(t, 7, r.Cursor())
	assert.Empty(t, rec.events)
}

func TestCursorAt(t *testing.T) {
	r, _ := newTestReel(t, 1)
	r.SetAllCursors(20)

	tests := []struct {
		order int
		want  int
		ok    bool
	}{
		{-2, 18, true},
		{0, 20, true},
		{2, 22, true},
		{4, 24, true},
		{-3, 0, false},
		{5, 0, false},
	}
	for _, tt := range tests {
		got, ok := r.CursorAt(tt.order)
		assert.Equal(t, tt.ok, ok, "order %d", tt.order)
		assert.Equal(t, tt.want, got, "order %d", tt.order)
	}
}

func TestPositions(t *testing.T) {
	r, _ := newTestReel(t, 5)

	assert.Equal(t, layout.Vec2{X: 0.5, Y: 0.5}, r.SlotPosition(0))
	assert.Equal(t, layout.Vec2{X: 0.5, Y: 2.5}, r.SlotPosition(2))
	assert.Equal(t, layout.Vec2{X: 0.5, Y: -1.5}, r.SlotPosition(-2))
	assert.Equal(t, r.SlotPosition(1), r.RenderPosition(1), "idle reels render at rest")

	r.Spin()
	r.Tick()
	pos := r.RenderPosition(0)
	assert.InDelta(t, 0.5, pos.X, 1e-9)
	assert.InDelta(t, 0.0, pos.Y, 1e-9)
}

func TestShowHide(t *testing.T) {
	r, rec := newTestReel(t, 1)
	r.Hide()
	assert.False(t, r.Visible())
	r.Show()
	assert.True(t, r.Visible())
	assert.Equal(t, []string{"hidden", "shown"}, rec.events)
}

func TestSpeedControls(t *testing.T) {
	r, _ := newTestReel(t, 10)
	r.SetSpeed(-10)
	assert.Equal(t, DirectionUp, r.Direction())

	r.Spin()
	r.Tick()
	assert.Equal(t, -1, r.Cursor())

	r.ResetSpeed()
	assert.Equal(t, 10.0, r.Speed())
	r.Tick()
	assert.Equal(t, 0, r.Cursor())
}

func TestSetCursorRequest_AppliesOnNextShiftOnly(t *testing.T) {
	r, _ := newTestReel(t, 10)
	r.Spin()
	r.SetCursorRequest(0, 100)

	r.Tick()
	cursors := r.Cursors()
	assert.Equal(t, 100, cursors[len(cursors)-1])

	r.Tick()
	cursors = r.Cursors()
	assert.Equal(t, 101, cursors[len(cursors)-1])
	assert.Equal(t, StateMoving, r.State())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", StateIdle.String())
	assert.Equal(t, "moving", StateMoving.String())
	assert.Equal(t, "stopping", StateStopping.String())
	assert.Equal(t, "unknown", State(9).String())
	assert.Equal(t, "down", DirectionDown.String())
	assert.Equal(t, "up", DirectionUp.String())
}
