package reel

import (
	"log/slog"

	"github.com/roach88/slotreel/internal/layout"
)

const (
	// Extra is the number of off-screen slots buffered on each side of the
	// visible area.
	Extra = 2

	// TickScale converts speed into move units per Tick.
	TickScale = 0.1
)

// State is the reel's motion state.
type State int

const (
	StateIdle State = iota
	StateMoving
	StateStopping
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateStopping:
		return "stopping"
	default:
		return "unknown"
	}
}

// Direction is the scroll direction, derived from the sign of the speed.
type Direction int

const (
	// DirectionDown scrolls content downward; shifts are forward (+1).
	DirectionDown Direction = iota
	// DirectionUp scrolls content upward; shifts are backward (-1).
	DirectionUp
)

func (d Direction) String() string {
	if d == DirectionUp {
		return "up"
	}
	return "down"
}

// Reel is one column of a slot machine.
//
// The zero value is not usable; create reels with New and Initialize.
type Reel struct {
	initialized  bool
	displayCount int
	rect         layout.Rect
	distanceY    float64

	window    *window
	moveValue float64
	speed     float64
	initSpeed float64

	state         State
	stopCountdown int // -1: free spin
	request       pendingRequest
	shifts        int64
	visible       bool

	observers []Observer
}

// New returns an uninitialized reel. Call Initialize before use.
func New() *Reel {
	return &Reel{
		stopCountdown: -1,
		visible:       true,
	}
}

// Initialize sets the reel up with displayCount visible slots laid out
// inside rect and the given speed. The window starts at cursor -Extra.
//
// Initialize runs once. Later calls, and calls with displayCount < 1, leave
// the reel unchanged.
func (r *Reel) Initialize(displayCount int, rect layout.Rect, speed float64) *Reel {
	if r.initialized {
		slog.Debug("reel already initialized, ignoring")
		return r
	}
	if displayCount < 1 {
		slog.Debug("reel initialize ignored: display count must be positive", "display_count", displayCount)
		return r
	}
	r.initialized = true
	r.displayCount = displayCount
	r.rect = rect
	r.distanceY = rect.Size.Y / float64(displayCount)
	r.speed = speed
	r.initSpeed = speed
	r.moveValue = 0
	r.state = StateIdle
	r.window = newWindow(displayCount+2*Extra, -Extra)
	return r
}

// Subscribe registers an observer. Observers are notified in registration order.
func (r *Reel) Subscribe(o Observer) {
	if o == nil {
		return
	}
	r.observers = append(r.observers, o)
}

// Tick advances the reel by one step.
//
// While the reel is not idle the move value grows by speed*TickScale. Every
// whole unit of overflow shifts the window by one cursor, and each shift
// applies a pending cursor request, counts down a pending stop, and notifies
// observers. A stop that completes discards the rest of the tick's travel.
func (r *Reel) Tick() {
	if !r.initialized {
		return
	}
	if r.state != StateIdle {
		r.moveValue += r.speed * TickScale
	}
	for r.moveValue >= 1 {
		r.moveValue -= 1
		r.window.shiftForward()
		r.afterShift(DirectionDown)
	}
	for r.moveValue <= -1 {
		r.moveValue += 1
		r.window.shiftBackward()
		r.afterShift(DirectionUp)
	}
}

func (r *Reel) afterShift(dir Direction) {
	r.shifts++

	if req, ok := r.request.take(); ok {
		if dir == DirectionDown {
			r.window.set(r.window.len()-1, req.cursor-req.waitCount)
		} else {
			r.window.set(0, req.cursor+req.waitCount)
		}
	}

	if r.stopCountdown > 0 {
		r.stopCountdown--
	}
	if r.stopCountdown == 0 {
		r.moveValue = 0
		r.state = StateIdle
		r.stopCountdown = -1
		slog.Debug("reel stopped", "cursor", r.Cursor(), "shifts", r.shifts)
		for _, o := range r.observers {
			o.Stopped()
		}
	}

	r.RefreshAll()
	cursor := r.Cursor()
	for _, o := range r.observers {
		o.CursorChanged(cursor)
	}
}

// Spin starts an idle reel. It refreshes every slot, clears any stop
// countdown and notifies SpinStarted. Ignored unless the reel is idle.
func (r *Reel) Spin() {
	if !r.initialized || r.state != StateIdle {
		slog.Debug("spin ignored", "state", r.state)
		return
	}
	r.RefreshAll()
	r.state = StateMoving
	r.stopCountdown = -1
	for _, o := range r.observers {
		o.SpinStarted()
	}
}

// Stop schedules a stop that lands on cursor after waitCount shifts of lead
// time. The number of shifts until the reel idles depends on the direction:
//
//	Down: DisplayCount + Extra + waitCount
//	Up:   Extra + 1 + waitCount
//
// Ignored unless the reel is moving, or when the resulting countdown would be
// negative.
func (r *Reel) Stop(waitCount, cursor int) {
	if !r.initialized || r.state != StateMoving {
		slog.Debug("stop ignored", "state", r.state)
		return
	}
	var remaining int
	if r.Direction() == DirectionDown {
		remaining = r.displayCount + Extra + waitCount
	} else {
		remaining = Extra + 1 + waitCount
	}
	if remaining < 0 {
		slog.Debug("stop ignored: negative countdown", "wait_count", waitCount)
		return
	}
	r.SetCursorRequest(waitCount, cursor)
	r.StopInstant(remaining)
}

// StopAt stops on cursor with the default lead time of Extra shifts.
func (r *Reel) StopAt(cursor int) {
	r.Stop(Extra, cursor)
}

// StopInstant lets the reel coast for waitCount more shifts and then idle,
// without retargeting its content. StopInstant(0) idles on the next shift.
// Ignored unless the reel is moving or when waitCount is negative.
func (r *Reel) StopInstant(waitCount int) {
	if !r.initialized || r.state != StateMoving || waitCount < 0 {
		slog.Debug("stop instant ignored", "state", r.state, "wait_count", waitCount)
		return
	}
	r.state = StateStopping
	r.stopCountdown = waitCount
}

// SetCursorRequest installs a one-shot cursor request applied on the next
// shift. A newer request replaces an unapplied one.
func (r *Reel) SetCursorRequest(waitCount, cursor int) {
	r.request.set(waitCount, cursor)
}

// SetAllCursors positions the window so that the canonical cursor is value.
// Meant for positioning before the first render; it does not notify.
func (r *Reel) SetAllCursors(value int) {
	if !r.initialized {
		return
	}
	r.window.fill(value - Extra)
}

// RefreshAll notifies RenderUpdated for every slot, top buffer included.
func (r *Reel) RefreshAll() {
	if !r.initialized {
		return
	}
	for i := 0; i < r.window.len(); i++ {
		cursor := r.window.at(i)
		for _, o := range r.observers {
			o.RenderUpdated(i-Extra, cursor)
		}
	}
}

// Show marks the reel visible and notifies Shown.
func (r *Reel) Show() {
	r.visible = true
	for _, o := range r.observers {
		o.Shown()
	}
}

// Hide marks the reel hidden and notifies Hidden.
func (r *Reel) Hide() {
	r.visible = false
	for _, o := range r.observers {
		o.Hidden()
	}
}

// SetSpeed changes the velocity. The sign picks the direction.
func (r *Reel) SetSpeed(speed float64) {
	r.speed = speed
}

// ResetSpeed restores the speed given to Initialize.
func (r *Reel) ResetSpeed() {
	r.speed = r.initSpeed
}

func (r *Reel) Initialized() bool  { return r.initialized }
func (r *Reel) State() State       { return r.state }
func (r *Reel) IsReady() bool      { return r.state == StateIdle }
func (r *Reel) IsMoving() bool     { return r.state == StateMoving || r.state == StateStopping }
func (r *Reel) Speed() float64     { return r.speed }
func (r *Reel) InitSpeed() float64 { return r.initSpeed }
func (r *Reel) MoveValue() float64 { return r.moveValue }
func (r *Reel) DisplayCount() int  { return r.displayCount }
func (r *Reel) Visible() bool      { return r.visible }
func (r *Reel) Rect() layout.Rect  { return r.rect }

// Shifts returns the number of shifts since initialization.
func (r *Reel) Shifts() int64 { return r.shifts }

// StopCountdown returns the shifts left before a pending stop completes, or
// -1 when no stop is scheduled.
func (r *Reel) StopCountdown() int { return r.stopCountdown }

// RenderCount is the number of slots kept in the window, buffers included.
func (r *Reel) RenderCount() int {
	return r.displayCount + 2*Extra
}

// Direction reports Down for speed >= 0 and Up otherwise.
func (r *Reel) Direction() Direction {
	if r.speed >= 0 {
		return DirectionDown
	}
	return DirectionUp
}

// Cursor returns the canonical cursor, the value in the first visible slot.
func (r *Reel) Cursor() int {
	if !r.initialized {
		return 0
	}
	return r.window.at(Extra)
}

// CursorAt returns the cursor at a slot order in [-Extra, DisplayCount+Extra).
func (r *Reel) CursorAt(order int) (int, bool) {
	if !r.validOrder(order) {
		return 0, false
	}
	return r.window.at(order + Extra), true
}

// Cursors returns a copy of the whole window, head first.
func (r *Reel) Cursors() []int {
	if !r.initialized {
		return nil
	}
	return r.window.values()
}

// SlotPosition returns the resting center of a slot. Slot 0 is the bottom
// visible row.
func (r *Reel) SlotPosition(order int) layout.Vec2 {
	return layout.Vec2{
		X: r.rect.Min.X + r.rect.Size.X*0.5,
		Y: r.rect.Min.Y + (float64(order)+0.5)*r.distanceY,
	}
}

// RenderPosition returns where a slot is drawn right now: its resting
// position offset by the fractional travel of the current move value.
func (r *Reel) RenderPosition(order int) layout.Vec2 {
	return r.SlotPosition(order).Sub(layout.Vec2{Y: r.distanceY * r.moveValue})
}

func (r *Reel) validOrder(order int) bool {
	return r.initialized && order >= -Extra && order < r.displayCount+Extra
}
