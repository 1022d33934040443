package machine

import (
	"log/slog"

	"github.com/roach88/slotreel/internal/layout"
	"github.com/roach88/slotreel/internal/reel"
)

// Machine is an ordered set of reels laid out side by side.
type Machine struct {
	initialized bool
	gridSize    layout.GridSize
	rect        layout.Rect
	cellSize    layout.Vec2
	reels       []*reel.Reel
	observers   []Observer
}

// Option configures a Machine.
type Option func(*Machine)

// WithObserver registers an observer at construction time.
func WithObserver(o Observer) Option {
	return func(m *Machine) {
		m.Subscribe(o)
	}
}

// New returns an uninitialized machine. Call Initialize before use.
func New(opts ...Option) *Machine {
	m := &Machine{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create builds and initializes a machine from center/extents bounds.
func Create(gridSize layout.GridSize, speed float64, bounds layout.Bounds, opts ...Option) *Machine {
	return New(opts...).InitializeBounds(gridSize, speed, bounds)
}

// Subscribe registers an observer. Observers are notified in registration order.
func (m *Machine) Subscribe(o Observer) {
	if o == nil {
		return
	}
	m.observers = append(m.observers, o)
}

// Initialize splits rect into gridSize.Columns vertical strips and creates
// one reel per strip with gridSize.Rows visible slots, all at speed.
//
// Initialize runs once. Later calls, and calls with a non-positive grid
// size, leave the machine unchanged.
func (m *Machine) Initialize(gridSize layout.GridSize, speed float64, rect layout.Rect) *Machine {
	if m.initialized {
		slog.Debug("machine already initialized, ignoring")
		return m
	}
	if !gridSize.Valid() {
		slog.Debug("machine initialize ignored: invalid grid size",
			"columns", gridSize.Columns,
			"rows", gridSize.Rows,
		)
		return m
	}
	m.initialized = true
	m.gridSize = gridSize
	m.rect = rect
	m.cellSize = rect.Size.InverseScale(gridSize.Vec2())

	strips := rect.Columns(gridSize.Columns)
	m.reels = make([]*reel.Reel, gridSize.Columns)
	for i, strip := range strips {
		r := reel.New().Initialize(gridSize.Rows, strip, speed)
		r.Subscribe(reelRelay{m: m, index: i})
		m.reels[i] = r
	}

	slog.Debug("machine initialized",
		"columns", gridSize.Columns,
		"rows", gridSize.Rows,
		"speed", speed,
	)
	return m
}

// InitializeBounds is Initialize for center/extents bounds.
func (m *Machine) InitializeBounds(gridSize layout.GridSize, speed float64, bounds layout.Bounds) *Machine {
	return m.Initialize(gridSize, speed, bounds.Rect())
}

// Tick advances every reel by one step, in column order.
func (m *Machine) Tick() {
	for _, r := range m.reels {
		r.Tick()
	}
}

// SpinAll starts every reel and then notifies SpinStarted once.
// Ignored unless every reel is idle.
func (m *Machine) SpinAll() {
	if !m.initialized || !m.AllIdle() {
		slog.Debug("spin all ignored: machine not ready")
		return
	}
	for _, r := range m.reels {
		r.Spin()
	}
	for _, o := range m.observers {
		o.SpinStarted()
	}
}

// StopAll stops reel i on cursors[i] with the default lead time.
//
// Ignored when every reel is already idle or when len(cursors) differs from
// the reel count. Reels that are not moving, or already stopping, ignore
// their own stop; the rest still stop.
func (m *Machine) StopAll(cursors []int) {
	if !m.initialized || m.AllIdle() {
		slog.Debug("stop all ignored: no reel is moving")
		return
	}
	if len(cursors) != len(m.reels) {
		slog.Debug("stop all ignored: cursor count mismatch",
			"cursors", len(cursors),
			"reels", len(m.reels),
		)
		return
	}
	for i, r := range m.reels {
		r.StopAt(cursors[i])
	}
}

// Spin starts a single reel.
func (m *Machine) Spin(index int) {
	if r := m.Reel(index); r != nil {
		r.Spin()
	}
}

// Stop stops a single reel on cursor after waitCount shifts of lead time.
func (m *Machine) Stop(index, waitCount, cursor int) {
	if r := m.Reel(index); r != nil {
		r.Stop(waitCount, cursor)
	}
}

// StopAt stops a single reel on cursor with the default lead time.
func (m *Machine) StopAt(index, cursor int) {
	if r := m.Reel(index); r != nil {
		r.StopAt(cursor)
	}
}

// StopInstant lets a single reel coast waitCount shifts and idle.
func (m *Machine) StopInstant(index, waitCount int) {
	if r := m.Reel(index); r != nil {
		r.StopInstant(waitCount)
	}
}

// SetAllCursors positions a single reel so its canonical cursor is value.
func (m *Machine) SetAllCursors(index, value int) {
	if r := m.Reel(index); r != nil {
		r.SetAllCursors(value)
	}
}

// RefreshAll refreshes every reel and then notifies Refreshed once.
func (m *Machine) RefreshAll() {
	for _, r := range m.reels {
		r.RefreshAll()
	}
	for _, o := range m.observers {
		o.Refreshed()
	}
}

// ShowAll shows every reel and then notifies Shown once.
func (m *Machine) ShowAll() {
	for _, r := range m.reels {
		r.Show()
	}
	for _, o := range m.observers {
		o.Shown()
	}
}

// HideAll hides every reel and then notifies Hidden once.
func (m *Machine) HideAll() {
	for _, r := range m.reels {
		r.Hide()
	}
	for _, o := range m.observers {
		o.Hidden()
	}
}

func (m *Machine) spinEnded() {
	slog.Debug("spin ended")
	for _, o := range m.observers {
		o.SpinEnded()
	}
}

// AllIdle reports whether every reel is idle.
func (m *Machine) AllIdle() bool {
	for _, r := range m.reels {
		if !r.IsReady() {
			return false
		}
	}
	return true
}

// IsSpinReady reports whether SpinAll would be accepted.
func (m *Machine) IsSpinReady() bool {
	return m.initialized && m.AllIdle()
}

// IsStopReady reports whether StopAll would be accepted.
func (m *Machine) IsStopReady() bool {
	return m.initialized && !m.AllIdle()
}

func (m *Machine) Initialized() bool         { return m.initialized }
func (m *Machine) GridSize() layout.GridSize { return m.gridSize }
func (m *Machine) Rect() layout.Rect         { return m.rect }
func (m *Machine) ReelCount() int            { return len(m.reels) }

// Reel returns the reel at index, or nil when out of range.
func (m *Machine) Reel(index int) *reel.Reel {
	if index < 0 || index >= len(m.reels) {
		return nil
	}
	return m.reels[index]
}

// Cursor returns the cursor in a reel's slot (see reel.CursorAt).
func (m *Machine) Cursor(index, slot int) (int, bool) {
	r := m.Reel(index)
	if r == nil {
		return 0, false
	}
	return r.CursorAt(slot)
}

// VisibleCursors returns each reel's visible cursors, column-major, bottom
// row first.
func (m *Machine) VisibleCursors() [][]int {
	out := make([][]int, len(m.reels))
	for i, r := range m.reels {
		col := make([]int, m.gridSize.Rows)
		for row := range col {
			col[row], _ = r.CursorAt(row)
		}
		out[i] = col
	}
	return out
}

// CellPosition returns the center of grid cell (col, row), from the
// bottom-left of the machine.
func (m *Machine) CellPosition(col, row int) layout.Vec2 {
	first := m.rect.Min.Add(m.cellSize.Scale(layout.Vec2{X: 0.5, Y: 0.5}))
	return first.Add(m.cellSize.Scale(layout.Vec2{X: float64(col), Y: float64(row)}))
}

// RenderPosition returns where a reel's slot is drawn right now.
func (m *Machine) RenderPosition(index, slot int) (layout.Vec2, bool) {
	r := m.Reel(index)
	if r == nil {
		return layout.Vec2{}, false
	}
	if _, ok := r.CursorAt(slot); !ok {
		return layout.Vec2{}, false
	}
	return r.RenderPosition(slot), true
}
