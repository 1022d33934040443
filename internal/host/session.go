package host

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/slotreel/internal/config"
	"github.com/roach88/slotreel/internal/machine"
	"github.com/roach88/slotreel/internal/symbols"
	"github.com/roach88/slotreel/internal/trace"
)

// DefaultMaxTicks bounds RunUntilIdle when no limit is configured.
const DefaultMaxTicks = 10000

// Session runs one configured machine.
type Session struct {
	cfg      *config.Config
	machine  *machine.Machine
	symbols  *symbols.Table
	recorder *trace.Recorder
	runGen   RunTokenGenerator

	observers []machine.Observer

	runToken string
	tick     int64
	maxTicks int
	pending  []scheduledStop
}

type scheduledStop struct {
	due    int64
	reel   int
	cursor int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRunTokenGenerator replaces the UUIDv7 run token generator.
func WithRunTokenGenerator(g RunTokenGenerator) SessionOption {
	return func(s *Session) {
		s.runGen = g
	}
}

// WithRecorder attaches a trace recorder. The session keeps its tick stamp
// current.
func WithRecorder(r *trace.Recorder) SessionOption {
	return func(s *Session) {
		s.recorder = r
	}
}

// WithMaxTicks sets the RunUntilIdle limit. Default: DefaultMaxTicks.
func WithMaxTicks(n int) SessionOption {
	return func(s *Session) {
		s.maxTicks = n
	}
}

// WithObserver subscribes o to the machine, after the recorder.
func WithObserver(o machine.Observer) SessionOption {
	return func(s *Session) {
		s.observers = append(s.observers, o)
	}
}

// NewSession builds and initializes the machine described by cfg.
func NewSession(cfg *config.Config, opts ...SessionOption) (*Session, error) {
	table, err := symbols.New(cfg.SymbolStrip())
	if err != nil {
		return nil, fmt.Errorf("build symbol table: %w", err)
	}

	s := &Session{
		cfg:      cfg,
		symbols:  table,
		runGen:   UUIDv7Generator{},
		maxTicks: DefaultMaxTicks,
	}
	for _, opt := range opts {
		opt(s)
	}

	m := machine.New()
	if s.recorder != nil {
		m.Subscribe(s.recorder)
	}
	for _, o := range s.observers {
		m.Subscribe(o)
	}
	m.Initialize(cfg.GridSize(), cfg.Speed, cfg.Rect())
	if !m.Initialized() {
		return nil, fmt.Errorf("invalid grid %dx%d", cfg.Columns, cfg.Rows)
	}
	s.machine = m

	slog.Debug("session created",
		"columns", cfg.Columns,
		"rows", cfg.Rows,
		"speed", cfg.Speed,
		"symbols", table.Len(),
	)
	return s, nil
}

func (s *Session) Machine() *machine.Machine { return s.machine }
func (s *Session) Symbols() *symbols.Table   { return s.symbols }
func (s *Session) RunToken() string          { return s.runToken }

// Tick returns the number of ticks stepped so far.
func (s *Session) Tick() int64 { return s.tick }

// Idle reports whether every reel is idle and no staggered stop is pending.
func (s *Session) Idle() bool {
	return s.machine.AllIdle() && len(s.pending) == 0
}

// Spin starts every reel under a fresh run token.
func (s *Session) Spin() error {
	if !s.machine.IsSpinReady() {
		return newNotReadyError(s.runToken, "spin")
	}
	s.runToken = s.runGen.Generate()
	s.machine.SpinAll()
	slog.Info("spin started", "run", s.runToken, "tick", s.tick)
	return nil
}

// StopAll stops reel i on cursors[i] with the default lead time.
func (s *Session) StopAll(cursors []int) error {
	return s.StopStaggered(cursors, 0)
}

// StopStaggered stops reel i on cursors[i], issuing each reel's stop gap
// ticks after the previous reel's. A gap of 0 stops every reel at once.
func (s *Session) StopStaggered(cursors []int, gap int) error {
	if len(cursors) != s.machine.ReelCount() {
		return newCursorCountError(s.runToken, len(cursors), s.machine.ReelCount())
	}
	if !s.machine.IsStopReady() || len(s.pending) > 0 {
		return newNotReadyError(s.runToken, "stop")
	}
	if gap < 0 {
		gap = 0
	}

	if gap == 0 {
		s.machine.StopAll(cursors)
	} else {
		for i, c := range cursors {
			s.pending = append(s.pending, scheduledStop{
				due:    s.tick + int64(i*gap),
				reel:   i,
				cursor: c,
			})
		}
		s.issueDueStops()
	}
	slog.Info("stop requested", "run", s.runToken, "tick", s.tick, "cursors", cursors, "gap", gap)
	return nil
}

func (s *Session) issueDueStops() {
	kept := s.pending[:0]
	for _, st := range s.pending {
		if st.due <= s.tick {
			s.machine.StopAt(st.reel, st.cursor)
			continue
		}
		kept = append(kept, st)
	}
	s.pending = kept
}

// Step issues any staggered stops that are due and advances the machine by
// one tick.
func (s *Session) Step() {
	s.issueDueStops()
	s.tick++
	if s.recorder != nil {
		s.recorder.SetTick(s.tick)
	}
	s.machine.Tick()
}

// RunUntilIdle steps until the session is idle and returns the number of
// ticks it stepped. It fails with a tick limit error after the configured
// maximum, and returns ctx.Err() if ctx is cancelled first.
func (s *Session) RunUntilIdle(ctx context.Context) (int, error) {
	return s.RunUntilIdleWithin(ctx, s.maxTicks)
}

// RunUntilIdleWithin is RunUntilIdle with an explicit tick limit.
func (s *Session) RunUntilIdleWithin(ctx context.Context, maxTicks int) (int, error) {
	steps := 0
	for !s.Idle() {
		if err := ctx.Err(); err != nil {
			return steps, err
		}
		if steps >= maxTicks {
			slog.Warn("tick limit reached", "run", s.runToken, "max_ticks", maxTicks)
			return steps, newTickLimitError(s.runToken, maxTicks)
		}
		s.Step()
		steps++
	}
	slog.Info("spin settled", "run", s.runToken, "tick", s.tick, "steps", steps)
	return steps, nil
}

// Board returns the visible symbols as screen rows, top row first, each row
// left to right.
func (s *Session) Board() [][]string {
	cols := s.machine.VisibleCursors()
	rows := s.cfg.Rows
	board := make([][]string, rows)
	for r := range board {
		board[r] = make([]string, len(cols))
		slot := rows - 1 - r
		for c, col := range cols {
			board[r][c] = s.symbols.Symbol(col[slot])
		}
	}
	return board
}

// Outcome summarizes the machine after a spin settles.
type Outcome struct {
	RunToken string     `json:"run_token"`
	Ticks    int64      `json:"ticks"`
	Cursors  []int      `json:"cursors"`
	Board    [][]string `json:"board"`
}

// Outcome reports the canonical cursor of every reel and the board.
func (s *Session) Outcome() Outcome {
	cursors := make([]int, s.machine.ReelCount())
	for i := range cursors {
		cursors[i] = s.machine.Reel(i).Cursor()
	}
	return Outcome{
		RunToken: s.runToken,
		Ticks:    s.tick,
		Cursors:  cursors,
		Board:    s.Board(),
	}
}
