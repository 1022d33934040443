package harness

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/slotreel/internal/host"
	"github.com/roach88/slotreel/internal/machine"
	"github.com/roach88/slotreel/internal/testutil"
	"github.com/roach88/slotreel/internal/trace"
)

// Harness executes one scenario against a fresh session.
type Harness struct {
	session *host.Session
	machine *machine.Machine
}

// Run executes a scenario and evaluates its assertions.
//
// Step failures (a rejected staggered stop, a tick_until_idle that runs out
// of ticks) are reported in Result.Errors and stop the run. The returned
// error is reserved for scenarios that cannot start at all.
func Run(scenario *Scenario) (*Result, error) {
	return RunContext(context.Background(), scenario)
}

// RunContext is Run with a context bounding tick_until_idle steps.
func RunContext(ctx context.Context, scenario *Scenario) (*Result, error) {
	clock := testutil.NewDeterministicClock()
	recOpts := []trace.RecorderOption{trace.WithClock(clock)}
	if scenario.RecordRenders {
		recOpts = append(recOpts, trace.WithRenders())
	}
	rec := trace.NewRecorder(recOpts...)

	cfg := scenario.Machine
	session, err := host.NewSession(&cfg,
		host.WithRunTokenGenerator(testutil.NewFixedRunGenerator(scenario.RunToken)),
		host.WithRecorder(rec),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	h := &Harness{
		session: session,
		machine: session.Machine(),
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		if err := h.execute(ctx, step); err != nil {
			result.AddError(fmt.Sprintf("steps[%d] %s: %v", i, step.Action, err))
			break
		}
	}

	result.Trace = rec.Events()
	result.Outcome = session.Outcome()

	for _, msg := range EvaluateAssertions(result, scenario.Assertions, session) {
		result.AddError(msg)
	}

	slog.Debug("scenario finished",
		"scenario", scenario.Name,
		"pass", result.Pass,
		"events", len(result.Trace),
		"ticks", session.Tick(),
	)
	return result, nil
}

// forEachReel applies fn to one reel, or to every reel when index is nil.
func (h *Harness) forEachReel(index *int, fn func(int)) {
	if index != nil {
		fn(*index)
		return
	}
	for i := 0; i < h.machine.ReelCount(); i++ {
		fn(i)
	}
}

func (h *Harness) execute(ctx context.Context, st Step) error {
	m := h.machine
	switch st.Action {
	case StepSpinAll:
		// A machine that is not spin-ready ignores the command.
		if err := h.session.Spin(); err != nil && !host.HasCode(err, host.ErrCodeNotReady) {
			return err
		}
	case StepSpin:
		m.Spin(*st.Reel)
	case StepStop:
		m.Stop(*st.Reel, st.Wait, st.Cursor)
	case StepStopAt:
		m.StopAt(*st.Reel, st.Cursor)
	case StepStopInstant:
		m.StopInstant(*st.Reel, st.Wait)
	case StepStopAll:
		if st.Stagger > 0 {
			return h.session.StopStaggered(st.Cursors, st.Stagger)
		}
		m.StopAll(st.Cursors)
	case StepSetAllCursors:
		h.forEachReel(st.Reel, func(i int) { m.SetAllCursors(i, st.Cursor) })
	case StepSetSpeed:
		h.forEachReel(st.Reel, func(i int) { m.Reel(i).SetSpeed(*st.Speed) })
	case StepResetSpeed:
		h.forEachReel(st.Reel, func(i int) { m.Reel(i).ResetSpeed() })
	case StepTick:
		n := st.Count
		if n == 0 {
			n = 1
		}
		for i := 0; i < n; i++ {
			h.session.Step()
		}
	case StepTickUntilIdle:
		_, err := h.session.RunUntilIdleWithin(ctx, st.Max)
		return err
	case StepRefreshAll:
		m.RefreshAll()
	case StepShowAll:
		m.ShowAll()
	case StepHideAll:
		m.HideAll()
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}
