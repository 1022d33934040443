package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/slotreel/internal/trace"
)

func intPtr(v int) *int { return &v }

func sampleTrace() []trace.Event {
	return []trace.Event{
		{Seq: 1, Kind: trace.KindReelSpinStarted, Reel: 0},
		{Seq: 2, Kind: trace.KindSpinStarted, Reel: -1},
		{Seq: 3, Tick: 1, Kind: trace.KindReelCursor, Reel: 0, Cursor: 1},
		{Seq: 4, Tick: 2, Kind: trace.KindReelStopped, Reel: 0},
		{Seq: 5, Tick: 2, Kind: trace.KindSpinEnded, Reel: -1},
	}
}

func TestAssertEventCount(t *testing.T) {
	events := sampleTrace()

	assert.NoError(t, assertEventCount(events, Assertion{Kind: trace.KindReelStopped, Count: 1}))
	assert.NoError(t, assertEventCount(events, Assertion{Kind: trace.KindReelStopped, Reel: intPtr(1), Count: 0}))

	err := assertEventCount(events, Assertion{Kind: trace.KindReelCursor, Reel: intPtr(0), Count: 2})
	require.Error(t, err)

	var aerr *AssertionError
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, AssertEventCount, aerr.Type)
	assert.Equal(t, "2 occurrences of reel_cursor on reel 0", aerr.Expected)
	assert.Equal(t, "1 occurrences", aerr.Actual)
}

func TestAssertEventOrder(t *testing.T) {
	events := sampleTrace()

	assert.NoError(t, assertEventOrder(events, Assertion{
		Kinds: []trace.Kind{trace.KindSpinStarted, trace.KindReelStopped, trace.KindSpinEnded},
	}))

	err := assertEventOrder(events, Assertion{
		Kinds: []trace.Kind{trace.KindSpinEnded, trace.KindSpinStarted},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spin_ended (pos 5) should be before spin_started (pos 2)")

	err = assertEventOrder(events, Assertion{Kinds: []trace.Kind{trace.KindHidden}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing kind: hidden")
}

func TestAssertionError_IncludesTrace(t *testing.T) {
	err := &AssertionError{
		Type:     AssertEventCount,
		Expected: "1",
		Actual:   "0",
		Trace:    sampleTrace()[2:4],
	}
	msg := err.Error()
	assert.Contains(t, msg, "Assertion failed: event_count")
	assert.Contains(t, msg, "[3] tick=1 reel_cursor reel=0 cursor=1")
	assert.Contains(t, msg, "[4] tick=2 reel_stopped reel=0")
}

func TestEvaluateAssertions_StateWithoutSession(t *testing.T) {
	result := NewResult()
	errs := EvaluateAssertions(result, []Assertion{
		{Type: AssertCursor, Reel: intPtr(0)},
		{Type: "payout"},
	}, nil)
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "requires a session")
	assert.Contains(t, errs[1], "unknown assertion type")
}

func TestResult_AddError(t *testing.T) {
	r := NewResult()
	assert.True(t, r.Pass)
	r.AddError("boom")
	assert.False(t, r.Pass)
	assert.Equal(t, []string{"boom"}, r.Errors)
}
