package harness

import (
	"fmt"
	"strings"

	"github.com/roach88/slotreel/internal/host"
	"github.com/roach88/slotreel/internal/trace"
)

// AssertionError describes a failed assertion.
type AssertionError struct {
	Type     string
	Expected string
	Actual   string
	Trace    []trace.Event
}

func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nFull trace:\n")
		for _, ev := range e.Trace {
			fmt.Fprintf(&buf, "  [%d] tick=%d %s%s\n", ev.Seq, ev.Tick, ev.Kind, describeEvent(ev))
		}
	}
	return buf.String()
}

func describeEvent(ev trace.Event) string {
	switch ev.Kind {
	case trace.KindReelRender:
		return fmt.Sprintf(" reel=%d slot=%d cursor=%d", ev.Reel, ev.Slot, ev.Cursor)
	case trace.KindReelCursor:
		return fmt.Sprintf(" reel=%d cursor=%d", ev.Reel, ev.Cursor)
	}
	if ev.Kind.PerReel() {
		return fmt.Sprintf(" reel=%d", ev.Reel)
	}
	return ""
}

func assertEventCount(events []trace.Event, a Assertion) error {
	count := 0
	for _, ev := range events {
		if ev.Kind != a.Kind {
			continue
		}
		if a.Reel != nil && ev.Reel != *a.Reel {
			continue
		}
		count++
	}
	if count == a.Count {
		return nil
	}

	subject := string(a.Kind)
	if a.Reel != nil {
		subject = fmt.Sprintf("%s on reel %d", a.Kind, *a.Reel)
	}
	return &AssertionError{
		Type:     AssertEventCount,
		Expected: fmt.Sprintf("%d occurrences of %s", a.Count, subject),
		Actual:   fmt.Sprintf("%d occurrences", count),
		Trace:    events,
	}
}

// assertEventOrder checks that the first occurrence of each kind follows the
// first occurrence of the kind before it. Other events may interleave.
func assertEventOrder(events []trace.Event, a Assertion) error {
	positions := make(map[trace.Kind]int)
	for i, ev := range events {
		if _, seen := positions[ev.Kind]; !seen {
			positions[ev.Kind] = i + 1
		}
	}

	for _, k := range a.Kinds {
		if positions[k] == 0 {
			return &AssertionError{
				Type:     AssertEventOrder,
				Expected: fmt.Sprintf("all kinds present: %v", a.Kinds),
				Actual:   fmt.Sprintf("missing kind: %s", k),
				Trace:    events,
			}
		}
	}

	for i := 1; i < len(a.Kinds); i++ {
		prev, curr := a.Kinds[i-1], a.Kinds[i]
		if positions[prev] >= positions[curr] {
			return &AssertionError{
				Type:     AssertEventOrder,
				Expected: fmt.Sprintf("kinds in order: %v", a.Kinds),
				Actual: fmt.Sprintf("%s (pos %d) should be before %s (pos %d)",
					prev, positions[prev], curr, positions[curr]),
				Trace: events,
			}
		}
	}
	return nil
}

func assertCursor(s *host.Session, a Assertion) error {
	got, ok := s.Machine().Cursor(*a.Reel, a.Slot)
	if !ok {
		return &AssertionError{
			Type:     AssertCursor,
			Expected: fmt.Sprintf("reel %d slot %d", *a.Reel, a.Slot),
			Actual:   "no such slot",
		}
	}
	if got != a.Cursor {
		return &AssertionError{
			Type:     AssertCursor,
			Expected: fmt.Sprintf("cursor %d at reel %d slot %d", a.Cursor, *a.Reel, a.Slot),
			Actual:   fmt.Sprintf("cursor %d", got),
		}
	}
	return nil
}

func assertState(s *host.Session, a Assertion) error {
	r := s.Machine().Reel(*a.Reel)
	if r == nil {
		return &AssertionError{
			Type:     AssertState,
			Expected: fmt.Sprintf("reel %d", *a.Reel),
			Actual:   "no such reel",
		}
	}
	if got := r.State().String(); got != a.State {
		return &AssertionError{
			Type:     AssertState,
			Expected: fmt.Sprintf("reel %d %s", *a.Reel, a.State),
			Actual:   got,
		}
	}
	return nil
}

func assertBoard(s *host.Session, a Assertion) error {
	got := s.Board()
	if fmt.Sprint(got) != fmt.Sprint(a.Rows) {
		return &AssertionError{
			Type:     AssertBoard,
			Expected: fmt.Sprint(a.Rows),
			Actual:   fmt.Sprint(got),
		}
	}
	return nil
}

// EvaluateAssertions checks every assertion and returns the failure
// messages. Trace assertions read result.Trace; state assertions read the
// session's machine.
func EvaluateAssertions(result *Result, assertions []Assertion, s *host.Session) []string {
	var errors []string

	for i, a := range assertions {
		var err error

		switch a.Type {
		case AssertEventCount:
			err = assertEventCount(result.Trace, a)
		case AssertEventOrder:
			err = assertEventOrder(result.Trace, a)
		case AssertCursor, AssertState, AssertBoard:
			if s == nil {
				err = fmt.Errorf("assertion[%d]: %s requires a session", i, a.Type)
				break
			}
			switch a.Type {
			case AssertCursor:
				err = assertCursor(s, a)
			case AssertState:
				err = assertState(s, a)
			default:
				err = assertBoard(s, a)
			}
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, a.Type)
		}

		if err != nil {
			errors = append(errors, err.Error())
		}
	}
	return errors
}
