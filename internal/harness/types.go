package harness

import (
	"github.com/roach88/slotreel/internal/host"
	"github.com/roach88/slotreel/internal/trace"
)

// Result is the outcome of a scenario run.
type Result struct {
	// Pass is true when every step ran and every assertion held.
	Pass bool `json:"pass"`

	// Trace is the recorded event log, in sequence order.
	Trace []trace.Event `json:"trace"`

	// Errors holds step and assertion failures. Empty when Pass is true.
	Errors []string `json:"errors,omitempty"`

	// Outcome is the machine's final cursors and board.
	Outcome host.Outcome `json:"outcome"`
}

// NewResult returns a passing, empty result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Trace:  []trace.Event{},
		Errors: []string{},
	}
}

// AddError records a failure and marks the result failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
