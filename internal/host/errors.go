package host

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes session errors.
type ErrorCode string

const (
	// ErrCodeNotReady means the machine is in the wrong phase for the command.
	ErrCodeNotReady ErrorCode = "NOT_READY"

	// ErrCodeCursorCount means a stop named a cursor count other than the
	// number of reels.
	ErrCodeCursorCount ErrorCode = "CURSOR_COUNT"

	// ErrCodeTickLimit means RunUntilIdle gave up before every reel idled.
	ErrCodeTickLimit ErrorCode = "TICK_LIMIT"
)

// SessionError is a rejected session command.
type SessionError struct {
	Code     ErrorCode
	Message  string
	RunToken string
	Details  map[string]string
}

func (e *SessionError) Error() string {
	if e.RunToken != "" {
		return fmt.Sprintf("%s: %s (run=%s)", e.Code, e.Message, e.RunToken)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// HasCode reports whether err wraps a SessionError with code.
func HasCode(err error, code ErrorCode) bool {
	var se *SessionError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// IsTickLimit reports whether err is a tick limit error.
func IsTickLimit(err error) bool {
	return HasCode(err, ErrCodeTickLimit)
}

func newNotReadyError(runToken, command string) *SessionError {
	return &SessionError{
		Code:     ErrCodeNotReady,
		Message:  fmt.Sprintf("%s rejected in the current machine state", command),
		RunToken: runToken,
	}
}

func newCursorCountError(runToken string, got, want int) *SessionError {
	return &SessionError{
		Code:     ErrCodeCursorCount,
		Message:  fmt.Sprintf("got %d stop cursors for %d reels", got, want),
		RunToken: runToken,
		Details: map[string]string{
			"cursors": fmt.Sprintf("%d", got),
			"reels":   fmt.Sprintf("%d", want),
		},
	}
}

func newTickLimitError(runToken string, maxTicks int) *SessionError {
	return &SessionError{
		Code:     ErrCodeTickLimit,
		Message:  fmt.Sprintf("reels still moving after %d ticks", maxTicks),
		RunToken: runToken,
		Details: map[string]string{
			"max_ticks": fmt.Sprintf("%d", maxTicks),
		},
	}
}
