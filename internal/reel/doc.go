// Package reel implements the motion and cursor engine of a single slot reel.
//
// A reel keeps two pieces of state in lockstep:
//
//   - a continuous move value, advanced by speed*TickScale on every Tick
//   - a window of integer cursors, shifted by one whenever the move value
//     crosses a whole unit
//
// Content changes (which cursor occupies a slot) happen only on shifts, never
// in between. Stop requests are expressed in shifts, so a stop lands on an
// exact cursor regardless of how finely the host ticks.
//
// STATE MACHINE:
//
//	Idle --Spin--> Moving --Stop/StopInstant--> Stopping --countdown==0--> Idle
//
// Commands that violate their precondition are ignored. Callers that need to
// know whether a command will be accepted check IsReady or State first.
//
// Cursor values are opaque. Mapping a cursor to a symbol is the presentation
// layer's job (see package symbols).
//
// Reels are not safe for concurrent use. Tick must not be called from inside
// an Observer callback.
package reel
