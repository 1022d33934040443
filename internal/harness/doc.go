// Package harness runs reel scenarios and checks the resulting event trace.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: classic_stop
//	description: "Three reels land on seven"
//	run_token: "run-classic"
//	machine:
//	  columns: 3
//	  rows: 1
//	  speed: 10
//	steps:
//	  - action: spin_all
//	  - action: tick
//	    count: 2
//	  - action: stop_all
//	    cursors: [7, 7, 7]
//	  - action: tick_until_idle
//	    max: 50
//	assertions:
//	  - type: event_count
//	    kind: spin_ended
//	    count: 1
//	  - type: cursor
//	    reel: 0
//	    cursor: 7
//
// # Step Actions
//
//   - spin_all, refresh_all, show_all, hide_all: machine-wide commands
//   - spin: start one reel
//   - stop: stop one reel on cursor after wait shifts of lead time
//   - stop_at: stop one reel on cursor with the default lead time
//   - stop_all: stop every reel on cursors, optionally staggered
//   - stop_instant: let one reel coast wait shifts and idle
//   - set_all_cursors: position one reel, or every reel when reel is omitted
//   - set_speed, reset_speed: change one reel's speed, or every reel's
//   - tick: advance count ticks (default 1)
//   - tick_until_idle: advance until every reel idles, failing after max ticks
//
// # Assertion Types
//
//   - event_count: kind occurs exactly count times, optionally for one reel
//   - event_order: the first occurrences of kinds appear in the given order
//   - cursor: a reel's cursor, at slot 0 unless slot is given
//   - state: a reel's motion state (idle, moving or stopping)
//   - board: the visible symbols, top row first
//
// # Deterministic Testing
//
// Every run uses a fixed run token (scenario.run_token or
// testutil.DefaultRunToken) and a fresh testutil.DeterministicClock, so the
// same scenario always produces the same trace and golden files compare
// byte-for-byte.
package harness
