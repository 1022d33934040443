// Package machine groups reels into a slot machine.
//
// A Machine owns one reel per grid column, fans out bulk commands in column
// order, and re-emits every reel notification annotated with the reel index.
// It derives one machine-level notification of its own: SpinEnded, fired
// the moment the last moving reel becomes idle.
//
// Like package reel, Machine is single-threaded and driven by the host
// through Tick. Commands whose precondition does not hold are ignored.
package machine
