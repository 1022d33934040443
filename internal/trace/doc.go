// Package trace records machine notifications as an ordered event log.
//
// A Recorder subscribes to a machine like any other observer. Each
// notification becomes an Event stamped with a sequence number from a Clock
// and the tick it happened in. Logs serialize to canonical JSON (sorted keys,
// NFC strings, no floats) so that two runs of the same input compare
// byte-for-byte, which is what golden snapshots rely on.
package trace
