// Package host drives a machine from a configuration file.
//
// A Session owns one machine, the symbol strip its cursors map onto, and an
// optional trace recorder. It adds what an embedding game loop would
// otherwise do by hand: run tokens per spin, staggered stops, a bounded tick
// loop and a symbol board view of the visible slots.
//
// Sessions are not safe for concurrent use. Drive one from a single
// goroutine, the way a game loop would.
package host
