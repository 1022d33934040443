// Package config loads slot machine configuration files.
//
// A configuration is a YAML document:
//
//	columns: 5
//	rows: 3
//	speed: 1.0
//	bounds: {x: 0, y: 0, width: 5, height: 3}
//	symbols: [cherry, bell, bar, seven, plum]
//
// Decoding is strict: unknown keys are rejected. The decoded document is then
// unified with an embedded CUE schema (see schema.cue) so that range
// violations are reported with the offending field and its source position.
package config
