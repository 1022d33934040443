// Package symbols maps opaque reel cursors onto a reel strip.
//
// The engine never interprets cursors. Hosts use a Table to turn the cursor
// reported for a slot into the symbol drawn there; cursors wrap around the
// strip in both directions.
package symbols

import "errors"

// ErrEmptyStrip is returned when a table is built from no symbols.
var ErrEmptyStrip = errors.New("symbol strip must not be empty")

// Table is an immutable reel strip.
type Table struct {
	strip []string
}

// New copies strip into a Table.
func New(strip []string) (*Table, error) {
	if len(strip) == 0 {
		return nil, ErrEmptyStrip
	}
	s := make([]string, len(strip))
	copy(s, strip)
	return &Table{strip: s}, nil
}

// MustNew is New that panics on error. Intended for tests and literals.
func MustNew(strip ...string) *Table {
	t, err := New(strip)
	if err != nil {
		panic(err)
	}
	return t
}

// Len returns the strip length.
func (t *Table) Len() int {
	return len(t.strip)
}

// Index wraps cursor into [0, Len).
func (t *Table) Index(cursor int) int {
	n := len(t.strip)
	i := cursor % n
	if i < 0 {
		i += n
	}
	return i
}

// Symbol returns the symbol shown for cursor.
func (t *Table) Symbol(cursor int) string {
	return t.strip[t.Index(cursor)]
}

// Strip returns a copy of the strip.
func (t *Table) Strip() []string {
	s := make([]string, len(t.strip))
	copy(s, t.strip)
	return s
}
