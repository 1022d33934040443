package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/slotreel/internal/config"
	"github.com/roach88/slotreel/internal/layout"
	"github.com/roach88/slotreel/internal/machine"
)

// NewMachine builds an initialized machine with one unit cell per slot,
// anchored at the origin.
func NewMachine(t testing.TB, columns, rows int, speed float64, opts ...machine.Option) *machine.Machine {
	t.Helper()
	grid := layout.GridSize{Columns: columns, Rows: rows}
	m := machine.New(opts...).Initialize(grid, speed, layout.NewRect(0, 0, float64(columns), float64(rows)))
	require.True(t, m.Initialized(), "machine %dx%d did not initialize", columns, rows)
	return m
}

// MustParseConfig parses an inline YAML config or fails the test.
func MustParseConfig(t testing.TB, doc string) *config.Config {
	t.Helper()
	cfg, err := config.Parse(t.Name()+".yaml", []byte(doc))
	require.NoError(t, err)
	return cfg
}
