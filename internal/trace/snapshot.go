package trace

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot is a named event log, the unit stored in golden files.
type Snapshot struct {
	Name     string  `json:"name"`
	RunToken string  `json:"run_token,omitempty"`
	Events   []Event `json:"events"`
}

func (s *Snapshot) canonical() map[string]any {
	events := make([]any, len(s.Events))
	for i, e := range s.Events {
		events[i] = e.canonical()
	}
	m := map[string]any{
		"name":   s.Name,
		"events": events,
	}
	if s.RunToken != "" {
		m["run_token"] = s.RunToken
	}
	return m
}

// MarshalCanonical encodes the snapshot as canonical JSON.
func (s *Snapshot) MarshalCanonical() ([]byte, error) {
	return MarshalCanonical(s.canonical())
}

// AssertGolden compares the snapshot against testdata/golden/<Name>.golden.
//
// Regenerate with:
//
//	go test ./... -update
func AssertGolden(t *testing.T, s *Snapshot) {
	t.Helper()

	data, err := s.MarshalCanonical()
	if err != nil {
		t.Fatalf("marshal snapshot %q: %v", s.Name, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, data)
}
