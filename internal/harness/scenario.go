package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/slotreel/internal/config"
	"github.com/roach88/slotreel/internal/reel"
	"github.com/roach88/slotreel/internal/trace"
)

// Scenario is one scripted machine run with assertions on its trace.
type Scenario struct {
	// Name identifies the scenario and names its golden file.
	Name string `yaml:"name"`

	Description string `yaml:"description"`

	// Machine is the configuration under test.
	Machine config.Config `yaml:"machine"`

	// RunToken is stamped on the golden snapshot. Optional.
	RunToken string `yaml:"run_token,omitempty"`

	// RecordRenders keeps reel_render events in the trace.
	RecordRenders bool `yaml:"record_renders,omitempty"`

	Steps      []Step      `yaml:"steps"`
	Assertions []Assertion `yaml:"assertions"`
}

// Step is one command issued to the machine.
//
// Reel is a pointer so that "reel: 0" can be told apart from an omitted reel,
// which some actions read as "every reel".
type Step struct {
	Action  string   `yaml:"action"`
	Reel    *int     `yaml:"reel,omitempty"`
	Wait    int      `yaml:"wait,omitempty"`
	Cursor  int      `yaml:"cursor,omitempty"`
	Cursors []int    `yaml:"cursors,omitempty"`
	Stagger int      `yaml:"stagger,omitempty"`
	Count   int      `yaml:"count,omitempty"`
	Max     int      `yaml:"max,omitempty"`
	Speed   *float64 `yaml:"speed,omitempty"`
}

// Step actions.
const (
	StepSpinAll       = "spin_all"
	StepSpin          = "spin"
	StepStop          = "stop"
	StepStopAt        = "stop_at"
	StepStopAll       = "stop_all"
	StepStopInstant   = "stop_instant"
	StepSetAllCursors = "set_all_cursors"
	StepSetSpeed      = "set_speed"
	StepResetSpeed    = "reset_speed"
	StepTick          = "tick"
	StepTickUntilIdle = "tick_until_idle"
	StepRefreshAll    = "refresh_all"
	StepShowAll       = "show_all"
	StepHideAll       = "hide_all"
)

// Assertion checks the trace or the final machine state.
type Assertion struct {
	// Type is one of event_count, event_order, cursor, state or board.
	Type string `yaml:"type"`

	// Kind is the event kind (event_count).
	Kind trace.Kind `yaml:"kind,omitempty"`

	// Kinds is the expected order of first occurrences (event_order).
	Kinds []trace.Kind `yaml:"kinds,omitempty"`

	// Reel narrows event_count to one reel; required by cursor and state.
	Reel *int `yaml:"reel,omitempty"`

	// Slot selects the slot read by cursor. Default 0.
	Slot int `yaml:"slot,omitempty"`

	Count  int        `yaml:"count,omitempty"`
	Cursor int        `yaml:"cursor,omitempty"`
	State  string     `yaml:"state,omitempty"`
	Rows   [][]string `yaml:"rows,omitempty"`
}

// Assertion types.
const (
	AssertEventCount = "event_count"
	AssertEventOrder = "event_order"
	AssertCursor     = "cursor"
	AssertState      = "state"
	AssertBoard      = "board"
)

var reelStates = map[string]bool{
	reel.StateIdle.String():     true,
	reel.StateMoving.String():   true,
	reel.StateStopping.String(): true,
}

// LoadScenario reads, decodes and validates a scenario file. Unknown keys
// are rejected.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(path, data)
}

// ParseScenario decodes and validates scenario YAML. filename is used in
// error messages only.
func ParseScenario(filename string, data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", filename, err)
	}
	return &scenario, nil
}

// LoadScenarios loads every *.yaml and *.yml file in dir, sorted by file
// name. filter, when not empty, keeps only scenarios whose name contains it.
func LoadScenarios(dir, filter string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	var scenarios []*Scenario
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, err
		}
		if filter != "" && !strings.Contains(s.Name, filter) {
			continue
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}

	if err := config.Validate(s.Name+"#machine", &s.Machine); err != nil {
		return fmt.Errorf("machine: %w", err)
	}

	for i := range s.Steps {
		if err := validateStep(i, &s.Steps[i], s.Machine.Columns); err != nil {
			return err
		}
	}
	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i], s.Machine.Columns); err != nil {
			return err
		}
	}
	return nil
}

func validateReel(field string, index int, r *int, required bool, columns int) error {
	if r == nil {
		if required {
			return fmt.Errorf("%s[%d]: reel is required", field, index)
		}
		return nil
	}
	if *r < 0 || *r >= columns {
		return fmt.Errorf("%s[%d]: reel %d out of range [0, %d)", field, index, *r, columns)
	}
	return nil
}

func validateStep(index int, st *Step, columns int) error {
	switch st.Action {
	case "":
		return fmt.Errorf("steps[%d]: action is required", index)
	case StepSpinAll, StepRefreshAll, StepShowAll, StepHideAll:
		return nil
	case StepSpin, StepStop, StepStopAt, StepStopInstant:
		return validateReel("steps", index, st.Reel, true, columns)
	case StepSetAllCursors, StepResetSpeed:
		return validateReel("steps", index, st.Reel, false, columns)
	case StepSetSpeed:
		if st.Speed == nil {
			return fmt.Errorf("steps[%d]: speed is required for set_speed", index)
		}
		return validateReel("steps", index, st.Reel, false, columns)
	case StepStopAll:
		if len(st.Cursors) == 0 {
			return fmt.Errorf("steps[%d]: cursors list is required for stop_all", index)
		}
		if st.Stagger < 0 {
			return fmt.Errorf("steps[%d]: stagger must be non-negative", index)
		}
		return nil
	case StepTick:
		if st.Count < 0 {
			return fmt.Errorf("steps[%d]: count must be non-negative", index)
		}
		return nil
	case StepTickUntilIdle:
		if st.Max <= 0 {
			return fmt.Errorf("steps[%d]: max must be positive for tick_until_idle", index)
		}
		return nil
	default:
		return fmt.Errorf("steps[%d]: unknown action %q", index, st.Action)
	}
}

func validateAssertion(index int, a *Assertion, columns int) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertEventCount:
		if !a.Kind.Valid() {
			return fmt.Errorf("assertions[%d]: unknown event kind %q", index, a.Kind)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for event_count", index)
		}
		return validateReel("assertions", index, a.Reel, false, columns)
	case AssertEventOrder:
		if len(a.Kinds) == 0 {
			return fmt.Errorf("assertions[%d]: kinds list is required for event_order", index)
		}
		for _, k := range a.Kinds {
			if !k.Valid() {
				return fmt.Errorf("assertions[%d]: unknown event kind %q", index, k)
			}
		}
		return nil
	case AssertCursor:
		return validateReel("assertions", index, a.Reel, true, columns)
	case AssertState:
		if !reelStates[a.State] {
			return fmt.Errorf("assertions[%d]: unknown state %q", index, a.State)
		}
		return validateReel("assertions", index, a.Reel, true, columns)
	case AssertBoard:
		if len(a.Rows) == 0 {
			return fmt.Errorf("assertions[%d]: rows are required for board", index)
		}
		return nil
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
}
