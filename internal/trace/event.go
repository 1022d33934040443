package trace

// Kind names a machine notification.
type Kind string

const (
	KindSpinStarted     Kind = "spin_started"
	KindSpinEnded       Kind = "spin_ended"
	KindReelSpinStarted Kind = "reel_spin_started"
	KindReelStopped     Kind = "reel_stopped"
	KindReelRender      Kind = "reel_render"
	KindReelCursor      Kind = "reel_cursor"
	KindShown           Kind = "shown"
	KindHidden          Kind = "hidden"
	KindRefreshed       Kind = "refreshed"
)

// Kinds lists every kind in declaration order.
var Kinds = []Kind{
	KindSpinStarted,
	KindSpinEnded,
	KindReelSpinStarted,
	KindReelStopped,
	KindReelRender,
	KindReelCursor,
	KindShown,
	KindHidden,
	KindRefreshed,
}

// Valid reports whether k is a known kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// PerReel reports whether events of this kind carry a reel index.
func (k Kind) PerReel() bool {
	switch k {
	case KindReelSpinStarted, KindReelStopped, KindReelRender, KindReelCursor:
		return true
	}
	return false
}

// Event is one recorded notification.
//
// Reel is -1 for machine-wide kinds. Slot is only meaningful for
// KindReelRender, Cursor for KindReelRender and KindReelCursor.
type Event struct {
	Seq    int64 `json:"seq"`
	Tick   int64 `json:"tick"`
	Kind   Kind  `json:"kind"`
	Reel   int   `json:"reel"`
	Slot   int   `json:"slot"`
	Cursor int   `json:"cursor"`
}

// canonical returns the event as a map holding only the fields its kind uses.
func (e Event) canonical() map[string]any {
	m := map[string]any{
		"seq":  e.Seq,
		"tick": e.Tick,
		"kind": string(e.Kind),
	}
	if e.Kind.PerReel() {
		m["reel"] = e.Reel
	}
	switch e.Kind {
	case KindReelRender:
		m["slot"] = e.Slot
		m["cursor"] = e.Cursor
	case KindReelCursor:
		m["cursor"] = e.Cursor
	}
	return m
}

// Filter returns the events matching kind, in order.
func Filter(events []Event, kind Kind) []Event {
	var out []Event
	for _, e := range events {
		if e.Kind == kind {
			out = append(out, e)
		}
	}
	return out
}
