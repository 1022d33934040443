package machine

// Observer receives machine notifications.
//
// Reel-level notifications are delivered before any machine-level
// notification they cause: ReelStopped for the last reel precedes SpinEnded.
type Observer interface {
	SpinStarted()
	SpinEnded()
	ReelSpinStarted(reel int)
	ReelStopped(reel int)
	ReelRenderUpdated(reel, slot, cursor int)
	ReelCursorChanged(reel, cursor int)
	Shown()
	Hidden()
	Refreshed()
}

// NopObserver ignores every notification. Embed it to implement only the
// callbacks you need.
type NopObserver struct{}

func (NopObserver) SpinStarted()                             {}
func (NopObserver) SpinEnded()                               {}
func (NopObserver) ReelSpinStarted(reel int)                 {}
func (NopObserver) ReelStopped(reel int)                     {}
func (NopObserver) ReelRenderUpdated(reel, slot, cursor int) {}
func (NopObserver) ReelCursorChanged(reel, cursor int)       {}
func (NopObserver) Shown()                                   {}
func (NopObserver) Hidden()                                  {}
func (NopObserver) Refreshed()                               {}

// reelRelay forwards one reel's notifications to the machine.
type reelRelay struct {
	m     *Machine
	index int
}

func (r reelRelay) SpinStarted() {
	for _, o := range r.m.observers {
		o.ReelSpinStarted(r.index)
	}
}

func (r reelRelay) Stopped() {
	for _, o := range r.m.observers {
		o.ReelStopped(r.index)
	}
	if r.m.AllIdle() {
		r.m.spinEnded()
	}
}

func (r reelRelay) RenderUpdated(order, cursor int) {
	for _, o := range r.m.observers {
		o.ReelRenderUpdated(r.index, order, cursor)
	}
}

func (r reelRelay) CursorChanged(cursor int) {
	for _, o := range r.m.observers {
		o.ReelCursorChanged(r.index, cursor)
	}
}

// Reel visibility is aggregated by ShowAll/HideAll.
func (r reelRelay) Shown()  {}
func (r reelRelay) Hidden() {}
