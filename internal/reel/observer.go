package reel

// Observer receives reel notifications.
//
// Slot order counts from the first visible slot, so buffered slots above and
// below the visible area have orders -Extra..-1 and DisplayCount..DisplayCount+Extra-1.
//
// Within one shift the firing order is Stopped (if the stop completed),
// then RenderUpdated for every slot, then CursorChanged.
type Observer interface {
	SpinStarted()
	Stopped()
	RenderUpdated(order, cursor int)
	CursorChanged(cursor int)
	Shown()
	Hidden()
}

// NopObserver ignores every notification. Embed it to implement only the
// callbacks you need.
type NopObserver struct{}

func (NopObserver) SpinStarted()                    {}
func (NopObserver) Stopped()                        {}
func (NopObserver) RenderUpdated(order, cursor int) {}
func (NopObserver) CursorChanged(cursor int)        {}
func (NopObserver) Shown()                          {}
func (NopObserver) Hidden()                         {}
