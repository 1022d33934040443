package reel

// cursorRequest asks the reel to write a cursor into the edge slot exposed by
// the next shift, offset so that cursor becomes canonical waitCount shifts
// after the edge slot enters the window.
type cursorRequest struct {
	waitCount int
	cursor    int
}

// pendingRequest is an optional cursorRequest.
type pendingRequest struct {
	req     cursorRequest
	present bool
}

func (p *pendingRequest) set(waitCount, cursor int) {
	p.req = cursorRequest{waitCount: waitCount, cursor: cursor}
	p.present = true
}

// take returns the request and clears it.
func (p *pendingRequest) take() (cursorRequest, bool) {
	if !p.present {
		return cursorRequest{}, false
	}
	req := p.req
	*p = pendingRequest{}
	return req, true
}
