package anim

// Frames is the host capability the scheduler uses to get per-frame
// callbacks. Exactly one callback is pending at a time; cancelling the
// returned handle guarantees the callback never fires.
type Frames interface {
	Schedule(fn func(now float64)) Handle
}

// Handle cancels a scheduled frame callback.
type Handle interface {
	Cancel()
}

// FramePump is a single-threaded Frames implementation driven by whoever owns
// the render loop: the raylib host pumps it once per drawn frame with the
// wall clock, tests and the headless runner advance it with a synthetic step.
type FramePump struct {
	now  float64
	next *pumpHandle
}

type pumpHandle struct {
	fn        func(now float64)
	cancelled bool
}

func (h *pumpHandle) Cancel() { h.cancelled = true }

// NewFramePump returns a pump with its clock at zero.
func NewFramePump() *FramePump {
	return &FramePump{}
}

func (p *FramePump) Schedule(fn func(now float64)) Handle {
	h := &pumpHandle{fn: fn}
	p.next = h
	return h
}

// Now returns the pump's current timestamp in milliseconds.
func (p *FramePump) Now() float64 { return p.now }

// Pump fires the pending callback, if any, at the given timestamp. Reports
// whether a callback ran.
func (p *FramePump) Pump(now float64) bool {
	p.now = now
	h := p.next
	p.next = nil
	if h == nil || h.cancelled {
		return false
	}
	h.fn(now)
	return true
}

// Advance moves the clock forward by dt milliseconds and pumps once.
func (p *FramePump) Advance(dt float64) bool {
	return p.Pump(p.now + dt)
}
