package anim

import (
	"context"
	"fmt"
)

// Observer is notified after every animation frame. Hosts that replay a pass
// headlessly (terminal view, snapshot export) hang their rendering off this.
type Observer interface {
	OnFrame(s *Scheduler, now float64)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(s *Scheduler, now float64)

func (f ObserverFunc) OnFrame(s *Scheduler, now float64) { f(s, now) }

// Runner drives a scheduler to completion at a fixed synthetic frame step,
// without a display. One Runner runs one pass at a time.
type Runner struct {
	pump      *FramePump
	sched     *Scheduler
	dt        float64
	observers []Observer
}

// NewRunner builds a headless runner stepping dt milliseconds per frame.
func NewRunner(dt float64) *Runner {
	r := &Runner{pump: NewFramePump(), dt: dt}
	r.sched = New(r.pump, nil)
	return r
}

// Scheduler returns the runner's scheduler for direct state reads.
func (r *Runner) Scheduler() *Scheduler { return r.sched }

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// Run animates one full pass and pumps frames until the pass completes or
// ctx is cancelled. The pass's own OnComplete, if set, fires as usual.
func (r *Runner) Run(ctx context.Context, t Targets) error {
	if r.dt <= 0 {
		return fmt.Errorf("anim: frame step must be positive, got %f", r.dt)
	}

	done := false
	userDone := t.OnComplete
	t.OnComplete = func() {
		done = true
		if userDone != nil {
			userDone()
		}
	}

	r.sched.Animate(t)
	for !done {
		select {
		case <-ctx.Done():
			r.sched.Reset()
			return ctx.Err()
		default:
		}

		if !r.pump.Advance(r.dt) {
			return fmt.Errorf("anim: no frame pending before completion")
		}
		for _, o := range r.observers {
			o.OnFrame(r.sched, r.pump.Now())
		}
	}
	return nil
}
