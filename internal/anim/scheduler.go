// Package anim drives the layered visualization: a staged, frame-driven
// state machine that eases each layer's node activations toward target
// values, one layer wave at a time, with a fixed pause between waves.
//
// The scheduler is deliberately host-agnostic. It never touches a display:
// frame callbacks come from an injected [Frames] capability and every state
// change ends in a repaint callback against whatever surface the host
// provides. It is single-threaded and not reentrant; a new [Scheduler.Animate]
// call hard-cancels whatever run is in flight.
package anim

import (
	"math"

	"github.com/san-kum/neurosketch/internal/layout"
)

const (
	// LayerDuration is one layer wave in milliseconds.
	LayerDuration = 280.0

	// LayerPause separates consecutive waves, no activation changes inside.
	LayerPause = 70.0

	// PreviewLen is the instantly-applied input preview vector length.
	PreviewLen = layout.GridSide * layout.GridSide
)

// Stage identifies where the scheduler is within one visualization pass.
// Transitions run strictly forward; only Animate and Reset rewind.
type Stage int

const (
	StageIdle Stage = iota
	StageLayer
	StagePause
	StageComplete
)

// Node is one visualized unit. Current chases Target every tick while the
// node's layer is animating. Nodes are never destroyed, only reset to zero.
type Node struct {
	Index   int
	Current float64
	Target  float64
}

// Targets carries one full visualization pass. Short or nil vectors zero-fill
// the missing nodes; extra length beyond the fixed node counts is ignored.
type Targets struct {
	Preview    []float64
	Hidden1    []float64
	Hidden2    []float64
	Output     []float64
	OnComplete func()
}

// Scheduler owns the node and preview state the renderer reads each frame.
type Scheduler struct {
	frames  Frames
	repaint func()

	preview [PreviewLen]float64
	layers  [3][]Node

	stage      Stage
	layer      int
	stageStart float64
	started    bool

	pendingTargets [3][]float64
	onComplete     func()

	pending Handle
	run     uint64
}

// New builds a scheduler with the fixed 16/16/10 topology. repaint is invoked
// after every tick and exactly once on Reset; it may be nil.
func New(frames Frames, repaint func()) *Scheduler {
	s := &Scheduler{frames: frames, repaint: repaint}
	counts := [3]int{layout.Hidden1Nodes, layout.Hidden2Nodes, layout.OutputNodes}
	for l, n := range counts {
		s.layers[l] = make([]Node, n)
		for i := range s.layers[l] {
			s.layers[l][i].Index = i
		}
	}
	return s
}

// Stage returns the current animation stage.
func (s *Scheduler) Stage() Stage { return s.stage }

// ActiveLayer returns the layer a wave is running or pausing for. Meaningful
// only while Stage is StageLayer or StagePause.
func (s *Scheduler) ActiveLayer() int { return s.layer }

// Preview exposes the input-preview values. Read-only between ticks.
func (s *Scheduler) Preview() []float64 { return s.preview[:] }

// Layer exposes one layer's nodes. Read-only between ticks.
func (s *Scheduler) Layer(i int) []Node { return s.layers[i] }

// Animate cancels any in-flight run (its completion callback will never
// fire), applies the preview instantly, and starts the three layer waves in
// strict sequence. onComplete fires exactly once, when the third wave ends.
func (s *Scheduler) Animate(t Targets) {
	s.cancel()

	for i := range s.preview {
		s.preview[i] = targetAt(t.Preview, i)
	}
	s.pendingTargets[0] = t.Hidden1
	s.pendingTargets[1] = t.Hidden2
	s.pendingTargets[2] = t.Output
	s.onComplete = t.OnComplete

	s.stage = StageLayer
	s.layer = 0
	s.started = false
	s.loadTargets(0)
	s.requestFrame()
	s.doRepaint()
}

// Reset cancels any in-flight run, zeroes every node's current and target
// activation and all preview values, and forces one immediate repaint.
func (s *Scheduler) Reset() {
	s.cancel()
	for i := range s.preview {
		s.preview[i] = 0
	}
	for l := range s.layers {
		for i := range s.layers[l] {
			s.layers[l][i].Current = 0
			s.layers[l][i].Target = 0
		}
	}
	s.stage = StageIdle
	s.layer = 0
	s.doRepaint()
}

func (s *Scheduler) cancel() {
	if s.pending != nil {
		s.pending.Cancel()
		s.pending = nil
	}
	s.run++
	s.onComplete = nil
}

func (s *Scheduler) loadTargets(layer int) {
	vec := s.pendingTargets[layer]
	for i := range s.layers[layer] {
		s.layers[layer][i].Target = clamp01(targetAt(vec, i))
	}
}

func (s *Scheduler) requestFrame() {
	run := s.run
	s.pending = s.frames.Schedule(func(now float64) {
		if run != s.run {
			return // superseded run; frame raced its cancellation
		}
		s.pending = nil
		s.tick(now)
	})
}

func (s *Scheduler) tick(now float64) {
	if !s.started {
		s.stageStart = now
		s.started = true
	}

	switch s.stage {
	case StageLayer:
		t := (now - s.stageStart) / LayerDuration
		if t > 1 {
			t = 1
		}
		// Ease-out cubic applied as fractional convergence: each tick moves
		// a node the eased fraction of its remaining distance to target.
		eased := 1 - math.Pow(1-t, 3)
		for i := range s.layers[s.layer] {
			n := &s.layers[s.layer][i]
			n.Current += (n.Target - n.Current) * eased
		}
		if t >= 1 {
			if s.layer == len(s.layers)-1 {
				s.finish()
			} else {
				s.stage = StagePause
				s.stageStart = now
			}
		}

	case StagePause:
		if now-s.stageStart >= LayerPause {
			s.layer++
			s.stage = StageLayer
			s.stageStart = now
			s.loadTargets(s.layer)
		}

	default:
		return
	}

	if s.stage != StageComplete {
		s.requestFrame()
	}
	s.doRepaint()
}

func (s *Scheduler) finish() {
	s.stage = StageComplete
	done := s.onComplete
	s.onComplete = nil
	if done != nil {
		done()
	}
}

func (s *Scheduler) doRepaint() {
	if s.repaint != nil {
		s.repaint()
	}
}

func targetAt(vec []float64, i int) float64 {
	if i < 0 || i >= len(vec) {
		return 0
	}
	return vec[i]
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
