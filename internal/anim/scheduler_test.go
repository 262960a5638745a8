package anim

import (
	"testing"

	. "github.com/onsi/gomega"
)

const frameStep = 16.0 // ~60 FPS worth of milliseconds

// pumpToComplete advances frames until the scheduler finishes or the frame
// cap runs out.
func pumpToComplete(p *FramePump, s *Scheduler) int {
	frames := 0
	for i := 0; i < 500 && s.Stage() != StageComplete; i++ {
		if !p.Advance(frameStep) {
			break
		}
		frames++
	}
	return frames
}

func TestAnimateFullPass(t *testing.T) {
	g := NewWithT(t)

	pump := NewFramePump()
	s := New(pump, nil)

	h1 := make([]float64, 16)
	h1[0] = 1.0
	done := 0
	s.Animate(Targets{Hidden1: h1, OnComplete: func() { done++ }})

	pumpToComplete(pump, s)

	g.Expect(s.Stage()).To(Equal(StageComplete))
	g.Expect(done).To(Equal(1), "completion callback fires exactly once")

	g.Expect(s.Layer(0)[0].Current).To(BeNumerically("~", 1.0, 1e-6))
	for _, n := range s.Layer(0)[1:] {
		g.Expect(n.Current).To(BeNumerically("~", 0.0, 1e-6))
	}
}

func TestAnimateSupersedes(t *testing.T) {
	g := NewWithT(t)

	pump := NewFramePump()
	s := New(pump, nil)

	firstDone := false
	s.Animate(Targets{Hidden1: []float64{1}, OnComplete: func() { firstDone = true }})
	pump.Advance(frameStep)
	pump.Advance(frameStep) // first run mid-flight

	secondDone := false
	h1 := make([]float64, 16)
	h1[3] = 0.8
	s.Animate(Targets{Hidden1: h1, OnComplete: func() { secondDone = true }})

	g.Expect(s.ActiveLayer()).To(Equal(0), "superseding run restarts from the first layer")

	pumpToComplete(pump, s)

	g.Expect(firstDone).To(BeFalse(), "superseded run's callback must never fire")
	g.Expect(secondDone).To(BeTrue())
	g.Expect(s.Layer(0)[3].Current).To(BeNumerically("~", 0.8, 1e-6))
}

func TestCancelledFrameNeverFires(t *testing.T) {
	g := NewWithT(t)

	pump := NewFramePump()
	ticks := 0
	s := New(pump, func() { ticks++ })

	s.Animate(Targets{})
	s.Reset() // cancels the pending frame

	g.Expect(pump.Advance(frameStep)).To(BeFalse(), "cancelled frame callback must not run")
	g.Expect(s.Stage()).To(Equal(StageIdle))
}

func TestPreviewAppliedInstantly(t *testing.T) {
	g := NewWithT(t)

	pump := NewFramePump()
	s := New(pump, nil)

	preview := make([]float64, PreviewLen)
	preview[42] = 0.6
	s.Animate(Targets{Preview: preview})

	// No frame has run yet; the preview is already visible.
	g.Expect(s.Preview()[42]).To(Equal(0.6))
}

func TestStrictLayerSequence(t *testing.T) {
	g := NewWithT(t)

	pump := NewFramePump()
	s := New(pump, nil)

	ones := func(n int) []float64 {
		v := make([]float64, n)
		for i := range v {
			v[i] = 1
		}
		return v
	}
	s.Animate(Targets{Hidden1: ones(16), Hidden2: ones(16), Output: ones(10)})

	var layerAt []int
	for i := 0; i < 500 && s.Stage() != StageComplete; i++ {
		pump.Advance(frameStep)
		if s.Stage() == StageLayer {
			layerAt = append(layerAt, s.ActiveLayer())

			// Layers strictly after the active one must still be at rest.
			for l := s.ActiveLayer() + 1; l < 3; l++ {
				for _, n := range s.Layer(l) {
					g.Expect(n.Current).To(BeZero(), "layer %d moved while layer %d animates", l, s.ActiveLayer())
				}
			}
		}
	}

	for i := 1; i < len(layerAt); i++ {
		g.Expect(layerAt[i]).To(BeNumerically(">=", layerAt[i-1]), "layers must animate in order")
	}
	g.Expect(layerAt[len(layerAt)-1]).To(Equal(2))
}

func TestResetZeroesEverything(t *testing.T) {
	g := NewWithT(t)

	pump := NewFramePump()
	repaints := 0
	s := New(pump, func() { repaints++ })

	preview := make([]float64, PreviewLen)
	for i := range preview {
		preview[i] = 0.5
	}
	s.Animate(Targets{Preview: preview, Hidden1: []float64{1, 1, 1}})
	for i := 0; i < 10; i++ {
		pump.Advance(frameStep)
	}

	repaints = 0
	s.Reset()

	g.Expect(repaints).To(Equal(1), "reset forces exactly one repaint")
	for _, v := range s.Preview() {
		g.Expect(v).To(BeZero())
	}
	for l := 0; l < 3; l++ {
		for _, n := range s.Layer(l) {
			g.Expect(n.Current).To(BeZero())
			g.Expect(n.Target).To(BeZero())
		}
	}
}

func TestMalformedTargets(t *testing.T) {
	g := NewWithT(t)

	pump := NewFramePump()
	s := New(pump, nil)

	// Short, nil and over-long vectors: missing indices zero-fill, extra
	// length is ignored, values clamp to 1.
	long := make([]float64, 40)
	for i := range long {
		long[i] = 3.0
	}
	s.Animate(Targets{Hidden1: []float64{0.5}, Hidden2: nil, Output: long})

	pumpToComplete(pump, s)

	g.Expect(s.Layer(0)[0].Current).To(BeNumerically("~", 0.5, 1e-6))
	for _, n := range s.Layer(0)[1:] {
		g.Expect(n.Current).To(BeZero())
	}
	for _, n := range s.Layer(1) {
		g.Expect(n.Current).To(BeZero())
	}
	for _, n := range s.Layer(2) {
		g.Expect(n.Current).To(BeNumerically("~", 1.0, 1e-6), "targets clamp to 1.0")
	}
}

func TestEaseOutDecelerates(t *testing.T) {
	g := NewWithT(t)

	pump := NewFramePump()
	s := New(pump, nil)
	s.Animate(Targets{Hidden1: []float64{1}})

	// Mid-wave the node has covered real ground but not arrived: the decay
	// recurrence approaches the target, it never jumps there.
	prev := 0.0
	for i := 0; i < 8; i++ {
		pump.Advance(frameStep)
		cur := s.Layer(0)[0].Current
		g.Expect(cur).To(BeNumerically(">=", prev), "activation must move toward target monotonically")
		prev = cur
	}
	g.Expect(prev).To(BeNumerically(">", 0))
	g.Expect(prev).To(BeNumerically("<", 1.0), "must approach, not jump")
}
