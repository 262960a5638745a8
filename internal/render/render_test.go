package render

import (
	"testing"

	"github.com/san-kum/neurosketch/internal/anim"
	"github.com/san-kum/neurosketch/internal/layout"
)

type op struct {
	kind  string
	w     float64
	c     Color
	label string
}

// recorder captures draw calls for assertions.
type recorder struct {
	lines, rects, circles, gradients, texts []op
}

func (r *recorder) Line(x1, y1, x2, y2, width float64, c Color) {
	r.lines = append(r.lines, op{kind: "line", w: width, c: c})
}
func (r *recorder) FillRect(x, y, w, h float64, c Color) {
	r.rects = append(r.rects, op{kind: "rect", c: c})
}
func (r *recorder) FillCircle(x, y, rad float64, c Color) {
	r.circles = append(r.circles, op{kind: "circle", c: c})
}
func (r *recorder) GradientCircle(x, y, rad float64, inner, outer Color) {
	r.gradients = append(r.gradients, op{kind: "gradient", w: rad, c: inner})
}
func (r *recorder) Text(s string, x, y, size float64, c Color) {
	r.texts = append(r.texts, op{kind: "text", w: size, c: c, label: s})
}

func newScheduler() *anim.Scheduler {
	return anim.New(anim.NewFramePump(), nil)
}

func TestDrawQuietStateAllFaint(t *testing.T) {
	rec := &recorder{}
	f := layout.Compute(1280, 720)
	s := newScheduler()

	Draw(rec, f, s)

	wantEdges := layout.Hidden1Nodes*layout.Hidden2Nodes + layout.Hidden2Nodes*layout.OutputNodes
	if len(rec.lines) != wantEdges {
		t.Fatalf("%d lines, want %d (fully connected adjacent layers)", len(rec.lines), wantEdges)
	}
	for i, l := range rec.lines {
		if l.c != colFaintEdge {
			t.Fatalf("line %d drawn with %+v, want faint at rest", i, l.c)
		}
	}
	if len(rec.rects) != 0 {
		t.Errorf("%d preview cells drawn for a blank preview", len(rec.rects))
	}
	if len(rec.texts) != layout.OutputNodes {
		t.Errorf("%d labels, want one digit per output node", len(rec.texts))
	}
}

func TestDrawWeightedEdgesMonotonic(t *testing.T) {
	f := layout.Compute(1280, 720)

	weightAt := func(a, b float64) (count int, width float64, alpha uint8) {
		rec := &recorder{}
		s := newScheduler()
		s.Layer(0)[0].Current = a
		s.Layer(1)[0].Current = b
		Draw(rec, f, s)
		for _, l := range rec.lines {
			if l.c != colFaintEdge {
				count++
				width, alpha = l.w, l.c.A
			}
		}
		return count, width, alpha
	}

	n, wLow, aLow := weightAt(0.5, 0.5)
	if n != 1 {
		t.Fatalf("%d weighted edges, want exactly the one active pair", n)
	}
	_, wHigh, aHigh := weightAt(1.0, 1.0)
	if wHigh <= wLow {
		t.Errorf("width %f not monotonic in strength (low %f)", wHigh, wLow)
	}
	if aHigh <= aLow {
		t.Errorf("alpha %d not monotonic in strength (low %d)", aHigh, aLow)
	}
}

func TestDrawEdgeBelowThresholdStaysFaint(t *testing.T) {
	f := layout.Compute(1280, 720)
	rec := &recorder{}
	s := newScheduler()
	s.Layer(0)[0].Current = 0.1
	s.Layer(1)[0].Current = 0.1 // product 0.01 < threshold

	Draw(rec, f, s)
	for _, l := range rec.lines {
		if l.c != colFaintEdge {
			t.Fatal("sub-threshold pair must render as a faint edge")
		}
	}
}

func TestEdgeSignBias(t *testing.T) {
	pos := 0
	total := layout.Hidden1Nodes * layout.Hidden2Nodes
	for i := 0; i < layout.Hidden1Nodes; i++ {
		for j := 0; j < layout.Hidden2Nodes; j++ {
			if EdgePositive(i, j, layout.Hidden2Nodes) {
				pos++
			}
		}
	}
	ratio := float64(pos) / float64(total)
	if ratio < 0.55 || ratio > 0.8 {
		t.Errorf("positive edge ratio %.2f, want roughly 2/3", ratio)
	}

	// Deterministic per pair.
	if EdgePositive(3, 7, 16) != EdgePositive(3, 7, 16) {
		t.Error("edge sign must be stable")
	}
}

func TestDrawPreviewOpacity(t *testing.T) {
	f := layout.Compute(1280, 720)
	rec := &recorder{}
	s := newScheduler()
	pv := s.Preview()
	pv[0] = 0.25
	pv[1] = 1.0

	Draw(rec, f, s)
	if len(rec.rects) != 2 {
		t.Fatalf("%d cells drawn, want 2 (zero-intensity cells skipped)", len(rec.rects))
	}
	if rec.rects[0].c.A >= rec.rects[1].c.A {
		t.Errorf("cell opacity %d vs %d not monotonic in intensity", rec.rects[0].c.A, rec.rects[1].c.A)
	}
}

func TestDrawGlowGating(t *testing.T) {
	f := layout.Compute(1280, 720)

	gradientsFor := func(act float64) int {
		rec := &recorder{}
		s := newScheduler()
		s.Layer(0)[0].Current = act
		Draw(rec, f, s)
		return len(rec.gradients)
	}

	quiet := gradientsFor(0.2)
	hot := gradientsFor(0.9)
	if hot != quiet+1 {
		t.Errorf("hot node drew %d gradients vs %d quiet, want exactly one extra glow halo", hot, quiet)
	}
}

func TestNodePaletteBands(t *testing.T) {
	cases := []struct {
		act  float64
		core Color
	}{
		{0.0, colIdleCore},
		{moderateActive, colIdleCore}, // band boundaries are exclusive
		{0.5, colMidCore},
		{highActive, colMidCore},
		{0.9, colHighCore},
	}
	for _, tc := range cases {
		core, _ := nodePalette(tc.act)
		if core != tc.core {
			t.Errorf("activation %.2f: core %+v, want %+v", tc.act, core, tc.core)
		}
	}
}
