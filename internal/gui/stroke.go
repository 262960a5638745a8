package gui

import (
	"math"

	"github.com/san-kum/neurosketch/internal/imaging"
)

// Stroke is the freehand drawing surface: a square intensity bitmap painted
// with a soft round brush. Intensity accumulates, so crossing strokes get
// brighter, saturating at full ink.
type Stroke struct {
	bm     *imaging.MemBitmap
	size   int
	radius float64
	drawn  bool

	lastX, lastY float64
	inStroke     bool
}

// NewStroke allocates a size×size surface with the given brush radius in
// surface pixels.
func NewStroke(size int, radius float64) *Stroke {
	if size < 1 {
		size = 1
	}
	if radius < 1 {
		radius = 1
	}
	return &Stroke{
		bm:     imaging.NewBitmap(size, size),
		size:   size,
		radius: radius,
	}
}

func (s *Stroke) Size() int              { return s.size }
func (s *Stroke) Bitmap() imaging.Bitmap { return s.bm }
func (s *Stroke) Drawn() bool            { return s.drawn }

// Begin starts a new stroke at (x, y).
func (s *Stroke) Begin(x, y float64) {
	s.inStroke = true
	s.lastX, s.lastY = x, y
	s.stamp(x, y)
}

// Extend continues the current stroke to (x, y), stamping the brush along
// the segment so fast drags leave no gaps.
func (s *Stroke) Extend(x, y float64) {
	if !s.inStroke {
		s.Begin(x, y)
		return
	}

	dx, dy := x-s.lastX, y-s.lastY
	dist := math.Hypot(dx, dy)
	step := s.radius / 3
	if step < 1 {
		step = 1
	}
	for d := step; d < dist; d += step {
		t := d / dist
		s.stamp(s.lastX+dx*t, s.lastY+dy*t)
	}
	s.stamp(x, y)
	s.lastX, s.lastY = x, y
}

// End finishes the current stroke.
func (s *Stroke) End() {
	s.inStroke = false
}

// Clear wipes the surface and the drawn flag.
func (s *Stroke) Clear() {
	s.bm.Clear()
	s.drawn = false
	s.inStroke = false
}

// stamp deposits one soft brush dab: full ink in the core, falling off
// quadratically to the rim.
func (s *Stroke) stamp(cx, cy float64) {
	s.drawn = true
	r := s.radius
	for y := int(math.Floor(cy - r)); y <= int(math.Ceil(cy+r)); y++ {
		for x := int(math.Floor(cx - r)); x <= int(math.Ceil(cx+r)); x++ {
			d := math.Hypot(float64(x)-cx, float64(y)-cy)
			if d > r {
				continue
			}
			fall := 1 - (d/r)*(d/r)
			v := int(s.bm.Intensity(x, y)) + int(255*fall)
			if v > 255 {
				v = 255
			}
			s.bm.Set(x, y, uint8(v))
		}
	}
}
