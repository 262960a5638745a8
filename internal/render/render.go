// Package render paints the node-graph visualization. The painter is
// stateless: it reads whatever node and preview state the scheduler holds at
// that instant and draws it onto a [Canvas], so any raster backend (raylib
// window, software pixmap) can host it.
//
// Every threshold and color stop below is a fixed constant. The edge sign is
// a cosmetic hash, not a trained weight: a pair index times a fixed odd
// constant, mod 3, giving roughly two positive edges for each negative one.
package render

import (
	"strconv"

	"github.com/san-kum/neurosketch/internal/anim"
	"github.com/san-kum/neurosketch/internal/layout"
)

// Color is an 8-bit RGBA pixel color.
type Color struct {
	R, G, B, A uint8
}

// WithAlpha returns the color with its alpha replaced.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Canvas is the raster surface contract the painter draws against: plain
// 2D primitives, no retained state.
type Canvas interface {
	Line(x1, y1, x2, y2, width float64, c Color)
	FillRect(x, y, w, h float64, c Color)
	FillCircle(x, y, r float64, c Color)
	// GradientCircle fills a disc with a radial gradient from inner at the
	// center to outer at the rim.
	GradientCircle(x, y, r float64, inner, outer Color)
	// Text draws s centered at (x, y) at the given pixel size.
	Text(s string, x, y, size float64, c Color)
}

// Fixed palette and thresholds. Reproduced exactly for visual parity.
var (
	colBackground = Color{10, 10, 12, 255}

	colPositiveEdge = Color{61, 220, 151, 255} // green: "positive" class
	colNegativeEdge = Color{255, 89, 100, 255} // red: "negative" class
	colFaintEdge    = Color{180, 180, 190, 10}

	colCellInk = Color{235, 235, 245, 255}

	// Node fill palettes: center and rim stops per activation band.
	colHighCore = Color{255, 224, 130, 255}
	colHighRim  = Color{255, 143, 64, 255}
	colMidCore  = Color{96, 210, 220, 255}
	colMidRim   = Color{36, 110, 140, 255}
	colIdleCore = Color{70, 70, 80, 255}
	colIdleRim  = Color{36, 36, 44, 255}

	colGlow      = Color{255, 196, 96, 0} // alpha set per node
	colHighlight = Color{255, 255, 255, 70}

	colLabelHot  = Color{255, 240, 200, 255}
	colLabelCold = Color{120, 120, 130, 255}
)

const (
	// Activation bands for the node fill palette.
	highActive     = 0.75
	moderateActive = 0.35

	// Edges below this combined strength render as decorative faint lines.
	edgeThreshold = 0.04

	// glowThreshold gates the outer glow halo.
	glowThreshold = 0.5

	hiddenRadius = 9.0
	outputRadius = 13.0

	// edgeSignPrime scrambles the pair index for the cosmetic sign.
	edgeSignPrime = 7919
)

// Background returns the clear color hosts should fill before Draw.
func Background() Color { return colBackground }

// EdgePositive reports the deterministic cosmetic sign for the edge between
// node i of one layer and node j of the next (w nodes wide).
func EdgePositive(i, j, w int) bool {
	return ((i*w+j)*edgeSignPrime)%3 != 0
}

// Draw paints one full frame: faint and weighted edges, the input preview
// grid, then the node glyphs, onto cv. It holds no state between calls.
func Draw(cv Canvas, f layout.Frame, s *anim.Scheduler) {
	drawEdges(cv, f.Layers[0], f.Layers[1], s.Layer(0), s.Layer(1))
	drawEdges(cv, f.Layers[1], f.Layers[2], s.Layer(1), s.Layer(2))
	drawPreview(cv, f.Input, s.Preview())
	drawNodes(cv, f.Layers[0], s.Layer(0), hiddenRadius, false)
	drawNodes(cv, f.Layers[1], s.Layer(1), hiddenRadius, false)
	drawNodes(cv, f.Layers[2], s.Layer(2), outputRadius, true)
}

func drawEdges(cv Canvas, from, to []layout.Point, a, b []anim.Node) {
	w := len(to)
	for i, p := range from {
		for j, q := range to {
			strength := a[i].Current * b[j].Current
			if strength <= edgeThreshold {
				cv.Line(p.X, p.Y, q.X, q.Y, 1, colFaintEdge)
				continue
			}

			col := colNegativeEdge
			if EdgePositive(i, j, w) {
				col = colPositiveEdge
			}
			alpha := 40 + strength*200
			if alpha > 255 {
				alpha = 255
			}
			width := 0.5 + 2.5*strength
			cv.Line(p.X, p.Y, q.X, q.Y, width, col.WithAlpha(uint8(alpha)))
		}
	}
}

func drawPreview(cv Canvas, g layout.Grid, pix []float64) {
	for row := 0; row < layout.GridSide; row++ {
		for col := 0; col < layout.GridSide; col++ {
			v := pix[row*layout.GridSide+col]
			if v <= 0 {
				continue
			}
			if v > 1 {
				v = 1
			}
			p := g.CellAt(col, row)
			cv.FillRect(p.X, p.Y, g.Cell, g.Cell, colCellInk.WithAlpha(uint8(v*255)))
		}
	}
}

func drawNodes(cv Canvas, pts []layout.Point, nodes []anim.Node, radius float64, labeled bool) {
	for i, p := range pts {
		act := nodes[i].Current

		if act > glowThreshold {
			glow := colGlow.WithAlpha(uint8(90 * act))
			cv.GradientCircle(p.X, p.Y, radius*2.2, glow, glow.WithAlpha(0))
		}

		core, rim := nodePalette(act)
		cv.GradientCircle(p.X, p.Y, radius, core, rim)

		// Soft highlight, upper-left, gives the glyph its spherical read.
		cv.GradientCircle(p.X-radius*0.3, p.Y-radius*0.3, radius*0.45, colHighlight, colHighlight.WithAlpha(0))

		if labeled {
			size := 14 + 6*act
			col := colLabelCold
			if act > moderateActive {
				col = colLabelHot
			}
			cv.Text(strconv.Itoa(i), p.X, p.Y, size, col)
		}
	}
}

func nodePalette(act float64) (core, rim Color) {
	switch {
	case act > highActive:
		return colHighCore, colHighRim
	case act > moderateActive:
		return colMidCore, colMidRim
	default:
		return colIdleCore, colIdleRim
	}
}
