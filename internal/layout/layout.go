// Package layout computes the pixel positions of the visualization's node
// graph as a pure function of viewport size. Nothing here is cached between
// calls: every resize recomputes the whole frame.
package layout

import "math"

const (
	// Layer widths are fixed by the visualization regardless of the trained
	// network; the summarizer truncates or pads to match.
	Hidden1Nodes = 16
	Hidden2Nodes = 16
	OutputNodes  = 10

	// GridSide is the input-preview cell grid dimension.
	GridSide = 14

	// Columns sit at i/columnSlots of the viewport width, i = 1..4.
	columnSlots = 5

	gridWidthFill  = 0.85
	gridHeightFill = 0.75
	maxCellSize    = 14.0

	// minViewport guards the ratios below against zero-sized viewports.
	minViewport = 1.0
)

// Point is a pixel position.
type Point struct {
	X, Y float64
}

// Grid describes the input-preview cell matrix: top-left origin, square
// cells, row-major.
type Grid struct {
	Origin Point
	Cell   float64
}

// CellAt returns the top-left corner of cell (col, row).
func (g Grid) CellAt(col, row int) Point {
	return Point{
		X: g.Origin.X + float64(col)*g.Cell,
		Y: g.Origin.Y + float64(row)*g.Cell,
	}
}

// Frame holds one fully computed layout. Layers[0..2] are the two hidden
// columns and the output column.
type Frame struct {
	Width, Height float64
	Input         Grid
	Layers        [3][]Point
}

// Compute lays out the node graph for a viewport. Degenerate dimensions are
// clamped before any ratio is taken, so a zero-sized viewport still yields a
// defined (if useless) frame.
func Compute(width, height float64) Frame {
	width = math.Max(width, minViewport)
	height = math.Max(height, minViewport)

	f := Frame{Width: width, Height: height}

	counts := [3]int{Hidden1Nodes, Hidden2Nodes, OutputNodes}
	for layer, n := range counts {
		x := width * float64(layer+2) / columnSlots
		gap := height / float64(n+1)
		pts := make([]Point, n)
		for i := range pts {
			pts[i] = Point{X: x, Y: gap * float64(i+1)}
		}
		f.Layers[layer] = pts
	}

	colWidth := width / columnSlots
	cell := math.Min(colWidth*gridWidthFill/GridSide, height*gridHeightFill/GridSide)
	cell = math.Min(cell, maxCellSize)

	gridSize := cell * GridSide
	f.Input = Grid{
		Origin: Point{
			X: width/columnSlots - gridSize/2,
			Y: height/2 - gridSize/2,
		},
		Cell: cell,
	}
	return f
}
