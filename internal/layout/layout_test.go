package layout

import (
	"math"
	"testing"
)

func TestComputeColumns(t *testing.T) {
	f := Compute(1000, 500)

	wantX := []float64{400, 600, 800}
	for layer, pts := range f.Layers {
		for i, p := range pts {
			if math.Abs(p.X-wantX[layer]) > 1e-9 {
				t.Fatalf("layer %d node %d at x=%f, want %f", layer, i, p.X, wantX[layer])
			}
		}
	}
}

func TestComputeVerticalSpacing(t *testing.T) {
	f := Compute(1000, 680)

	for layer, pts := range f.Layers {
		n := len(pts)
		gap := 680.0 / float64(n+1)

		if math.Abs(pts[0].Y-gap) > 1e-9 {
			t.Errorf("layer %d: first node y=%f, want %f", layer, pts[0].Y, gap)
		}
		// Symmetric margins above the first and below the last node.
		top := pts[0].Y
		bottom := 680.0 - pts[n-1].Y
		if math.Abs(top-bottom) > 1e-9 {
			t.Errorf("layer %d: margins %f vs %f not symmetric", layer, top, bottom)
		}
		for i := 1; i < n; i++ {
			if math.Abs(pts[i].Y-pts[i-1].Y-gap) > 1e-9 {
				t.Errorf("layer %d: uneven gap between nodes %d and %d", layer, i-1, i)
			}
		}
	}
}

func TestComputeNodeCounts(t *testing.T) {
	f := Compute(1280, 720)
	want := []int{Hidden1Nodes, Hidden2Nodes, OutputNodes}
	for layer, pts := range f.Layers {
		if len(pts) != want[layer] {
			t.Errorf("layer %d has %d nodes, want %d", layer, len(pts), want[layer])
		}
	}
}

func TestComputeGridCentered(t *testing.T) {
	f := Compute(1280, 720)

	size := f.Input.Cell * GridSide
	centerX := f.Input.Origin.X + size/2
	centerY := f.Input.Origin.Y + size/2

	if math.Abs(centerX-1280.0/5) > 1e-9 {
		t.Errorf("grid center x=%f, want column at %f", centerX, 1280.0/5)
	}
	if math.Abs(centerY-360) > 1e-9 {
		t.Errorf("grid center y=%f, want %f", centerY, 360.0)
	}
	if f.Input.Cell <= 0 || f.Input.Cell > maxCellSize {
		t.Errorf("cell size %f outside (0, %f]", f.Input.Cell, maxCellSize)
	}
}

func TestComputeGridFitsColumn(t *testing.T) {
	cases := []struct{ w, h float64 }{
		{1280, 720}, {400, 900}, {2000, 300}, {150, 150},
	}
	for _, tc := range cases {
		f := Compute(tc.w, tc.h)
		size := f.Input.Cell * GridSide
		if size > tc.w/5*gridWidthFill+1e-9 {
			t.Errorf("%vx%v: grid width %f exceeds column width", tc.w, tc.h, size)
		}
		if size > tc.h*gridHeightFill+1e-9 {
			t.Errorf("%vx%v: grid height %f exceeds height bound", tc.w, tc.h, size)
		}
	}
}

func TestComputeDegenerateViewport(t *testing.T) {
	for _, tc := range []struct{ w, h float64 }{{0, 0}, {-5, 100}, {100, 0}} {
		f := Compute(tc.w, tc.h)
		for layer, pts := range f.Layers {
			for i, p := range pts {
				if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
					t.Fatalf("viewport %vx%v: layer %d node %d not finite", tc.w, tc.h, layer, i)
				}
			}
		}
		if math.IsNaN(f.Input.Cell) || f.Input.Cell < 0 {
			t.Errorf("viewport %vx%v: bad cell size %f", tc.w, tc.h, f.Input.Cell)
		}
	}
}

func TestCellAt(t *testing.T) {
	g := Grid{Origin: Point{X: 10, Y: 20}, Cell: 4}
	p := g.CellAt(3, 2)
	if p.X != 22 || p.Y != 28 {
		t.Errorf("got (%f, %f), want (22, 28)", p.X, p.Y)
	}
}
