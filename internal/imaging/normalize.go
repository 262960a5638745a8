// Package imaging converts an arbitrary freehand stroke surface into the
// canonical 28×28 grayscale input the classifier consumes.
//
// The pipeline is deterministic and never fails: an empty canvas normalizes
// to an all-black image. The drawn region is cropped to its ink bounding box,
// padded by a fixed fraction, scaled (up or down) to fit a 20×20 inner
// square, and resampled bilinearly onto the black 28×28 canvas, centered.
package imaging

import (
	"image"
	"math"

	xdraw "golang.org/x/image/draw"
)

const (
	// InkThreshold is the intensity above which a pixel counts as drawn ink.
	// IsEmpty and Normalize share it so emptiness detection and cropping
	// never drift apart.
	InkThreshold = 20

	// Side is the canonical bitmap side length.
	Side = 28

	// InnerSide is the square the digit is scaled to fit inside.
	InnerSide = 20

	// PreviewSide is the side length of the down-sampled input preview.
	PreviewSide = 14

	// padFraction of the larger bounding-box dimension is added around the
	// crop before scaling, so strokes don't touch the inner square edge.
	padFraction = 0.22
)

// Box is a closed pixel rectangle: X0 ≤ X1 and Y0 ≤ Y1 whenever it holds any
// ink at all.
type Box struct {
	X0, Y0, X1, Y1 int
}

func (b Box) Dx() int { return b.X1 - b.X0 + 1 }
func (b Box) Dy() int { return b.Y1 - b.Y0 + 1 }

// IsEmpty reports whether no pixel of src exceeds the ink threshold.
func IsEmpty(src Bitmap) bool {
	_, ok := InkBounds(src)
	return !ok
}

// InkBounds scans every pixel and returns the minimal box containing all ink
// pixels. ok is false when the canvas holds no ink.
func InkBounds(src Bitmap) (box Box, ok bool) {
	w, h := src.Width(), src.Height()
	box = Box{X0: w, Y0: h, X1: -1, Y1: -1}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if src.Intensity(x, y) <= InkThreshold {
				continue
			}
			if x < box.X0 {
				box.X0 = x
			}
			if x > box.X1 {
				box.X1 = x
			}
			if y < box.Y0 {
				box.Y0 = y
			}
			if y > box.Y1 {
				box.Y1 = y
			}
		}
	}
	return box, box.X1 >= 0
}

// Normalize re-derives the canonical 28×28 image from src. The result is a
// fresh allocation on every call; src is never written to.
func Normalize(src Bitmap) *Gray {
	out := &Gray{}

	box, ok := InkBounds(src)
	if !ok {
		return out
	}

	// Symmetric padding, clamped to the source extents so the crop never
	// reads out of bounds even when the stroke touches an edge.
	pad := int(math.Round(float64(maxInt(box.Dx(), box.Dy())) * padFraction))
	box.X0 = maxInt(box.X0-pad, 0)
	box.Y0 = maxInt(box.Y0-pad, 0)
	box.X1 = minInt(box.X1+pad, src.Width()-1)
	box.Y1 = minInt(box.Y1+pad, src.Height()-1)

	cw, ch := box.Dx(), box.Dy()
	// A single-pixel dot still crops a 1×1 region; Dx/Dy are at least 1 by
	// construction, so the scale below cannot divide by zero.
	scale := math.Min(float64(InnerSide)/float64(cw), float64(InnerSide)/float64(ch))

	sw := clampInt(int(math.Round(float64(cw)*scale)), 1, InnerSide)
	sh := clampInt(int(math.Round(float64(ch)*scale)), 1, InnerSide)
	offX := (Side - sw) / 2
	offY := (Side - sh) / 2

	crop := image.NewGray(image.Rect(0, 0, cw, ch))
	for y := 0; y < ch; y++ {
		for x := 0; x < cw; x++ {
			crop.Pix[y*crop.Stride+x] = src.Intensity(box.X0+x, box.Y0+y)
		}
	}

	dst := image.NewGray(image.Rect(0, 0, Side, Side))
	xdraw.BiLinear.Scale(dst, image.Rect(offX, offY, offX+sw, offY+sh), crop, crop.Bounds(), xdraw.Src, nil)

	for y := 0; y < Side; y++ {
		copy(out.Pix[y*Side:(y+1)*Side], dst.Pix[y*dst.Stride:y*dst.Stride+Side])
	}
	return out
}

// Preview down-samples the canonical image to a 14×14 vector in [0,1] by
// averaging non-overlapping 2×2 blocks. It feeds the input-layer
// visualization only and is independent of the trained model.
func Preview(g *Gray) []float64 {
	out := make([]float64, PreviewSide*PreviewSide)
	for cy := 0; cy < PreviewSide; cy++ {
		for cx := 0; cx < PreviewSide; cx++ {
			sum := 0
			for dy := 0; dy < 2; dy++ {
				for dx := 0; dx < 2; dx++ {
					sum += int(g.Pix[(cy*2+dy)*Side+cx*2+dx])
				}
			}
			out[cy*PreviewSide+cx] = float64(sum) / 4.0 / 255.0
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
