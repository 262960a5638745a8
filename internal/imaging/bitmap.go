package imaging

import (
	"image"
	"image/color"
)

// Bitmap is the read-only contract a drawing surface has to satisfy before it
// can be normalized. Intensity is a single channel in 0..255; anything above
// [InkThreshold] counts as drawn ink.
type Bitmap interface {
	Width() int
	Height() int
	Intensity(x, y int) uint8
}

// Gray is the canonical 28×28 single-channel image produced by [Normalize].
// The zero value is an all-black image.
type Gray struct {
	Pix [Side * Side]uint8
}

func (g *Gray) Width() int  { return Side }
func (g *Gray) Height() int { return Side }

func (g *Gray) Intensity(x, y int) uint8 {
	if x < 0 || y < 0 || x >= Side || y >= Side {
		return 0
	}
	return g.Pix[y*Side+x]
}

// Floats returns the pixel data scaled to [0,1], row-major, the layout the
// classifier input layer expects.
func (g *Gray) Floats() []float32 {
	out := make([]float32, Side*Side)
	for i, p := range g.Pix {
		out[i] = float32(p) / 255.0
	}
	return out
}

// Image copies the bitmap into a standard library grayscale image.
func (g *Gray) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, Side, Side))
	copy(img.Pix, g.Pix[:])
	return img
}

// memBitmap adapts a decoded image to the Bitmap contract. Intensity is the
// red channel, matching what the stroke canvas reports for white-on-black ink.
type memBitmap struct {
	w, h int
	pix  []uint8
}

func (m *memBitmap) Width() int  { return m.w }
func (m *memBitmap) Height() int { return m.h }

func (m *memBitmap) Intensity(x, y int) uint8 {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return 0
	}
	return m.pix[y*m.w+x]
}

// FromImage flattens an arbitrary decoded image into a Bitmap.
func FromImage(img image.Image) Bitmap {
	b := img.Bounds()
	m := &memBitmap{w: b.Dx(), h: b.Dy(), pix: make([]uint8, b.Dx()*b.Dy())}
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			c := color.RGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA)
			m.pix[y*m.w+x] = c.R
		}
	}
	return m
}

// NewBitmap returns a writable in-memory Bitmap, used by the stroke canvas
// and by tests.
func NewBitmap(w, h int) *MemBitmap {
	return &MemBitmap{memBitmap{w: w, h: h, pix: make([]uint8, w*h)}}
}

// MemBitmap is a mutable in-memory intensity surface.
type MemBitmap struct {
	memBitmap
}

// Set writes one pixel, ignoring out-of-range coordinates.
func (m *MemBitmap) Set(x, y int, v uint8) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.pix[y*m.w+x] = v
}

// Clear resets every pixel to zero.
func (m *MemBitmap) Clear() {
	for i := range m.pix {
		m.pix[i] = 0
	}
}
