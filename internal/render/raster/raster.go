// Package raster backs the visualization painter with a pure-software 2D
// canvas, for snapshot export and for pixel-level tests that need no window.
package raster

import (
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"

	"github.com/san-kum/neurosketch/internal/render"
)

// fontPath is where the GUI font lives on the systems this ships to; text
// silently drops out of software snapshots when it is absent.
const fontPath = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"

// Canvas adapts a gg drawing context to the [render.Canvas] contract.
type Canvas struct {
	dc   *gg.Context
	font *text.FontSource
}

// New creates a software canvas cleared to the visualization background.
func New(w, h int) *Canvas {
	c := &Canvas{dc: gg.NewContext(w, h)}
	if src, err := text.NewFontSourceFromFile(fontPath); err == nil {
		c.font = src
	}
	c.Clear(render.Background())
	return c
}

// Clear fills the whole surface with one color.
func (c *Canvas) Clear(col render.Color) {
	c.dc.ClearWithColor(rgba(col))
}

func (c *Canvas) Line(x1, y1, x2, y2, width float64, col render.Color) {
	c.dc.SetRGBA(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, float64(col.A)/255)
	c.dc.SetLineWidth(width)
	c.dc.DrawLine(x1, y1, x2, y2)
	_ = c.dc.Stroke()
}

func (c *Canvas) FillRect(x, y, w, h float64, col render.Color) {
	c.dc.SetRGBA(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, float64(col.A)/255)
	c.dc.DrawRectangle(x, y, w, h)
	_ = c.dc.Fill()
}

func (c *Canvas) FillCircle(x, y, r float64, col render.Color) {
	c.dc.SetRGBA(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, float64(col.A)/255)
	c.dc.DrawCircle(x, y, r)
	_ = c.dc.Fill()
}

func (c *Canvas) GradientCircle(x, y, r float64, inner, outer render.Color) {
	brush := gg.NewRadialGradientBrush(x, y, 0, r).
		AddColorStop(0, rgba(inner)).
		AddColorStop(1, rgba(outer))
	c.dc.SetFillBrush(brush)
	c.dc.DrawCircle(x, y, r)
	_ = c.dc.Fill()
}

func (c *Canvas) Text(s string, x, y, size float64, col render.Color) {
	if c.font == nil {
		return
	}
	c.dc.SetFont(c.font.Face(size))
	c.dc.SetRGBA(float64(col.R)/255, float64(col.G)/255, float64(col.B)/255, float64(col.A)/255)
	c.dc.DrawStringAnchored(s, x, y, 0.5, 0.5)
}

// Image returns the rendered surface.
func (c *Canvas) Image() image.Image { return c.dc.Image() }

// SavePNG writes the surface to path.
func (c *Canvas) SavePNG(path string) error { return c.dc.SavePNG(path) }

func rgba(c render.Color) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

