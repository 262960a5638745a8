package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/neurosketch/internal/render"
)

// rlCanvas adapts the raylib immediate-mode API to the painter's Canvas
// contract. Draw calls must happen between BeginDrawing and EndDrawing.
type rlCanvas struct {
	font rl.Font
}

func rlColor(c render.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}

func (c *rlCanvas) Line(x1, y1, x2, y2, width float64, col render.Color) {
	rl.DrawLineEx(
		rl.NewVector2(float32(x1), float32(y1)),
		rl.NewVector2(float32(x2), float32(y2)),
		float32(width), rlColor(col))
}

func (c *rlCanvas) FillRect(x, y, w, h float64, col render.Color) {
	rl.DrawRectangleRec(rl.NewRectangle(float32(x), float32(y), float32(w), float32(h)), rlColor(col))
}

func (c *rlCanvas) FillCircle(x, y, r float64, col render.Color) {
	rl.DrawCircleV(rl.NewVector2(float32(x), float32(y)), float32(r), rlColor(col))
}

func (c *rlCanvas) GradientCircle(x, y, r float64, inner, outer render.Color) {
	rl.DrawCircleGradient(int32(x), int32(y), float32(r), rlColor(inner), rlColor(outer))
}

func (c *rlCanvas) Text(s string, x, y, size float64, col render.Color) {
	m := rl.MeasureTextEx(c.font, s, float32(size), 1)
	pos := rl.NewVector2(float32(x)-m.X/2, float32(y)-m.Y/2)
	rl.DrawTextEx(c.font, s, pos, float32(size), 1, rlColor(col))
}
