package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/neurosketch/internal/render"
)

// SVG is a vector canvas that accumulates the painter's primitives as SVG
// elements. Gradient fills get one radialGradient def each.
type SVG struct {
	width     int
	height    int
	body      strings.Builder
	defs      strings.Builder
	gradients int
}

// NewSVG opens a canvas with a filled background rect.
func NewSVG(width, height int) *SVG {
	s := &SVG{width: width, height: height}
	bg := render.Background()
	s.body.WriteString(fmt.Sprintf("<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", hexColor(bg)))
	return s
}

func (s *SVG) Line(x1, y1, x2, y2, width float64, c render.Color) {
	s.body.WriteString(fmt.Sprintf(
		"<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"%s\" stroke-width=\"%.1f\" stroke-opacity=\"%.3f\"/>\n",
		x1, y1, x2, y2, hexColor(c), width, opacity(c)))
}

func (s *SVG) FillRect(x, y, w, h float64, c render.Color) {
	s.body.WriteString(fmt.Sprintf(
		"<rect x=\"%.1f\" y=\"%.1f\" width=\"%.1f\" height=\"%.1f\" fill=\"%s\" fill-opacity=\"%.3f\"/>\n",
		x, y, w, h, hexColor(c), opacity(c)))
}

func (s *SVG) FillCircle(x, y, r float64, c render.Color) {
	s.body.WriteString(fmt.Sprintf(
		"<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"%s\" fill-opacity=\"%.3f\"/>\n",
		x, y, r, hexColor(c), opacity(c)))
}

func (s *SVG) GradientCircle(x, y, r float64, inner, outer render.Color) {
	id := fmt.Sprintf("g%d", s.gradients)
	s.gradients++
	s.defs.WriteString(fmt.Sprintf(
		"<radialGradient id=\"%s\"><stop offset=\"0%%\" stop-color=\"%s\" stop-opacity=\"%.3f\"/><stop offset=\"100%%\" stop-color=\"%s\" stop-opacity=\"%.3f\"/></radialGradient>\n",
		id, hexColor(inner), opacity(inner), hexColor(outer), opacity(outer)))
	s.body.WriteString(fmt.Sprintf(
		"<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\" fill=\"url(#%s)\"/>\n", x, y, r, id))
}

func (s *SVG) Text(text string, x, y, size float64, c render.Color) {
	s.body.WriteString(fmt.Sprintf(
		"<text x=\"%.1f\" y=\"%.1f\" font-size=\"%.1f\" font-family=\"monospace\" fill=\"%s\" fill-opacity=\"%.3f\" text-anchor=\"middle\" dominant-baseline=\"central\">%s</text>\n",
		x, y, size, hexColor(c), opacity(c), escapeText(text)))
}

// String renders the whole document.
func (s *SVG) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%d\" height=\"%d\" viewBox=\"0 0 %d %d\">\n",
		s.width, s.height, s.width, s.height))
	if s.gradients > 0 {
		sb.WriteString("<defs>\n")
		sb.WriteString(s.defs.String())
		sb.WriteString("</defs>\n")
	}
	sb.WriteString(s.body.String())
	sb.WriteString("</svg>\n")
	return sb.String()
}

func hexColor(c render.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func opacity(c render.Color) float64 {
	return float64(c.A) / 255
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
