// Package tui replays a classification pass in the terminal: the normalized
// digit as shaded cells, each layer's nodes lighting up in sequence, and the
// final probability chart.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/neurosketch/internal/anim"
	"github.com/san-kum/neurosketch/internal/layout"
	"github.com/san-kum/neurosketch/internal/pipeline"
	"github.com/san-kum/neurosketch/internal/summary"
)

var (
	cyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	white   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green   = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	magenta = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
)

var layerNames = [3]string{"hidden 1", "hidden 2", "output"}

type Model struct {
	res   *pipeline.Result
	pump  *anim.FramePump
	sched *anim.Scheduler
	start time.Time
	done  bool

	width  int
	height int
}

// NewModel wires a watch view around an already-classified result.
func NewModel(res *pipeline.Result) *Model {
	m := &Model{
		res:   res,
		pump:  anim.NewFramePump(),
		width: 80,
	}
	m.sched = anim.New(m.pump, nil)
	return m
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Init() tea.Cmd {
	m.replay()
	return tick()
}

func (m *Model) replay() {
	m.start = time.Now()
	m.done = false
	t := m.res.Targets()
	t.OnComplete = func() { m.done = true }
	m.sched.Animate(t)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "escape":
			return m, tea.Quit
		case "r":
			m.replay()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.pump.Pump(float64(time.Since(m.start)) / float64(time.Millisecond))
		return m, tick()
	}
	return m, nil
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n")
	b.WriteString("        " + cyan.Render("n e u r o s k e t c h") + "\n")
	b.WriteString(dimmer.Render("    ╺━━━━━━━━━━━━━━━━━━━━━━━━━━━╸") + "\n\n")

	status := yellow.Render("○ animating")
	if m.done {
		status = green.Render("● settled")
	}
	b.WriteString(fmt.Sprintf("    %s   %s\n\n", status,
		white.Render(fmt.Sprintf("prediction: %d", m.res.Prediction.Digit))))

	m.viewPreview(&b)
	b.WriteString("\n")
	m.viewLayers(&b)
	b.WriteString("\n")
	m.viewChart(&b)

	b.WriteString("\n" + dim.Render("    r replay   q quit") + "\n")
	return b.String()
}

// viewPreview renders the 14×14 input preview, two cells per pixel so the
// aspect ratio survives the terminal's tall glyphs.
func (m *Model) viewPreview(b *strings.Builder) {
	shades := []rune{' ', '░', '▒', '▓', '█'}
	preview := m.sched.Preview()
	for y := 0; y < layout.GridSide; y++ {
		b.WriteString("    ")
		for x := 0; x < layout.GridSide; x++ {
			v := preview[y*layout.GridSide+x]
			idx := int(v * float64(len(shades)-1))
			if idx >= len(shades) {
				idx = len(shades) - 1
			}
			if idx < 0 {
				idx = 0
			}
			b.WriteString(dim.Render(strings.Repeat(string(shades[idx]), 2)))
		}
		b.WriteString("\n")
	}
}

func (m *Model) viewLayers(b *strings.Builder) {
	for l := 0; l < 3; l++ {
		b.WriteString("    " + dim.Render(fmt.Sprintf("%-9s", layerNames[l])))
		for _, n := range m.sched.Layer(l) {
			b.WriteString(nodeGlyph(n.Current))
		}
		if l < len(m.res.Prediction.Layers) {
			b.WriteString(dimmer.Render(fmt.Sprintf(" peak %.2f", summary.Peak(m.res.Prediction.Layers[l]))))
		}
		b.WriteString("\n")
	}
}

func nodeGlyph(v float64) string {
	switch {
	case v > 0.75:
		return yellow.Render("█ ")
	case v > 0.35:
		return cyan.Render("▓ ")
	case v > 0.05:
		return dim.Render("▒ ")
	default:
		return dimmer.Render("· ")
	}
}

func (m *Model) viewChart(b *strings.Builder) {
	probs := make([]float64, len(m.res.Prediction.Probs))
	copy(probs, m.res.Prediction.Probs[:])

	chart := asciigraph.Plot(probs,
		asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("digit probabilities"))
	for _, line := range strings.Split(chart, "\n") {
		b.WriteString("    " + dim.Render(line) + "\n")
	}

	b.WriteString("    ")
	for d := 0; d < 10; d++ {
		label := fmt.Sprintf("%d:%.2f ", d, m.res.Prediction.Probs[d])
		if d == m.res.Prediction.Digit {
			b.WriteString(magenta.Render(label))
		} else {
			b.WriteString(dimmer.Render(label))
		}
	}
	b.WriteString("\n")
}

// Run classifies an image file and blocks in the watch view until quit.
func Run(res *pipeline.Result) error {
	p := tea.NewProgram(NewModel(res))
	_, err := p.Run()
	return err
}
