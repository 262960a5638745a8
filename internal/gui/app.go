package gui

import (
	"fmt"
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/neurosketch/internal/anim"
	"github.com/san-kum/neurosketch/internal/classifier"
	"github.com/san-kum/neurosketch/internal/config"
	"github.com/san-kum/neurosketch/internal/imaging"
	"github.com/san-kum/neurosketch/internal/layout"
	"github.com/san-kum/neurosketch/internal/pipeline"
	"github.com/san-kum/neurosketch/internal/render"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 12, 255)    // Deep Black
	ColAccent  = rl.NewColor(180, 180, 180, 255) // Soft White
	ColSelect  = rl.NewColor(255, 255, 255, 255) // Bright White
	ColText    = rl.NewColor(140, 140, 140, 255) // Neutral Gray
	ColTextDim = rl.NewColor(60, 60, 60, 255)    // Dark Gray (Subtle)
	ColInk     = rl.NewColor(235, 235, 245, 255) // Ink on the stroke pane
	ColWarn    = rl.NewColor(255, 89, 100, 255)  // Status warnings
)

// Stroke pane geometry, clear of the preview grid the layout engine places
// at the left fifth of the window.
const (
	paneX    = 40
	paneY    = 470
	paneSize = 220
)

type App struct {
	Clf    *classifier.Classifier
	Cfg    *config.Config
	Font   rl.Font
	Stroke *Stroke

	pump  *anim.FramePump
	Sched *anim.Scheduler
	Frame layout.Frame

	Pred   *classifier.Prediction
	Status string

	drawing bool
	quit    bool

	strokeTex rl.Texture2D
	strokePix []color.RGBA
}

func initWindow(w, h int) {
	rl.InitWindow(int32(w), int32(h), "neurosketch")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp wires the app against an already-created window.
func NewApp(cfg *config.Config, clf *classifier.Classifier) *App {
	app := &App{
		Clf:    clf,
		Cfg:    cfg,
		Font:   loadFont(),
		Stroke: NewStroke(paneSize, cfg.Window.BrushRadius),
		pump:   anim.NewFramePump(),
		Frame:  layout.Compute(float64(cfg.Window.Width), float64(cfg.Window.Height)),
	}
	app.Sched = anim.New(app.pump, nil)

	img := rl.GenImageColor(paneSize, paneSize, rl.Black)
	app.strokeTex = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	app.strokePix = make([]color.RGBA, paneSize*paneSize)

	if clf == nil || !clf.Ready() {
		app.Status = "no trained model - run: neurosketch train"
	}
	return app
}

// Run opens the window and blocks in the update-draw loop until quit.
func Run(cfg *config.Config, clf *classifier.Classifier) {
	initWindow(cfg.Window.Width, cfg.Window.Height)
	defer rl.CloseWindow()
	app := NewApp(cfg, clf)
	app.RunLoop()
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyC) {
		a.Stroke.Clear()
		a.Sched.Reset()
		a.Pred = nil
	}

	a.updateStroke()

	// Scheduled animation callbacks run on the frame clock in milliseconds.
	a.pump.Pump(rl.GetTime() * 1000)
}

func (a *App) updateStroke() {
	mouse := rl.GetMousePosition()
	bx := float64(mouse.X) - paneX
	by := float64(mouse.Y) - paneY
	inside := bx >= 0 && by >= 0 && bx < paneSize && by < paneSize

	if rl.IsMouseButtonDown(rl.MouseLeftButton) && (inside || a.drawing) {
		if !a.drawing {
			a.drawing = true
			a.Stroke.Begin(bx, by)
		} else {
			a.Stroke.Extend(bx, by)
		}
		return
	}

	if a.drawing {
		a.drawing = false
		a.Stroke.End()
		a.Classify()
	}
}

// Classify runs the full pipeline on the current stroke surface and starts
// an animation pass. Stale passes are superseded by the scheduler.
func (a *App) Classify() {
	if imaging.IsEmpty(a.Stroke.Bitmap()) {
		return
	}
	if a.Clf == nil || !a.Clf.Ready() {
		a.Status = "no trained model - run: neurosketch train"
		return
	}

	res, err := pipeline.Classify(a.Clf, a.Stroke.Bitmap())
	if err != nil {
		a.Status = fmt.Sprintf("classify failed: %v", err)
		return
	}

	a.Pred = res.Prediction
	a.Status = ""
	a.Sched.Animate(res.Targets())
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.drawStrokePane()
	render.Draw(&rlCanvas{font: a.Font}, a.Frame, a.Sched)
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) drawStrokePane() {
	bm := a.Stroke.Bitmap()
	for y := 0; y < paneSize; y++ {
		for x := 0; x < paneSize; x++ {
			v := bm.Intensity(x, y)
			a.strokePix[y*paneSize+x] = color.RGBA{
				R: uint8(uint32(ColInk.R) * uint32(v) / 255),
				G: uint8(uint32(ColInk.G) * uint32(v) / 255),
				B: uint8(uint32(ColInk.B) * uint32(v) / 255),
				A: 255,
			}
		}
	}
	rl.UpdateTexture(a.strokeTex, a.strokePix)

	rl.DrawTexture(a.strokeTex, paneX, paneY, rl.White)
	rl.DrawRectangleLines(paneX-1, paneY-1, paneSize+2, paneSize+2, ColTextDim)
	a.drawText("draw here", paneX, paneY+paneSize+8, 14, ColTextDim)
}

func (a *App) DrawHUD() {
	a.drawText("neurosketch", 30, 30, 24, ColSelect)
	a.drawText(":: digit visualizer", 200, 34, 16, ColText)

	if a.Pred != nil {
		a.drawText(fmt.Sprintf("prediction: %d", a.Pred.Digit), 1020, 30, 20, ColSelect)
		a.drawText(fmt.Sprintf("confidence: %.0f%%", a.Pred.Probs[a.Pred.Digit]*100), 1020, 58, 14, ColText)
	}
	if a.Status != "" {
		a.drawText(a.Status, 30, 60, 14, ColWarn)
	}

	a.drawText("[C] CLEAR  [Q] QUIT", 1040, 680, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, 680, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, col rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, col)
}
