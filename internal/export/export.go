// Package export writes still snapshots of the finished visualization. A
// snapshot drives a full animation pass headlessly so the rendered state is
// the same settled frame an interactive host would show.
package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/neurosketch/internal/anim"
	"github.com/san-kum/neurosketch/internal/layout"
	"github.com/san-kum/neurosketch/internal/render"
	"github.com/san-kum/neurosketch/internal/render/raster"
)

// frameStep is the synthetic frame interval in milliseconds, 60 FPS.
const frameStep = 1000.0 / 60.0

// settle runs one complete animation pass and returns the scheduler holding
// the final state.
func settle(ctx context.Context, t anim.Targets) (*anim.Scheduler, error) {
	r := anim.NewRunner(frameStep)
	if err := r.Run(ctx, t); err != nil {
		return nil, fmt.Errorf("export: animation pass: %w", err)
	}
	return r.Scheduler(), nil
}

// SnapshotPNG renders the settled visualization to a PNG file.
func SnapshotPNG(ctx context.Context, path string, width, height int, t anim.Targets) error {
	sched, err := settle(ctx, t)
	if err != nil {
		return err
	}

	cv := raster.New(width, height)
	render.Draw(cv, layout.Compute(float64(width), float64(height)), sched)
	if err := cv.SavePNG(path); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

// SnapshotSVG renders the settled visualization to an SVG file.
func SnapshotSVG(ctx context.Context, path string, width, height int, t anim.Targets) error {
	sched, err := settle(ctx, t)
	if err != nil {
		return err
	}

	cv := NewSVG(width, height)
	render.Draw(cv, layout.Compute(float64(width), float64(height)), sched)
	if err := os.WriteFile(path, []byte(cv.String()), 0644); err != nil {
		return fmt.Errorf("export: write %s: %w", path, err)
	}
	return nil
}

// Snapshot picks the format from the output extension (.png or .svg).
func Snapshot(ctx context.Context, path string, width, height int, t anim.Targets) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return SnapshotPNG(ctx, path, width, height, t)
	case ".svg":
		return SnapshotSVG(ctx, path, width, height, t)
	default:
		return fmt.Errorf("export: unsupported output format %q", filepath.Ext(path))
	}
}
