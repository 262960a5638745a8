// Package pipeline chains the classification stages end to end: raw strokes
// or a decoded image go in, a canonical bitmap, a prediction, and ready-made
// animation targets come out. Hosts and exporters share this glue so the
// normalize → predict → summarize ordering lives in one place.
package pipeline

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/san-kum/neurosketch/internal/anim"
	"github.com/san-kum/neurosketch/internal/classifier"
	"github.com/san-kum/neurosketch/internal/imaging"
	"github.com/san-kum/neurosketch/internal/summary"
)

// Result is one classified drawing.
type Result struct {
	Bitmap     *imaging.Gray
	Prediction *classifier.Prediction
}

// Classify normalizes src and runs it through the classifier.
func Classify(c *classifier.Classifier, src imaging.Bitmap) (*Result, error) {
	g := imaging.Normalize(src)
	pred, err := c.Predict(g)
	if err != nil {
		return nil, err
	}
	return &Result{Bitmap: g, Prediction: pred}, nil
}

// Targets converts a classification result into animation targets: the
// 14×14 preview from the canonical bitmap plus the summarized activation
// vector of each layer.
func (r *Result) Targets() anim.Targets {
	t := anim.Targets{Preview: imaging.Preview(r.Bitmap)}
	if r.Prediction == nil {
		return t
	}
	layers := r.Prediction.Layers
	if len(layers) > 0 {
		t.Hidden1 = summary.Summarize(layers[0])
	}
	if len(layers) > 1 {
		t.Hidden2 = summary.Summarize(layers[1])
	}
	if len(layers) > 2 {
		t.Output = summary.Summarize(layers[2])
	}
	return t
}

// LoadImage decodes a PNG or JPEG file into a bitmap for classification.
func LoadImage(path string) (imaging.Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("pipeline: decode %s: %w", path, err)
	}
	return imaging.FromImage(img), nil
}
