package classifier

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/san-kum/neurosketch/internal/imaging"
)

func trainTiny(t *testing.T, c *Classifier) {
	t.Helper()
	inputs := make([][]float32, 4)
	labels := []int{0, 1, 0, 1}
	for i := range inputs {
		v := make([]float32, InputSize)
		for j := range v {
			if j%2 == i%2 {
				v[j] = 1
			}
		}
		inputs[i] = v
	}
	if _, err := c.TrainSamples(inputs, labels, TrainOptions{Epochs: 2, LearningRate: 0.1}); err != nil {
		t.Fatalf("TrainSamples: %v", err)
	}
}

func TestPredictBeforeTraining(t *testing.T) {
	c := Build(8, 8)
	if c.Ready() {
		t.Fatal("untrained classifier reports ready")
	}
	if _, err := c.Predict(&imaging.Gray{}); !errors.Is(err, ErrNotTrained) {
		t.Fatalf("got %v, want ErrNotTrained", err)
	}
}

func TestTrainSamplesEmpty(t *testing.T) {
	c := Build(8, 8)
	if _, err := c.TrainSamples(nil, nil, TrainOptions{}); !errors.Is(err, ErrNoData) {
		t.Fatalf("got %v, want ErrNoData", err)
	}
}

func TestPredictShapes(t *testing.T) {
	c := Build(8, 6)
	trainTiny(t, c)

	g := &imaging.Gray{}
	for i := range g.Pix {
		g.Pix[i] = uint8(i % 256)
	}
	p, err := c.Predict(g)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}

	if p.Digit < 0 || p.Digit >= Classes {
		t.Errorf("digit %d out of range", p.Digit)
	}
	sum := 0.0
	for _, v := range p.Probs {
		if v < 0 || v > 1 {
			t.Errorf("probability %v outside [0,1]", v)
		}
		sum += v
	}
	if math.Abs(sum-1) > 1e-3 {
		t.Errorf("probabilities sum to %v, want ~1", sum)
	}

	wantShapes := [][2]int{{1, 8}, {1, 6}, {1, Classes}}
	if len(p.Layers) != len(wantShapes) {
		t.Fatalf("got %d layer tensors, want %d", len(p.Layers), len(wantShapes))
	}
	for i, ten := range p.Layers {
		if len(ten.Shape) != 2 || ten.Shape[0] != wantShapes[i][0] || ten.Shape[1] != wantShapes[i][1] {
			t.Errorf("layer %d shape %v, want %v", i, ten.Shape, wantShapes[i])
		}
		if len(ten.Data) != wantShapes[i][1] {
			t.Errorf("layer %d has %d values, want %d", i, len(ten.Data), wantShapes[i][1])
		}
	}
}

func TestPredictNilBitmap(t *testing.T) {
	c := Build(8, 8)
	trainTiny(t, c)
	if _, err := c.Predict(nil); !errors.Is(err, ErrBadInput) {
		t.Fatalf("got %v, want ErrBadInput", err)
	}
}

func TestSaveRequiresTraining(t *testing.T) {
	c := Build(8, 8)
	if err := c.Save(filepath.Join(t.TempDir(), "m.json")); !errors.Is(err, ErrNotTrained) {
		t.Fatalf("got %v, want ErrNotTrained", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	c := Build(8, 6)
	trainTiny(t, c)

	path := filepath.Join(t.TempDir(), "m.json")
	if err := c.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path, 8, 6)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !loaded.Ready() {
		t.Fatal("loaded classifier not ready")
	}

	g := &imaging.Gray{}
	for i := range g.Pix {
		g.Pix[i] = uint8((i * 3) % 256)
	}
	a, err := c.Predict(g)
	if err != nil {
		t.Fatalf("Predict original: %v", err)
	}
	b, err := loaded.Predict(g)
	if err != nil {
		t.Fatalf("Predict loaded: %v", err)
	}
	if a.Digit != b.Digit {
		t.Errorf("loaded model predicts %d, original %d", b.Digit, a.Digit)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json"), 8, 8); err == nil {
		t.Fatal("expected error for missing model file")
	}
}

func TestTrainOptionDefaults(t *testing.T) {
	o := TrainOptions{}.withDefaults()
	if o.Epochs != defaultEpochs || o.LearningRate != defaultLearningRate {
		t.Errorf("defaults not applied: %+v", o)
	}
	o = TrainOptions{Epochs: 3, LearningRate: 0.2}.withDefaults()
	if o.Epochs != 3 || o.LearningRate != 0.2 {
		t.Errorf("explicit options overridden: %+v", o)
	}
}
