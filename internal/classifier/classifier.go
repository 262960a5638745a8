// Package classifier wraps the network library behind the narrow contract
// the rest of the app consumes: a probability vector over ten digits plus
// raw per-layer activation tensors for the visualization. Training and
// inference mechanics belong to the library; this package only wires them.
package classifier

import (
	"fmt"

	"github.com/openfluke/loom/nn"

	"github.com/san-kum/neurosketch/internal/imaging"
	"github.com/san-kum/neurosketch/internal/summary"
)

const (
	// InputSize is the flattened 28×28 input.
	InputSize = imaging.Side * imaging.Side

	// Classes is the digit count.
	Classes = 10
)

// Prediction is one classification pass: the winning digit, the softmax
// probability vector (sums to ~1), and the hidden/output layer activations
// in network order, ready for the summarizer.
type Prediction struct {
	Digit  int
	Probs  [Classes]float64
	Layers []summary.Tensor
}

// Classifier is a small MLP over loom's grid network: two sigmoid hidden
// layers, a logits layer, and a softmax head.
type Classifier struct {
	net     *nn.Network
	hidden1 int
	hidden2 int
	ready   bool
}

// Build constructs an untrained classifier with the given hidden widths.
func Build(hidden1, hidden2 int) *Classifier {
	net := nn.NewNetwork(InputSize, 1, 1, 4)
	net.BatchSize = 1
	net.SetLayer(0, 0, 0, nn.InitDenseLayer(InputSize, hidden1, nn.ActivationSigmoid))
	net.SetLayer(0, 0, 1, nn.InitDenseLayer(hidden1, hidden2, nn.ActivationSigmoid))
	net.SetLayer(0, 0, 2, nn.InitDenseLayer(hidden2, Classes, nn.ActivationLeakyReLU))
	net.SetLayer(0, 0, 3, nn.InitSoftmaxLayer())

	return &Classifier{net: net, hidden1: hidden1, hidden2: hidden2}
}

// Ready reports whether the classifier can serve predictions.
func (c *Classifier) Ready() bool { return c.ready }

// HiddenSizes returns the two hidden layer widths.
func (c *Classifier) HiddenSizes() (int, int) { return c.hidden1, c.hidden2 }

// Predict runs one forward pass over the canonical bitmap. The step state is
// advanced once per layer so every intermediate activation is available for
// readout afterwards.
func (c *Classifier) Predict(g *imaging.Gray) (*Prediction, error) {
	if !c.ready {
		return nil, ErrNotTrained
	}
	if g == nil {
		return nil, ErrBadInput
	}

	state := c.net.InitStepState(InputSize)
	state.SetInput(g.Floats())
	for i := 0; i < c.net.TotalLayers(); i++ {
		c.net.StepForward(state)
	}

	probs := state.GetOutput()
	if len(probs) < Classes {
		return nil, fmt.Errorf("classifier: network produced %d outputs, want %d", len(probs), Classes)
	}

	p := &Prediction{
		Layers: []summary.Tensor{
			{Data: state.GetLayerOutput(1), Shape: []int{1, c.hidden1}},
			{Data: state.GetLayerOutput(2), Shape: []int{1, c.hidden2}},
			{Data: probs[:Classes], Shape: []int{1, Classes}},
		},
	}
	for i := 0; i < Classes; i++ {
		p.Probs[i] = float64(probs[i])
		if p.Probs[i] > p.Probs[p.Digit] {
			p.Digit = i
		}
	}
	return p, nil
}

// PredictVector classifies an already-flattened input vector. It skips the
// per-layer readout, so it is the cheap path for bulk evaluation.
func (c *Classifier) PredictVector(input []float32) (int, error) {
	if !c.ready {
		return 0, ErrNotTrained
	}
	if len(input) != InputSize {
		return 0, ErrBadInput
	}

	state := c.net.InitStepState(InputSize)
	state.SetInput(input)
	for i := 0; i < c.net.TotalLayers(); i++ {
		c.net.StepForward(state)
	}

	out := state.GetOutput()
	digit := 0
	for i := 1; i < Classes && i < len(out); i++ {
		if out[i] > out[digit] {
			digit = i
		}
	}
	return digit, nil
}

// TrainSamples fits the network on already-vectorized samples. Inputs are
// flattened 28×28 intensities in [0,1]; labels are digits 0..9.
func (c *Classifier) TrainSamples(inputs [][]float32, labels []int, opt TrainOptions) (*TrainResult, error) {
	if len(inputs) == 0 {
		return nil, ErrNoData
	}
	opt = opt.withDefaults()

	cfg := &nn.TrainingConfig{
		Epochs:       opt.Epochs,
		LearningRate: float32(opt.LearningRate),
		UseGPU:       false,
		LossType:     "cross_entropy",
		Verbose:      opt.Verbose,
	}
	res, err := c.net.TrainLabels(inputs, labels, cfg)
	if err != nil {
		return nil, fmt.Errorf("classifier: training failed: %w", err)
	}

	c.ready = true
	return &TrainResult{
		Samples:   len(inputs),
		Epochs:    opt.Epochs,
		FinalLoss: res.FinalLoss,
	}, nil
}

// Save writes the model to path as the library's JSON format.
func (c *Classifier) Save(path string) error {
	if !c.ready {
		return ErrNotTrained
	}
	return c.net.SaveModel(path, modelID)
}

// Load reads a previously saved model and marks it ready.
func Load(path string, hidden1, hidden2 int) (*Classifier, error) {
	net, err := nn.LoadModel(path, modelID)
	if err != nil {
		return nil, fmt.Errorf("classifier: load %s: %w", path, err)
	}
	net.BatchSize = 1
	return &Classifier{net: net, hidden1: hidden1, hidden2: hidden2, ready: true}, nil
}

const modelID = "neurosketch"
