package classifier

import (
	"fmt"

	"github.com/neurlang/classifier/datasets/mnist"
)

// Dataset is a vectorized slice of the MNIST corpus: flattened 28×28
// intensities in [0,1] with digit labels.
type Dataset struct {
	Inputs [][]float32
	Labels []int
}

// Len returns the sample count.
func (d *Dataset) Len() int { return len(d.Labels) }

// LoadTrainSet vectorizes the MNIST training split, shuffled, capped to
// limit samples (0 means all). The dataset package loads the corpus at init
// from its well-known locations; a missing corpus surfaces as ErrNoData.
func LoadTrainSet(limit int) (*Dataset, error) {
	if err := mnist.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	mnist.ShuffleTrain()
	return vectorize(mnist.TrainSet, mnist.TrainLabels, limit), nil
}

// LoadInferSet vectorizes the MNIST held-out split, capped to limit
// samples (0 means all).
func LoadInferSet(limit int) (*Dataset, error) {
	if err := mnist.Error(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoData, err)
	}
	return vectorize(mnist.InferSet, mnist.InferLabels, limit), nil
}

func vectorize(set [][InputSize]byte, labels []byte, limit int) *Dataset {
	n := len(labels)
	if len(set) < n {
		n = len(set)
	}
	if limit > 0 && limit < n {
		n = limit
	}
	d := &Dataset{
		Inputs: make([][]float32, n),
		Labels: make([]int, n),
	}
	for i := 0; i < n; i++ {
		v := make([]float32, InputSize)
		for j, b := range set[i] {
			v[j] = float32(b) / 255
		}
		d.Inputs[i] = v
		d.Labels[i] = int(labels[i])
	}
	return d
}

// Train fits the classifier on the MNIST training split.
func (c *Classifier) Train(opt TrainOptions) (*TrainResult, error) {
	ds, err := LoadTrainSet(opt.Limit)
	if err != nil {
		return nil, err
	}
	return c.TrainSamples(ds.Inputs, ds.Labels, opt)
}
