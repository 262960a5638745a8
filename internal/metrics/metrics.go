// Package metrics accumulates evaluation statistics over classification
// outcomes. Metrics share a small observer contract so an evaluation run
// can feed any number of them in one pass.
package metrics

// Metric observes (predicted, actual) label pairs and reduces them to a
// single value.
type Metric interface {
	Name() string
	Observe(predicted, actual int)
	Value() float64
	Reset()
}

// Predictor maps a flattened input vector to a digit.
type Predictor interface {
	PredictVector(input []float32) (int, error)
}

// Evaluate runs the predictor over every sample and feeds each outcome to
// all metrics. It stops at the first prediction error.
func Evaluate(p Predictor, inputs [][]float32, labels []int, ms ...Metric) error {
	n := len(inputs)
	if len(labels) < n {
		n = len(labels)
	}
	for i := 0; i < n; i++ {
		digit, err := p.PredictVector(inputs[i])
		if err != nil {
			return err
		}
		for _, m := range ms {
			m.Observe(digit, labels[i])
		}
	}
	return nil
}
