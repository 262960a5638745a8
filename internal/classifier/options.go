package classifier

// TrainOptions control a training run. Zero values fall back to the
// defaults below.
type TrainOptions struct {
	Epochs       int
	LearningRate float64
	Limit        int // cap on training samples, 0 means all
	Verbose      bool
}

// TrainResult summarizes a completed training run.
type TrainResult struct {
	Samples   int
	Epochs    int
	FinalLoss float64
}

const (
	defaultEpochs       = 8
	defaultLearningRate = 0.05
)

func (o TrainOptions) withDefaults() TrainOptions {
	if o.Epochs <= 0 {
		o.Epochs = defaultEpochs
	}
	if o.LearningRate <= 0 {
		o.LearningRate = defaultLearningRate
	}
	return o
}
