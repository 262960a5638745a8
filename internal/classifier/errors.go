package classifier

import "errors"

// Domain errors for classification operations.
var (
	// ErrNotTrained indicates Predict was called before a model was trained
	// or loaded. This is a hard precondition violation, never papered over
	// with garbage output.
	ErrNotTrained = errors.New("classifier: model not trained")

	// ErrNoData indicates the training dataset is missing or unreadable.
	ErrNoData = errors.New("classifier: training dataset unavailable")

	// ErrBadInput indicates an input of the wrong dimensions reached Predict.
	ErrBadInput = errors.New("classifier: input is not a 28x28 bitmap")
)
