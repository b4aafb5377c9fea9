package model

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrShape indicates operands whose dimensions do not line up with the model.
var ErrShape = errors.New("model: shape mismatch")

// Classifier defines the training and inference functionality required by
// the trainer. data is features x samples, label is 1 x samples.
type Classifier interface {
	Train(data, label mat.Matrix, epochs int, lr float64, recordInterval int) ([]float64, error)
	Predict(x mat.Vector) (int, error)
}
