package model

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// probEpsilon keeps log() finite when the sigmoid saturates.
const probEpsilon = 1e-15

// LogisticRegression is a single sigmoid unit over dim features, trained
// with full-batch gradient descent on binary cross-entropy. Labels are
// class codes in [0, 1]; Predict maps the probability back onto one of
// classes evenly spaced codes.
type LogisticRegression struct {
	dim     int
	classes int
	initStd float64
	rng     *rand.Rand

	w *mat.VecDense
	b float64
}

// NewLogisticRegression constructs the model with random initialization.
func NewLogisticRegression(dim, classes int, initStd float64, seed int64) *LogisticRegression {
	if dim <= 0 {
		dim = 4
	}
	if classes < 2 {
		classes = 2
	}
	if initStd < 0 {
		initStd = 0.01
	}
	m := &LogisticRegression{
		dim:     dim,
		classes: classes,
		initStd: initStd,
		rng:     rand.New(rand.NewSource(seed)),
	}
	m.InitializeParameters()
	return m
}

// InitializeParameters draws w from N(0, initStd) and zeroes b.
func (m *LogisticRegression) InitializeParameters() {
	w := make([]float64, m.dim)
	for i := range w {
		w[i] = m.rng.NormFloat64() * m.initStd
	}
	m.w = mat.NewVecDense(m.dim, w)
	m.b = 0
}

// Parameters returns a copy of the weights and the bias.
func (m *LogisticRegression) Parameters() ([]float64, float64) {
	return mat.Col(nil, 0, m.w), m.b
}

// ForwardAndBackwardPropagate evaluates the batch without touching the
// parameters. It returns the mean cross-entropy and its gradients with
// respect to w and b.
func (m *LogisticRegression) ForwardAndBackwardPropagate(data, label mat.Matrix) (cost float64, dw *mat.VecDense, db float64, err error) {
	n, err := m.checkBatch(data, label)
	if err != nil {
		return 0, nil, 0, err
	}

	var z mat.VecDense
	z.MulVec(data.T(), m.w)
	y := mat.Row(nil, 0, label)

	diff := make([]float64, n)
	losses := make([]float64, n)
	for i := 0; i < n; i++ {
		p := Sigmoid(z.AtVec(i) + m.b)
		diff[i] = p - y[i]
		losses[i] = crossEntropy(p, y[i])
	}
	cost = stat.Mean(losses, nil)

	dw = mat.NewVecDense(m.dim, nil)
	dw.MulVec(data, mat.NewVecDense(n, diff))
	dw.ScaleVec(1/float64(n), dw)
	db = floats.Sum(diff) / float64(n)
	return cost, dw, db, nil
}

// UpdateParameters takes one gradient-descent step and returns the cost
// measured before the step.
func (m *LogisticRegression) UpdateParameters(data, label mat.Matrix, lr float64) (float64, error) {
	cost, dw, db, err := m.ForwardAndBackwardPropagate(data, label)
	if err != nil {
		return 0, err
	}
	m.w.AddScaledVec(m.w, -lr, dw)
	m.b -= lr * db
	return cost, nil
}

// Train runs epochs full-batch updates and records the cost of every
// recordInterval-th epoch. Parameters carry over between calls.
func (m *LogisticRegression) Train(data, label mat.Matrix, epochs int, lr float64, recordInterval int) ([]float64, error) {
	if recordInterval <= 0 {
		return nil, fmt.Errorf("model: record interval must be > 0 (got %d)", recordInterval)
	}
	if epochs < 0 {
		return nil, fmt.Errorf("model: epochs must be >= 0 (got %d)", epochs)
	}
	costs := make([]float64, 0, epochs/recordInterval)
	for epoch := 1; epoch <= epochs; epoch++ {
		cost, err := m.UpdateParameters(data, label, lr)
		if err != nil {
			return costs, err
		}
		if epoch%recordInterval == 0 {
			costs = append(costs, cost)
		}
	}
	return costs, nil
}

// Predict classifies a single sample. The probability is scaled onto the
// class codes and rounded to the nearest one, so with two classes this is
// the usual 0.5 threshold.
func (m *LogisticRegression) Predict(x mat.Vector) (int, error) {
	if x.Len() != m.dim {
		return 0, fmt.Errorf("%w: sample has %d features, model expects %d", ErrShape, x.Len(), m.dim)
	}
	p := Sigmoid(mat.Dot(m.w, x) + m.b)
	return int(math.Floor(p*float64(m.classes-1) + 0.5)), nil
}

func (m *LogisticRegression) checkBatch(data, label mat.Matrix) (int, error) {
	if data == nil || label == nil {
		return 0, errors.New("model: nil batch")
	}
	rows, n := data.Dims()
	if rows != m.dim {
		return 0, fmt.Errorf("%w: data has %d features, model expects %d", ErrShape, rows, m.dim)
	}
	lr, lc := label.Dims()
	if lr != 1 || lc != n {
		return 0, fmt.Errorf("%w: label is %dx%d, want 1x%d", ErrShape, lr, lc, n)
	}
	return n, nil
}

func crossEntropy(p, y float64) float64 {
	p = math.Min(math.Max(p, probEpsilon), 1-probEpsilon)
	return -(y*math.Log(p) + (1-y)*math.Log(1-p))
}
