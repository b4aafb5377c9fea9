package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Dataset pairs a feature matrix with its label row. Column i of Features
// and column i of Labels describe the same record.
type Dataset struct {
	// Features is Dim() x Len().
	Features *mat.Dense
	// Labels is 1 x Len(), holding normalized class codes in [0, 1].
	Labels *mat.Dense
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	_, c := d.Features.Dims()
	return c
}

// Dim returns the number of features per sample.
func (d *Dataset) Dim() int {
	r, _ := d.Features.Dims()
	return r
}

// Sample returns column i as a feature vector and its label code.
func (d *Dataset) Sample(i int) (mat.Vector, float64) {
	return d.Features.ColView(i), d.Labels.At(0, i)
}

// Split partitions the columns by index: the first floor(Len()*rate)
// samples form train, the rest form test. Both halves are views that
// share storage with d.
func (d *Dataset) Split(rate float64) (train, test *Dataset, err error) {
	if rate <= 0 || rate >= 1 {
		return nil, nil, fmt.Errorf("split: rate must be in (0, 1), got %g", rate)
	}
	n := d.Len()
	cut := int(math.Floor(float64(n) * rate))
	if cut == 0 || cut == n {
		return nil, nil, fmt.Errorf("split: rate %g leaves an empty partition of %d samples", rate, n)
	}
	return d.slice(0, cut), d.slice(cut, n), nil
}

func (d *Dataset) slice(from, to int) *Dataset {
	return &Dataset{
		Features: d.Features.Slice(0, d.Dim(), from, to).(*mat.Dense),
		Labels:   d.Labels.Slice(0, 1, from, to).(*mat.Dense),
	}
}
