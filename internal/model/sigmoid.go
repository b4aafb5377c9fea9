package model

import "math"

// Sigmoid is the logistic function 1 / (1 + e^-x).
func Sigmoid(x float64) float64 {
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	// Same value; avoids overflowing e^-x for large negative x.
	e := math.Exp(x)
	return e / (1 + e)
}
