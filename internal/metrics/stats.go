package metrics

import "time"

// Window accumulates timing stats across multiple epochs.
type Window struct {
	samples  int
	compute  time.Duration
	epochs   int
	lastLoss float64
}

// Record adds the measurement of epochs full passes over samples records.
func (w *Window) Record(samples, epochs int, computeTime time.Duration, loss float64) {
	w.samples += samples * epochs
	w.compute += computeTime
	w.epochs += epochs
	w.lastLoss = loss
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{Epochs: w.epochs}
	if w.compute > 0 {
		snap.SamplesPerSec = float64(w.samples) / w.compute.Seconds()
	}
	if w.epochs > 0 {
		snap.AvgEpochMS = (w.compute.Seconds() * 1000) / float64(w.epochs)
	}
	snap.LastLoss = w.lastLoss

	w.samples = 0
	w.compute = 0
	w.epochs = 0
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	Epochs        int
	SamplesPerSec float64
	AvgEpochMS    float64
	LastLoss      float64
}
