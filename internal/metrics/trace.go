package metrics

import "github.com/samber/lo"

// Checkpoint is a loss recorded after Epoch epochs, counted from the start
// of the run.
type Checkpoint struct {
	Epoch int
	Loss  float64
}

// Trace is the ordered list of recorded checkpoints of a run.
type Trace []Checkpoint

// Append records losses captured every interval epochs by a stage that
// started after offset epochs.
func (t *Trace) Append(offset, interval int, losses []float64) {
	for i, loss := range losses {
		*t = append(*t, Checkpoint{Epoch: offset + (i+1)*interval, Loss: loss})
	}
}

// Losses returns the recorded loss values in order.
func (t Trace) Losses() []float64 {
	return lo.Map(t, func(c Checkpoint, _ int) float64 {
		return c.Loss
	})
}

// Last returns the most recent checkpoint.
func (t Trace) Last() (Checkpoint, bool) {
	if len(t) == 0 {
		return Checkpoint{}, false
	}
	return t[len(t)-1], true
}
