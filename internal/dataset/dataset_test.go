package dataset

import (
	"testing"

	"gonum.org/v1/gonum/mat"
)

func sequentialDataset(n int) *Dataset {
	features := mat.NewDense(2, n, nil)
	labels := mat.NewDense(1, n, nil)
	for i := 0; i < n; i++ {
		features.Set(0, i, float64(i))
		features.Set(1, i, -float64(i))
		labels.Set(0, i, float64(i%2))
	}
	return &Dataset{Features: features, Labels: labels}
}

func TestSplitByIndex(t *testing.T) {
	ds := sequentialDataset(150)
	train, test, err := ds.Split(0.8)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if train.Len() != 120 || test.Len() != 30 {
		t.Fatalf("expected 120/30, got %d/%d", train.Len(), test.Len())
	}
	if train.Dim() != 2 || test.Dim() != 2 {
		t.Fatalf("split changed dimension")
	}
	x, y := test.Sample(0)
	if x.AtVec(0) != 120 || y != 0 {
		t.Fatalf("test partition should start at column 120, got x=%v y=%v", x.AtVec(0), y)
	}
	last, _ := test.Sample(test.Len() - 1)
	if last.AtVec(0) != 149 {
		t.Fatalf("test partition should keep the last column, got %v", last.AtVec(0))
	}
}

func TestSplitRejectsEmptyPartition(t *testing.T) {
	ds := sequentialDataset(3)
	if _, _, err := ds.Split(0.2); err == nil {
		t.Fatalf("expected error for empty train partition")
	}
	if _, _, err := ds.Split(1); err == nil {
		t.Fatalf("expected error for rate 1")
	}
	if _, _, err := ds.Split(0); err == nil {
		t.Fatalf("expected error for rate 0")
	}
}
