package trainer

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"iris-logreg/internal/dataset"
	"iris-logreg/internal/model"
)

// Evaluate returns the fraction of samples in ds whose predicted class
// equals the class encoded by their label.
func Evaluate(mdl model.Classifier, ds *dataset.Dataset, vocab dataset.Vocabulary) (float64, error) {
	n := ds.Len()
	if n == 0 {
		return 0, errors.New("trainer: empty dataset")
	}
	predicted := make([]dataset.Class, n)
	for i := 0; i < n; i++ {
		x, _ := ds.Sample(i)
		got, err := mdl.Predict(x)
		if err != nil {
			return 0, fmt.Errorf("predict sample %d: %w", i, err)
		}
		predicted[i] = dataset.Class(got)
	}
	correct := lo.CountBy(lo.Range(n), func(i int) bool {
		_, y := ds.Sample(i)
		return predicted[i] == vocab.Denormalize(y)
	})
	return float64(correct) / float64(n), nil
}
