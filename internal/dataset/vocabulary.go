package dataset

import (
	"errors"
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Class is the index of a class name within a Vocabulary.
type Class int

// Iris species, in the order used by IrisVocabulary.
const (
	Setosa Class = iota
	Versicolor
	Virginica
)

// Vocabulary is the closed, ordered set of class names a dataset may use.
// The position of a name defines its Class.
type Vocabulary struct {
	names []string
	index map[string]Class
}

// NewVocabulary builds a vocabulary from at least two unique, non-empty names.
func NewVocabulary(names ...string) (Vocabulary, error) {
	if len(names) < 2 {
		return Vocabulary{}, fmt.Errorf("vocabulary: need at least 2 classes, got %d", len(names))
	}
	if lo.Contains(names, "") {
		return Vocabulary{}, errors.New("vocabulary: empty class name")
	}
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return Vocabulary{}, fmt.Errorf("vocabulary: duplicate class names %v", dups)
	}
	index := make(map[string]Class, len(names))
	for i, name := range names {
		index[name] = Class(i)
	}
	return Vocabulary{names: append([]string(nil), names...), index: index}, nil
}

// IrisVocabulary returns the three Iris species.
func IrisVocabulary() Vocabulary {
	v, _ := NewVocabulary("Iris-setosa", "Iris-versicolor", "Iris-virginica")
	return v
}

// Len returns the number of classes.
func (v Vocabulary) Len() int {
	return len(v.names)
}

// Names returns a copy of the class names in class order.
func (v Vocabulary) Names() []string {
	return append([]string(nil), v.names...)
}

// Lookup maps a class name to its Class.
func (v Vocabulary) Lookup(name string) (Class, bool) {
	c, ok := v.index[name]
	return c, ok
}

// Name returns the class name, or "" for an out-of-range class.
func (v Vocabulary) Name(c Class) string {
	if c < 0 || int(c) >= len(v.names) {
		return ""
	}
	return v.names[c]
}

// Normalize maps a class onto [0, 1]: index / (Len()-1).
func (v Vocabulary) Normalize(c Class) float64 {
	return float64(c) / float64(len(v.names)-1)
}

// Denormalize returns the class whose normalized code is nearest to code.
// Codes outside [0, 1] clamp to the first or last class.
func (v Vocabulary) Denormalize(code float64) Class {
	last := len(v.names) - 1
	c := int(math.Floor(code*float64(last) + 0.5))
	if c < 0 {
		return 0
	}
	if c > last {
		return Class(last)
	}
	return Class(c)
}
