package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/mat"
)

// ErrEmpty indicates the input held no records.
var ErrEmpty = errors.New("dataset: no records")

// ParseError reports a feature field that is not a float64.
type ParseError struct {
	Line   int
	Column int
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("dataset: line %d column %d: parse %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// UnknownLabelError reports a class name outside the vocabulary.
type UnknownLabelError struct {
	Line  int
	Label string
}

func (e *UnknownLabelError) Error() string {
	return fmt.Sprintf("dataset: line %d: unknown class %q", e.Line, e.Label)
}

// LoadOptions configures Load and Read.
type LoadOptions struct {
	Vocabulary Vocabulary
	// Seed feeds the shuffle; every call gets its own source.
	Seed int64
}

type record struct {
	line   int
	fields []string
}

// Load reads the comma separated file at path: one record per line, the
// feature values first and the class name last.
func Load(path string, opts LoadOptions) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := Read(bufio.NewReader(f), opts)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return ds, nil
}

// Read parses records from r, shuffles them and fills the matrices in the
// shuffled order.
func Read(r io.Reader, opts LoadOptions) (*Dataset, error) {
	if opts.Vocabulary.Len() < 2 {
		return nil, errors.New("dataset: vocabulary not configured")
	}
	records, err := readRecords(r)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}
	dim := len(records[0].fields) - 1
	if dim < 1 {
		return nil, fmt.Errorf("dataset: line %d: need at least one feature and a class", records[0].line)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	shuffle(records, rng)

	n := len(records)
	features := mat.NewDense(dim, n, nil)
	labels := mat.NewDense(1, n, nil)
	for i, rec := range records {
		for j := 0; j < dim; j++ {
			v, err := strconv.ParseFloat(rec.fields[j], 64)
			if err != nil {
				return nil, &ParseError{Line: rec.line, Column: j + 1, Value: rec.fields[j], Err: err}
			}
			features.Set(j, i, v)
		}
		name := rec.fields[dim]
		class, ok := opts.Vocabulary.Lookup(name)
		if !ok {
			return nil, &UnknownLabelError{Line: rec.line, Label: name}
		}
		labels.Set(0, i, opts.Vocabulary.Normalize(class))
	}
	return &Dataset{Features: features, Labels: labels}, nil
}

func readRecords(r io.Reader) ([]record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true
	// Width is checked below so whitespace-only lines can be skipped first.
	cr.FieldsPerRecord = -1

	var records []record
	width := 0
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: read: %w", err)
		}
		line, _ := cr.FieldPos(0)
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		if lo.EveryBy(fields, func(f string) bool { return f == "" }) {
			continue
		}
		if width == 0 {
			width = len(fields)
		}
		if len(fields) != width {
			return nil, fmt.Errorf("dataset: line %d: expected %d fields, got %d", line, width, len(fields))
		}
		records = append(records, record{line: line, fields: fields})
	}
	return records, nil
}

// shuffle is a Fisher-Yates permutation of the record order.
func shuffle(records []record, rng *rand.Rand) {
	rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})
}
