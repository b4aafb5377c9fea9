package trainer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"iris-logreg/internal/dataset"
	"iris-logreg/internal/metrics"
	"iris-logreg/internal/model"
)

// Stage is one step of the learning-rate schedule.
type Stage struct {
	Epochs       int
	LearningRate float64
}

// RunConfig captures the knobs required by the training loop.
type RunConfig struct {
	Stages         []Stage
	RecordInterval int
	Vocabulary     dataset.Vocabulary
	Logger         *slog.Logger
}

// Result is what a run reports.
type Result struct {
	Trace         metrics.Trace
	TrainAccuracy float64
	TestAccuracy  float64
}

// Run trains mdl on train through every stage, then measures accuracy on
// both partitions.
func Run(ctx context.Context, mdl model.Classifier, train, test *dataset.Dataset, cfg RunConfig) (*Result, error) {
	trace, err := Fit(ctx, mdl, train, cfg)
	if err != nil {
		return nil, err
	}

	trainAcc, err := Evaluate(mdl, train, cfg.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("evaluate train set: %w", err)
	}
	testAcc, err := Evaluate(mdl, test, cfg.Vocabulary)
	if err != nil {
		return nil, fmt.Errorf("evaluate test set: %w", err)
	}
	attrs := []any{
		"train_samples", train.Len(),
		"test_samples", test.Len(),
		"train_accuracy", trainAcc,
		"test_accuracy", testAcc,
	}
	if losses := trace.Losses(); len(losses) > 0 {
		attrs = append(attrs, "checkpoints", len(losses), "best_loss", fmt.Sprintf("%.4f", lo.Min(losses)))
	}
	logger(cfg).Info("evaluation", attrs...)

	return &Result{Trace: trace, TrainAccuracy: trainAcc, TestAccuracy: testAcc}, nil
}

// Fit executes the schedule: each stage is one full-batch Train call on
// the same model, so parameters carry over from stage to stage. Checkpoint
// epochs are numbered from the start of the schedule.
func Fit(ctx context.Context, mdl model.Classifier, train *dataset.Dataset, cfg RunConfig) (metrics.Trace, error) {
	if len(cfg.Stages) == 0 {
		return nil, errors.New("trainer: no stages configured")
	}
	if cfg.RecordInterval <= 0 {
		return nil, errors.New("trainer: record interval must be > 0")
	}
	log := logger(cfg)

	var trace metrics.Trace
	var window metrics.Window
	offset := 0
	for i, stage := range cfg.Stages {
		if err := ctx.Err(); err != nil {
			return trace, err
		}
		if stage.Epochs <= 0 {
			return trace, fmt.Errorf("trainer: stage %d: epochs must be > 0", i+1)
		}

		start := time.Now()
		losses, err := mdl.Train(train.Features, train.Labels, stage.Epochs, stage.LearningRate, cfg.RecordInterval)
		if err != nil {
			return trace, fmt.Errorf("trainer: stage %d: %w", i+1, err)
		}
		computeTime := time.Since(start)

		trace.Append(offset, cfg.RecordInterval, losses)
		offset += stage.Epochs

		stageLoss, recorded := lo.Last(losses)
		window.Record(train.Len(), stage.Epochs, computeTime, stageLoss)
		snap := window.Snapshot()
		attrs := []any{
			"stage", i + 1,
			"epochs", snap.Epochs,
			"lr", stage.LearningRate,
			"samples_per_sec", fmt.Sprintf("%.1f", snap.SamplesPerSec),
			"epoch_ms", fmt.Sprintf("%.3f", snap.AvgEpochMS),
		}
		// A stage shorter than the record interval has no loss of its own.
		if recorded {
			attrs = append(attrs, "loss", fmt.Sprintf("%.4f", snap.LastLoss))
		}
		log.Info("stage complete", attrs...)
	}
	return trace, nil
}

func logger(cfg RunConfig) *slog.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return slog.Default()
}
