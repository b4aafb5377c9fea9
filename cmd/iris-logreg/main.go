package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"iris-logreg/internal/config"
	"iris-logreg/internal/dataset"
	"iris-logreg/internal/model"
	"iris-logreg/internal/trainer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one training run and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("iris-logreg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "Path to YAML config (defaults to the stock Iris run)")
	dataPath := fs.String("data", "", "Override dataset path")
	splitRate := fs.Float64("split-rate", 0, "Fraction of samples used for training")
	recordInterval := fs.Int("record-interval", 0, "Record the loss every N epochs")
	seed := fs.Int64("seed", 0, "PRNG seed (0 picks one from the clock)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	logger := slog.New(slog.NewTextHandler(stderr, nil)).With("run", uuid.NewString())
	fail := func(msg string, err error) int {
		logger.Error(msg, "error", err)
		return 1
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		cfg, err = config.Load(*cfgPath)
		if err != nil {
			return fail("failed to load config", err)
		}
	}

	cfg.ApplyOverrides(config.Overrides{
		DataPath:       *dataPath,
		SplitRate:      *splitRate,
		RecordInterval: *recordInterval,
		Seed:           *seed,
	})

	if err := cfg.Validate(); err != nil {
		return fail("invalid config", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	vocab, err := dataset.NewVocabulary(cfg.Classes...)
	if err != nil {
		return fail("invalid classes", err)
	}

	ds, err := dataset.Load(cfg.DataPath, dataset.LoadOptions{Vocabulary: vocab, Seed: cfg.Seed})
	if err != nil {
		return fail("failed to load dataset", err)
	}
	train, test, err := ds.Split(cfg.SplitRate)
	if err != nil {
		return fail("failed to split dataset", err)
	}
	logger.Info("dataset loaded",
		"path", cfg.DataPath,
		"samples", ds.Len(),
		"features", ds.Dim(),
		"classes", strings.Join(vocab.Names(), ","),
		"train", train.Len(),
		"test", test.Len(),
		"total_epochs", cfg.TotalEpochs(),
		"seed", cfg.Seed,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stages := make([]trainer.Stage, 0, len(cfg.Stages))
	for _, s := range cfg.Stages {
		stages = append(stages, trainer.Stage{Epochs: s.Epochs, LearningRate: s.LearningRate})
	}
	runCfg := trainer.RunConfig{
		Stages:         stages,
		RecordInterval: cfg.RecordInterval,
		Vocabulary:     vocab,
		Logger:         logger,
	}

	mdl := model.NewLogisticRegression(ds.Dim(), vocab.Len(), cfg.InitStd, cfg.Seed+1)
	res, err := trainer.Run(ctx, mdl, train, test, runCfg)
	if err != nil {
		return fail("training failed", err)
	}

	if err := trainer.WriteReport(stdout, res); err != nil {
		return fail("failed to write report", err)
	}
	return 0
}
