package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Stage is one step of the learning-rate schedule.
type Stage struct {
	Epochs       int     `yaml:"epochs"`
	LearningRate float64 `yaml:"learning_rate"`
}

// Config captures the runtime knobs for a training run.
type Config struct {
	DataPath       string   `yaml:"data_path"`
	Classes        []string `yaml:"classes"`
	SplitRate      float64  `yaml:"split_rate"`
	RecordInterval int      `yaml:"record_interval"`
	InitStd        float64  `yaml:"init_std"`
	Seed           int64    `yaml:"seed"`
	Stages         []Stage  `yaml:"stages"`
}

// Overrides captures CLI supplied values.
type Overrides struct {
	DataPath       string
	SplitRate      float64
	RecordInterval int
	Seed           int64
}

// Default returns the configuration of the stock Iris run.
func Default() *Config {
	return &Config{
		DataPath:       "data/iris.data",
		Classes:        []string{"Iris-setosa", "Iris-versicolor", "Iris-virginica"},
		SplitRate:      0.8,
		RecordInterval: 10,
		InitStd:        0.01,
		Stages: []Stage{
			{Epochs: 30, LearningRate: 0.001},
			{Epochs: 50, LearningRate: 0.0001},
		},
	}
}

// Load reads and validates a Config from YAML. Keys missing from the file
// keep their Default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := parseYAML(f)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyOverrides updates cfg using any non-zero override.
func (c *Config) ApplyOverrides(o Overrides) {
	if o.DataPath != "" {
		c.DataPath = o.DataPath
	}
	if o.SplitRate > 0 {
		c.SplitRate = o.SplitRate
	}
	if o.RecordInterval > 0 {
		c.RecordInterval = o.RecordInterval
	}
	if o.Seed != 0 {
		c.Seed = o.Seed
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.DataPath == "" {
		return errors.New("data_path must be set")
	}
	if len(c.Classes) < 2 {
		return fmt.Errorf("classes must name at least 2 classes (got %d)", len(c.Classes))
	}
	if c.SplitRate <= 0 || c.SplitRate >= 1 {
		return fmt.Errorf("split_rate must be in (0, 1) (got %g)", c.SplitRate)
	}
	if c.RecordInterval <= 0 {
		return fmt.Errorf("record_interval must be > 0 (got %d)", c.RecordInterval)
	}
	if c.InitStd < 0 {
		return fmt.Errorf("init_std must be >= 0 (got %g)", c.InitStd)
	}
	if len(c.Stages) == 0 {
		return errors.New("at least one stage must be configured")
	}
	for i, s := range c.Stages {
		if s.Epochs <= 0 {
			return fmt.Errorf("stages[%d]: epochs must be > 0 (got %d)", i, s.Epochs)
		}
		if s.LearningRate <= 0 {
			return fmt.Errorf("stages[%d]: learning_rate must be > 0 (got %g)", i, s.LearningRate)
		}
	}
	return nil
}

// TotalEpochs sums the epochs of every stage.
func (c *Config) TotalEpochs() int {
	total := 0
	for _, s := range c.Stages {
		total += s.Epochs
	}
	return total
}

func parseYAML(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}
