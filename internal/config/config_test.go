package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
data_path: /tmp/iris.data
classes: [a, b]
split_rate: 0.75
record_interval: 5
init_std: 0.02
seed: 9
stages:
  - epochs: 10
    learning_rate: 0.1
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DataPath != "/tmp/iris.data" {
		t.Fatalf("data_path=%q", cfg.DataPath)
	}
	if len(cfg.Classes) != 2 || cfg.Classes[1] != "b" {
		t.Fatalf("classes=%v", cfg.Classes)
	}
	if cfg.SplitRate != 0.75 || cfg.RecordInterval != 5 || cfg.InitStd != 0.02 || cfg.Seed != 9 {
		t.Fatalf("unexpected scalars: %+v", cfg)
	}
	if len(cfg.Stages) != 1 || cfg.Stages[0].Epochs != 10 || cfg.Stages[0].LearningRate != 0.1 {
		t.Fatalf("stages=%+v", cfg.Stages)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "seed: 3\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if cfg.DataPath != def.DataPath || cfg.RecordInterval != def.RecordInterval {
		t.Fatalf("defaults not kept: %+v", cfg)
	}
	if len(cfg.Stages) != 2 || cfg.TotalEpochs() != 80 {
		t.Fatalf("expected default schedule, got %+v", cfg.Stages)
	}
	if cfg.Seed != 3 {
		t.Fatalf("seed=%d", cfg.Seed)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SplitRate != 0.8 {
		t.Fatalf("split_rate=%g", cfg.SplitRate)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	_, err := Load(writeConfig(t, "batch_size: 32\n"))
	if err == nil {
		t.Fatalf("expected unknown key error")
	}
	if !strings.Contains(err.Error(), "batch_size") {
		t.Fatalf("error does not name the key: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"data path":    func(c *Config) { c.DataPath = "" },
		"one class":    func(c *Config) { c.Classes = []string{"a"} },
		"split zero":   func(c *Config) { c.SplitRate = 0 },
		"split one":    func(c *Config) { c.SplitRate = 1 },
		"interval":     func(c *Config) { c.RecordInterval = 0 },
		"init std":     func(c *Config) { c.InitStd = -1 },
		"no stages":    func(c *Config) { c.Stages = nil },
		"stage epochs": func(c *Config) { c.Stages[0].Epochs = 0 },
		"stage rate":   func(c *Config) { c.Stages[1].LearningRate = 0 },
	}
	for name, mutate := range cases {
		cfg := Default()
		mutate(cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := Default()
	cfg.ApplyOverrides(Overrides{DataPath: "x.data", RecordInterval: 2})
	if cfg.DataPath != "x.data" || cfg.RecordInterval != 2 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.SplitRate != 0.8 || cfg.Seed != 0 {
		t.Fatalf("zero overrides should be ignored: %+v", cfg)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
