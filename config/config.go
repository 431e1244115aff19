// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/numcell/cell"
	"github.com/katalvlaran/numcell/layer"
)

// Defaults applied to zero fields after decoding.
const (
	DefaultSteps        = 20
	DefaultLearningRate = 1
	DefaultWorkers      = 4
	DefaultLogLevel     = "info"
)

// Config is the root of the YAML file.
type Config struct {
	Layer   LayerConfig   `yaml:"layer"`
	Train   TrainConfig   `yaml:"train"`
	Logging LoggingConfig `yaml:"logging"`
}

// LayerConfig describes a layer. Weights, biases and bases are in real
// units; they are multiplied by Scale when the layer is built.
type LayerConfig struct {
	Inputs  []string                    `yaml:"inputs"`
	Outputs []string                    `yaml:"outputs"`
	Radix   int64                       `yaml:"radix"`
	Scale   int64                       `yaml:"scale"`
	Bases   map[string]int64            `yaml:"bases,omitempty"`
	Weights map[string]map[string]int64 `yaml:"weights,omitempty"`
	Biases  map[string]int64            `yaml:"biases,omitempty"`
}

// TrainConfig describes a training run. LearningRate is in 1/Scale units.
type TrainConfig struct {
	Steps        int       `yaml:"steps"`
	LearningRate int64     `yaml:"learning_rate"`
	Workers      int       `yaml:"workers"`
	Examples     []Example `yaml:"examples"`
}

// Example is one input/target pair.
type Example struct {
	Input  map[string]int64 `yaml:"input"`
	Target map[string]int64 `yaml:"target"`
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the single-point regression used when no file is
// given: y = w·x + b fitted to (2, 10) with S = 1000 and lr = 0.1.
func DefaultConfig() *Config {
	c := &Config{
		Layer: LayerConfig{
			Inputs:  []string{"x"},
			Outputs: []string{"y"},
			Scale:   1000,
			Biases:  map[string]int64{"y": 0},
		},
		Train: TrainConfig{
			LearningRate: 100,
			Examples: []Example{
				{Input: map[string]int64{"x": 2}, Target: map[string]int64{"y": 10}},
			},
		},
	}
	c.applyDefaults()
	return c
}

// Load reads path. A missing file returns DefaultConfig.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fileErrorf("load", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML, fills defaults, applies environment overrides and
// validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, configErrorf("parse: %v", err)
	}
	cfg.applyDefaults()
	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save validates c and writes it as YAML, creating the parent directory
// if needed. An invalid configuration is never written.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fileErrorf("marshal", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fileErrorf("save", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fileErrorf("save", path, err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Layer.Radix == 0 {
		c.Layer.Radix = cell.DefaultRadix
	}
	if c.Layer.Scale == 0 {
		c.Layer.Scale = layer.DefaultScale
	}
	if c.Train.Steps == 0 {
		c.Train.Steps = DefaultSteps
	}
	if c.Train.LearningRate == 0 {
		c.Train.LearningRate = DefaultLearningRate
	}
	if c.Train.Workers == 0 {
		c.Train.Workers = DefaultWorkers
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
}

// applyEnvOverrides applies environment variable overrides. Malformed
// values are ignored.
func (c *Config) applyEnvOverrides() {
	if lvl := os.Getenv("NUMCELL_LOG_LEVEL"); lvl != "" {
		c.Logging.Level = lvl
	}
	if w := os.Getenv("NUMCELL_WORKERS"); w != "" {
		if n, err := strconv.Atoi(w); err == nil && n > 0 {
			c.Train.Workers = n
		}
	}
}

// Validate checks shapes and key references. Layer construction repeats
// the key checks; doing them here reports the YAML path.
func (c *Config) Validate() error {
	lc := &c.Layer
	if len(lc.Inputs) == 0 || len(lc.Outputs) == 0 {
		return configErrorf("layer.inputs and layer.outputs must be non-empty")
	}
	if lc.Radix <= 1 {
		return configErrorf("layer.radix must be > 1, got %d", lc.Radix)
	}
	if lc.Scale <= 0 {
		return configErrorf("layer.scale must be > 0, got %d", lc.Scale)
	}
	ins, outs := keySet(lc.Inputs), keySet(lc.Outputs)
	if len(ins) != len(lc.Inputs) || len(outs) != len(lc.Outputs) {
		return configErrorf("layer keys must be unique")
	}
	for out, b := range lc.Bases {
		if !outs[out] {
			return configErrorf("layer.bases: unknown output %q", out)
		}
		if b <= 0 {
			return configErrorf("layer.bases.%s must be > 0, got %d", out, b)
		}
	}
	for out, row := range lc.Weights {
		if !outs[out] {
			return configErrorf("layer.weights: unknown output %q", out)
		}
		for in := range row {
			if !ins[in] {
				return configErrorf("layer.weights.%s: unknown input %q", out, in)
			}
		}
	}
	for out := range lc.Biases {
		if !outs[out] {
			return configErrorf("layer.biases: unknown output %q", out)
		}
	}

	if c.Train.Steps < 0 {
		return configErrorf("train.steps must be ≥ 0, got %d", c.Train.Steps)
	}
	if c.Train.Workers < 0 {
		return configErrorf("train.workers must be ≥ 0, got %d", c.Train.Workers)
	}
	for i, ex := range c.Train.Examples {
		for in := range ex.Input {
			if !ins[in] {
				return configErrorf("train.examples[%d].input: unknown key %q", i, in)
			}
		}
		for out := range ex.Target {
			if !outs[out] {
				return configErrorf("train.examples[%d].target: unknown key %q", i, out)
			}
		}
		for _, out := range lc.Outputs {
			if _, ok := ex.Target[out]; !ok {
				return configErrorf("train.examples[%d].target: missing key %q", i, out)
			}
		}
	}

	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return configErrorf("logging.level: %v", err)
	}
	return nil
}

func keySet(keys []string) map[string]bool {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[k] = true
	}
	return m
}

// Build constructs a layer from the configuration.
func (lc *LayerConfig) Build(logger *zap.Logger) (*layer.Layer, error) {
	return layer.New(lc.Inputs, lc.Outputs,
		layer.WithRadix(lc.Radix),
		layer.WithScale(lc.Scale),
		layer.WithBases(lc.Bases),
		layer.WithInitialWeights(lc.Weights),
		layer.WithInitialBiases(lc.Biases),
		layer.WithLogger(logger),
	)
}

// Build returns a production zap logger (or a development one) at the
// configured level.
func (lc LoggingConfig) Build() (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(lc.Level)
	if err != nil {
		return nil, configErrorf("logging.level: %v", err)
	}
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
