package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/scorer-runtime/metrics"
)

// Config represents the optional score.yaml configuration.
type Config struct {
	Algorithm    string   `yaml:"algorithm,omitempty"`
	Cutoff       float64  `yaml:"cutoff,omitempty"`
	PrefixWeight *float64 `yaml:"prefix_weight,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{Algorithm: "jarowinkler"}
}

// LoadOptional reads the config file if path is non-empty.
func LoadOptional(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Algorithm == "" {
		cfg.Algorithm = "jarowinkler"
	}
	return cfg, nil
}

func (c Config) prefixWeight() float64 {
	if c.PrefixWeight != nil {
		return *c.PrefixWeight
	}
	return metrics.DefaultPrefixWeight
}
