// SPDX-License-Identifier: EPL-2.0

// Package config loads the reader settings for the pcm8wav command.
//
// Settings come from an optional YAML file:
//
//	sample_rate: 9615
//	max_samples: 1048576
//	skip_unknown_chunks: false
//
// Keys missing from the file keep their defaults.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

const (
	// DefaultSampleRate is the capture rate of the pitch detector hardware.
	DefaultSampleRate = 9615

	// DefaultMaxSamples bounds the sample buffer to 1 MiB.
	DefaultMaxSamples = 1 << 20
)

var ErrInvalidSampleRate = errors.New("sample_rate must be greater than zero")

// Config holds the reader settings.
type Config struct {
	SampleRate        uint32 `yaml:"sample_rate"`
	MaxSamples        uint32 `yaml:"max_samples"`
	SkipUnknownChunks bool   `yaml:"skip_unknown_chunks"`
}

// Default returns the built in settings.
func Default() *Config {
	return &Config{
		SampleRate: DefaultSampleRate,
		MaxSamples: DefaultMaxSamples,
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate reports settings no file could be read with.
func (c *Config) Validate() error {
	if c.SampleRate == 0 {
		return ErrInvalidSampleRate
	}
	return nil
}

// Save writes c to path as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
