package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFormat       = "text"
	DefaultMaxSteps     = 100000
	DefaultDescriptions = true
)

// Formats lists the accepted trace output formats.
var Formats = []string{"text", "yaml", "json"}

// Config holds CLI settings that can be loaded from a YAML file and then
// overridden by flags.
type Config struct {
	Format       string `yaml:"format"`
	MaxSteps     int    `yaml:"max_steps"`
	Descriptions bool   `yaml:"descriptions"`
	Verbose      bool   `yaml:"verbose"`
}

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() *Config {
	return &Config{
		Format:       DefaultFormat,
		MaxSteps:     DefaultMaxSteps,
		Descriptions: DefaultDescriptions,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports an error for an unknown output format or a negative
// step limit.
func (c *Config) Validate() error {
	valid := false
	for _, f := range Formats {
		if c.Format == f {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid format %q, expected one of %v", c.Format, Formats)
	}

	if c.MaxSteps < 0 {
		return fmt.Errorf("max_steps must be >= 0, got %d", c.MaxSteps)
	}

	return nil
}
