package trace

import (
	"errors"
	"fmt"

	"github.com/arloliu/rlestep/internal/options"
)

// ErrStepLimit is returned when a trace would exceed the configured step limit.
var ErrStepLimit = errors.New("trace step limit exceeded")

// Config holds tracer settings.
type Config struct {
	maxSteps     int
	descriptions bool
}

func defaultConfig() *Config {
	return &Config{
		maxSteps:     0,
		descriptions: true,
	}
}

// MaxSteps returns the configured step limit, 0 meaning unlimited.
func (c *Config) MaxSteps() int {
	return c.maxSteps
}

// Descriptions reports whether steps carry descriptions.
func (c *Config) Descriptions() bool {
	return c.descriptions
}

// Option represents a functional option for configuring the tracer.
// This is a type alias for the generic Option interface specialized for Config.
type Option = options.Option[*Config]

// WithMaxSteps aborts tracing with ErrStepLimit once more than n steps would
// be recorded. Zero disables the limit.
func WithMaxSteps(n int) Option {
	return options.New(func(c *Config) error {
		if n < 0 {
			return fmt.Errorf("invalid max steps: %d", n)
		}
		c.maxSteps = n

		return nil
	})
}

// WithDescriptions controls whether steps carry human-readable descriptions.
func WithDescriptions(enabled bool) Option {
	return options.NoError(func(c *Config) {
		c.descriptions = enabled
	})
}

func newConfig(opts []Option) (*Config, error) {
	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}
