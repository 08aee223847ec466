package generator

import (
	"runtime"
	"strings"
)

// Config holds the settings of a compilation run.
type Config struct {
	// Annotations switches table output from interfaces to classes decorated
	// with class-validator / class-transformer metadata.
	Annotations bool
	// Workers bounds the number of items emitted concurrently.
	Workers int
}

// Option configures a compilation run.
type Option func(*Config) error

// WithAnnotations turns annotation mode on or off.
func WithAnnotations(on bool) Option {
	return func(c *Config) error {
		c.Annotations = on
		return nil
	}
}

// WithAnnotationMode parses an annotation mode value: "on" or "off".
func WithAnnotationMode(mode string) Option {
	return func(c *Config) error {
		on, err := ParseAnnotationMode(mode)
		if err != nil {
			return err
		}
		c.Annotations = on
		return nil
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "must be at least 1")
		}
		c.Workers = n
		return nil
	}
}

// ParseAnnotationMode parses "on" or "off", case-insensitively.
func ParseAnnotationMode(mode string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, NewConfigError("Annotations", mode, `must be "on" or "off"`)
	}
}

func newConfig(opts ...Option) (*Config, error) {
	c := &Config{Workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}
