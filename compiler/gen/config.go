package gen

import (
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Config holds global configuration for code generation.
type Config struct {
	// Package is the root Python package the generated classes belong
	// to, used for the import references in emitted source.
	Package string `yaml:"package"`
	// Width is the docstring wrap column.
	Width int `yaml:"width"`
	// Target is the output directory the batch writer writes under.
	Target string `yaml:"target"`
	// Workers is the number of parallel emission workers.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the configuration defaults: the "plotly" package
// root, the conventional 79-column wrap, and one worker per CPU.
func DefaultConfig() *Config {
	return &Config{
		Package: "plotly",
		Width:   79,
		Workers: runtime.GOMAXPROCS(0),
	}
}

// Option configures code generation.
type Option func(*Config) error

// WithPackage sets the root Python package of the generated classes.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if pkg == "" {
			return NewConfigError("Package", pkg, "package root cannot be empty")
		}
		c.Package = pkg
		return nil
	}
}

// WithWidth sets the docstring wrap column.
func WithWidth(width int) Option {
	return func(c *Config) error {
		if width < 40 {
			return NewConfigError("Width", width, "wrap column must be at least 40")
		}
		c.Width = width
		return nil
	}
}

// WithTarget sets the output directory for the batch writer.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", dir, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithWorkers sets the number of parallel emission workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 1 {
			return NewConfigError("Workers", n, "worker count must be positive")
		}
		c.Workers = n
		return nil
	}
}

// NewConfig builds a configuration from the defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := DefaultConfig()
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ConfigFromFile loads a configuration from a YAML file. Unset fields keep
// their defaults.
func ConfigFromFile(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := DefaultConfig()
	if err := yaml.Unmarshal(buf, c); err != nil {
		return nil, NewConfigError("File", path, err.Error())
	}
	if c.Package == "" {
		return nil, NewConfigError("Package", nil, "package root cannot be empty")
	}
	if c.Width < 40 {
		return nil, NewConfigError("Width", c.Width, "wrap column must be at least 40")
	}
	if c.Workers < 1 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
	return c, nil
}
