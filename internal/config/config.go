package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/eigenwell/eigenwell/internal/solver"
)

const (
	DefaultPoints     = 2001
	DefaultStates     = 3
	DefaultEMax       = 10.0
	DefaultResolution = 0.05
	DefaultTolerance  = 1e-9
	DefaultMaxIter    = 100
	DefaultPlotScale  = 0.5
)

type Config struct {
	Potential  string       `yaml:"potential"`
	Method     string       `yaml:"method"`
	Stepper    string       `yaml:"stepper"`
	Points     int          `yaml:"points"`
	States     int          `yaml:"states"`
	EMin       float64      `yaml:"e_min"`
	EMax       float64      `yaml:"e_max"`
	Resolution float64      `yaml:"resolution"`
	Tolerance  float64      `yaml:"tolerance"`
	MaxIter    int          `yaml:"max_iter"`
	Domain     DomainConfig `yaml:"domain"`
	Plot       PlotConfig   `yaml:"plot"`
}

type DomainConfig struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type PlotConfig struct {
	// Scale multiplies the wavefunctions before offsetting them by their
	// energies in the overlay plot.
	Scale float64 `yaml:"scale"`
}

func DefaultConfig() *Config {
	return &Config{
		Potential:  "harmonic",
		Method:     solver.MethodShooting,
		Stepper:    "rk4",
		Points:     DefaultPoints,
		States:     DefaultStates,
		EMax:       DefaultEMax,
		Resolution: DefaultResolution,
		Tolerance:  DefaultTolerance,
		MaxIter:    DefaultMaxIter,
		Plot:       PlotConfig{Scale: DefaultPlotScale},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ToOptions maps the file values onto solver options.
func (c *Config) ToOptions() solver.Options {
	opts := solver.DefaultOptions()
	if c.Method != "" {
		opts.Method = c.Method
	}
	if c.Stepper != "" {
		opts.Stepper = c.Stepper
	}
	if c.Points > 0 {
		opts.Points = c.Points
	}
	if c.States > 0 {
		opts.States = c.States
	}
	opts.EMin = c.EMin
	if c.EMax != 0 {
		opts.EMax = c.EMax
	}
	if c.Resolution > 0 {
		opts.Resolution = c.Resolution
	}
	if c.Tolerance > 0 {
		opts.Tolerance = c.Tolerance
	}
	if c.MaxIter > 0 {
		opts.MaxIter = c.MaxIter
	}
	opts.Domain = [2]float64{c.Domain.Min, c.Domain.Max}
	return opts
}
