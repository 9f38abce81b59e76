// Package config describes sweep runs: which conversion, which species,
// and the input grid, loadable from YAML with sensible defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/nconv/internal/physics"
	"github.com/san-kum/nconv/internal/scan"
)

const (
	DefaultConversion = "wavelength-energy"
	DefaultSpecies    = "neutron"
	DefaultMin        = 1e-10
	DefaultMax        = 10e-10
	DefaultPoints     = 64
	DefaultFormat     = "csv"
)

type Config struct {
	Conversion string  `yaml:"conversion"`
	Species    string  `yaml:"species"`
	Min        float64 `yaml:"min"`
	Max        float64 `yaml:"max"`
	Points     int     `yaml:"points"`
	Output     string  `yaml:"output"`
	Format     string  `yaml:"format"`
}

func DefaultConfig() *Config {
	return &Config{
		Conversion: DefaultConversion,
		Species:    DefaultSpecies,
		Min:        DefaultMin,
		Max:        DefaultMax,
		Points:     DefaultPoints,
		Format:     DefaultFormat,
	}
}

// Load reads a YAML config from path, overlaying the defaults.
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

// Validate checks the conversion name, species and grid before a sweep
// runs. An ambiguous species like "he" validates; its advisory is
// non-fatal.
func (c *Config) Validate() error {
	if _, err := scan.Lookup(c.Conversion); err != nil {
		return err
	}
	if c.Species != "" {
		if _, err := physics.ParseSpecies(c.Species); err != nil {
			return err
		}
	}
	if c.Points < 2 {
		return fmt.Errorf("config: points must be at least 2, got %d", c.Points)
	}
	if !(c.Min < c.Max) {
		return fmt.Errorf("config: min (%g) must be below max (%g)", c.Min, c.Max)
	}
	switch c.Format {
	case "csv", "json":
	default:
		return fmt.Errorf("config: unknown format %q (csv or json)", c.Format)
	}
	return nil
}

// Grid returns the input grid described by the config.
func (c *Config) Grid() []float64 {
	return scan.Grid(c.Min, c.Max, c.Points)
}
