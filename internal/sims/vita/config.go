package vita

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Params holds the tunable rule and seeding values for the simulation.
type Params struct {
	// SeedFraction is the fraction of total cells used as the glider count at
	// reset: floor(W*H*fraction) gliders.
	SeedFraction float64 `yaml:"seed_fraction"`
	SurviveMax   float64 `yaml:"survive_max"`
	BirthMin     float64 `yaml:"birth_min"`
	Workers      int     `yaml:"workers"`
}

// Config controls the simulation dimensions and parameters.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  100,
		Height: 100,
		Seed:   444,
		Params: Params{
			SeedFraction: 0.01,
			SurviveMax:   0.8,
			BirthMin:     0.275,
			Workers:      1,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["seed_fraction"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SeedFraction = parsed
		}
	}
	if v, ok := cfg["survive_max"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.SurviveMax = parsed
		}
	}
	if v, ok := cfg["birth_min"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.BirthMin = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.Workers = parsed
		}
	}
	return c
}

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Validate rejects configurations the engine cannot run.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("%w: width %d", ErrInvalidConfig, c.Width)
	}
	if c.Height <= 0 {
		return fmt.Errorf("%w: height %d", ErrInvalidConfig, c.Height)
	}
	if c.Params.SeedFraction < 0 {
		return fmt.Errorf("%w: seed fraction %f", ErrInvalidConfig, c.Params.SeedFraction)
	}
	if c.Params.Workers < 1 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Params.Workers)
	}
	return nil
}

// WriteYAML saves the configuration next to run output for reproducibility.
func (c Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
