package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Config holds all sq9 configuration.
type Config struct {
	// Data is the ephemeris source: a CSV file, or a .db/.sqlite cache
	// produced by `sq9 import`.
	Data string `yaml:"data" env:"SQ9_DATA"`

	// Chart settings
	Chart ChartConfig `yaml:"chart"`

	// UI settings
	UI UIConfig `yaml:"ui"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// ChartConfig configures the spiral and the initial view state.
type ChartConfig struct {
	// GridSize is the side of the spiral; must be odd.
	GridSize int `yaml:"grid_size" env:"SQ9_GRID_SIZE"`

	// HiddenBodies are hidden at startup (abbreviations, e.g. NN).
	HiddenBodies []string `yaml:"hidden_bodies" env:"SQ9_HIDDEN" envSeparator:","`

	// StepUnit is the initial navigation step: day, week, month or year.
	StepUnit string `yaml:"step_unit" env:"SQ9_STEP_UNIT"`

	// StationaryThreshold is the absolute daily motion, in degrees, below
	// which a body counts as stationary.
	StationaryThreshold float64 `yaml:"stationary_threshold" env:"SQ9_STATIONARY_THRESHOLD"`
}

// ValidStepUnits lists the accepted step unit names.
var ValidStepUnits = []string{"day", "week", "month", "year"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Data: "Ephemeris_1900_2079.csv",
		Chart: ChartConfig{
			GridSize:            19,
			HiddenBodies:        []string{"NN"},
			StepUnit:            "day",
			StationaryThreshold: 0.05,
		},
		UI: *DefaultUIConfig(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			File:   filepath.Join(".sq9", "logs", "sq9.log"),
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		case os.IsNotExist(err):
			// defaults
		default:
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies SQ9_* environment variables on top of the file values.
func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Data) == "" {
		return fmt.Errorf("no ephemeris data file configured (set data: or SQ9_DATA)")
	}
	if c.Chart.GridSize < 1 || c.Chart.GridSize%2 == 0 {
		return fmt.Errorf("invalid grid_size %d: must be odd and >= 1", c.Chart.GridSize)
	}
	if c.Chart.StationaryThreshold < 0 {
		return fmt.Errorf("invalid stationary_threshold %v: must be >= 0", c.Chart.StationaryThreshold)
	}

	validUnit := false
	for _, u := range ValidStepUnits {
		if strings.EqualFold(c.Chart.StepUnit, u) {
			validUnit = true
			break
		}
	}
	if !validUnit {
		return fmt.Errorf("invalid step_unit: %s (valid: %v)", c.Chart.StepUnit, ValidStepUnits)
	}

	return c.UI.validate()
}
