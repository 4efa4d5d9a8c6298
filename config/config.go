// Package config resolves the runtime configuration of the payments-engine
// binary. It merges file values over defaults so local runs need no file at
// all.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the resolved runtime configuration.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Output    OutputConfig    `yaml:"output"`
	Reporting ReportingConfig `yaml:"reporting"`
}

type LogConfig struct {
	// Level follows zap's level names (debug, info, warn, error).
	Level string `yaml:"level"`
}

type OutputConfig struct {
	// Precision is the number of decimal places in exported amounts;
	// -1 keeps the exact representation.
	Precision int `yaml:"precision"`
}

type ReportingConfig struct {
	// IncludeAccountErrors surfaces account-level (business) rejections in
	// the error report. Command-level errors are always reported.
	IncludeAccountErrors bool `yaml:"include_account_errors"`
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Log:    LogConfig{Level: "info"},
		Output: OutputConfig{Precision: -1},
	}
}

// Load reads a YAML configuration file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Output.Precision < -1 || c.Output.Precision > 28 {
		return fmt.Errorf("output precision must be between -1 and 28, got %d", c.Output.Precision)
	}
	if c.Log.Level == "" {
		return fmt.Errorf("log level must not be empty")
	}
	return nil
}
