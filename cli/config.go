// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: The optional YAML configuration file of the command line.

package cli

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Defaults of Config.
const (
	DefaultThreshold = 1e-10
	DefaultFormat    = "text"
	DefaultLogLevel  = "warn"
)

// Config holds the settings that may come from a qalgebra.yaml file.
// Command-line flags override every field.
type Config struct {
	// Threshold is the truncation threshold used when --threshold is not set.
	Threshold float64 `yaml:"threshold" validate:"gte=0"`
	Format    string  `yaml:"format" validate:"oneof=text json yaml msgpack"`
	LogLevel  string  `yaml:"log_level" validate:"oneof=trace debug info warn error"`
}

// DefaultConfig returns the configuration used without a file.
func DefaultConfig() Config {
	return Config{Threshold: DefaultThreshold, Format: DefaultFormat, LogLevel: DefaultLogLevel}
}

var configValidate = validator.New()

// LoadConfig reads path over the defaults and validates the result. Fields
// missing from the file keep their default.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err = configValidate.Struct(cfg); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
