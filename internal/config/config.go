// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Output formats accepted by the non-interactive commands.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Seed for Surprise Me picks; 0 seeds from the clock
	Seed uint64 `json:"seed,omitempty"`
	// Verbose prints diagnostic log lines
	Verbose bool `json:"verbose,omitempty"`
	// MaxTextLength truncates free text to this many runes; 0 = unbounded
	MaxTextLength int `json:"max_text_length,omitempty" validate:"gte=0"`
	// SkipGreeting skips the greeting and seasonal tip on start
	SkipGreeting bool `json:"skip_greeting,omitempty"`
	// OutputFormat for the recommend and catalog commands
	OutputFormat string `json:"output_format,omitempty" validate:"omitempty,oneof=text json yaml"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{OutputFormat: FormatText}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}
	if result.MaxTextLength == 0 {
		result.MaxTextLength = defaults.MaxTextLength
	}
	if result.OutputFormat == "" {
		result.OutputFormat = defaults.OutputFormat
	}

	// Bool fields: cannot distinguish unset from false, so a true on either side wins
	result.Verbose = result.Verbose || defaults.Verbose
	result.SkipGreeting = result.SkipGreeting || defaults.SkipGreeting

	return result
}
