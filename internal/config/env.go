package config

import (
	"fmt"
	"os"
	"strconv"
)

// Environment variables read by FromEnv and ApplyEnv.
const (
	EnvSeed          = "OUTFIT_SEED"
	EnvMaxTextLength = "OUTFIT_MAX_TEXT_LENGTH"
	EnvVerbose       = "OUTFIT_VERBOSE"
)

// FromEnv builds a configuration from environment variables (typically
// populated from .env). Unset variables leave zero values.
func FromEnv() (Config, error) {
	return ApplyEnv(Config{})
}

// ApplyEnv overrides the fields of base whose environment variables are set.
// A set variable always wins, so OUTFIT_VERBOSE=false turns verbose off.
func ApplyEnv(base Config) (Config, error) {
	cfg := base

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %v", EnvSeed, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv(EnvMaxTextLength); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %v", EnvMaxTextLength, err)
		}
		if n < 0 {
			return Config{}, fmt.Errorf("%s must be non-negative, got: %d", EnvMaxTextLength, n)
		}
		cfg.MaxTextLength = n
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %v", EnvVerbose, err)
		}
		cfg.Verbose = verbose
	}

	return cfg, nil
}
