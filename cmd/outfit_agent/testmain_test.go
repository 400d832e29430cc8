package main

import (
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/jonathan/outfit-recommender/internal/config"
)

// TestMain runs before all tests and loads .env if available
func TestMain(m *testing.M) {
	// Try to load .env file - ignore error if it doesn't exist (CI environment)
	_ = godotenv.Load()

	// Recommender settings from a developer's .env would make output nondeterministic
	for _, key := range []string{config.EnvSeed, config.EnvMaxTextLength, config.EnvVerbose} {
		_ = os.Unsetenv(key)
	}

	os.Exit(m.Run())
}
