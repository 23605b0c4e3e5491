// Package config loads svgflat settings from a .env file and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvLogLevel  = "SVGFLAT_LOG_LEVEL"
	EnvDev       = "SVGFLAT_DEV"
	EnvFormat    = "SVGFLAT_FORMAT"
	EnvDelimiter = "SVGFLAT_DELIMITER"
	EnvMaxWidth  = "SVGFLAT_MAX_WIDTH"
	EnvNoColor   = "NO_COLOR"
)

// Config holds the settings command flags fall back to.
type Config struct {
	// LogLevel is a zap level name (debug, info, warn, error)
	LogLevel string

	// Development switches to human readable console logs
	Development bool

	// Format is the default output format name
	Format string

	// Delimiter is the default CSV field delimiter
	Delimiter string

	// MaxWidth truncates attribute values in the tree view, 0 for no limit
	MaxWidth int

	// NoColor disables terminal styling
	NoColor bool
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		LogLevel:  "warn",
		Format:    "csv",
		Delimiter: ",",
	}
}

// Load reads the .env files (default ".env") if they exist and then the
// environment. Variables already set in the environment win over .env values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to load %s: %w", f, err)
		}
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from environment variables over the defaults.
func FromEnv() Config {
	def := Default()
	return Config{
		LogLevel:    GetEnvOrDefault(EnvLogLevel, def.LogLevel),
		Development: GetEnvBoolOrDefault(EnvDev, def.Development),
		Format:      GetEnvOrDefault(EnvFormat, def.Format),
		Delimiter:   GetEnvOrDefault(EnvDelimiter, def.Delimiter),
		MaxWidth:    GetEnvIntOrDefault(EnvMaxWidth, def.MaxWidth),
		NoColor:     os.Getenv(EnvNoColor) != "",
	}
}

// Helper functions for environment variable handling
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
