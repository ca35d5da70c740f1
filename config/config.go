// Package config loads pathviz settings from an optional .env file and the
// process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// ErrInvalidValue is returned when a variable is set but cannot be parsed or
// is out of range.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvRows        = "PATHVIZ_ROWS"
	EnvWidthPx     = "PATHVIZ_WIDTH_PX"
	EnvSeed        = "PATHVIZ_SEED"
	EnvAlgorithm   = "PATHVIZ_ALGORITHM"
	EnvLogLevel    = "PATHVIZ_LOG_LEVEL"
	EnvFrameDir    = "PATHVIZ_FRAME_DIR"
	EnvFrameStride = "PATHVIZ_FRAME_STRIDE"
)

// Config holds the application's configuration values.
type Config struct {
	Rows        int    // Grid side length N
	WidthPx     int    // Board width in pixels, used for pointer translation and PNG frames
	Seed        int64  // Neighbor-shuffle seed; 0 picks the grid default
	Algorithm   string // Default search algorithm name (astar, bfs, dfs)
	LogLevel    string // logrus level name
	FrameDir    string // Directory for PNG frames; empty disables them
	FrameStride int    // Keep every k-th frame
}

// Default returns the built-in configuration: a 64-row board 1280px wide.
func Default() Config {
	return Config{
		Rows:        64,
		WidthPx:     1280,
		Algorithm:   "astar",
		LogLevel:    "info",
		FrameStride: 1,
	}
}

// Load reads the given .env files (".env" when none are named) into the
// environment, then builds a Config from the environment on top of Default.
// Missing .env files are not an error; variables already set in the
// environment win over file values.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", f, err)
		}
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Rows, err = getEnvAsInt(EnvRows, cfg.Rows); err != nil {
		return Config{}, err
	}
	if cfg.WidthPx, err = getEnvAsInt(EnvWidthPx, cfg.WidthPx); err != nil {
		return Config{}, err
	}
	seed, err := getEnvAsInt(EnvSeed, 0)
	if err != nil {
		return Config{}, err
	}
	cfg.Seed = int64(seed)
	if cfg.FrameStride, err = getEnvAsInt(EnvFrameStride, cfg.FrameStride); err != nil {
		return Config{}, err
	}
	cfg.Algorithm = strings.ToLower(getEnvWithDefault(EnvAlgorithm, cfg.Algorithm))
	cfg.LogLevel = strings.ToLower(getEnvWithDefault(EnvLogLevel, cfg.LogLevel))
	cfg.FrameDir = getEnvWithDefault(EnvFrameDir, cfg.FrameDir)

	return cfg, cfg.Validate()
}

// Validate checks ranges: Rows >= 1, WidthPx >= Rows (at least one pixel per
// cell) and FrameStride >= 1.
func (c Config) Validate() error {
	switch {
	case c.Rows < 1:
		return fmt.Errorf("%w: rows must be >= 1, got %d", ErrInvalidValue, c.Rows)
	case c.WidthPx < c.Rows:
		return fmt.Errorf("%w: width %dpx leaves no room for %d rows", ErrInvalidValue, c.WidthPx, c.Rows)
	case c.FrameStride < 1:
		return fmt.Errorf("%w: frame stride must be >= 1, got %d", ErrInvalidValue, c.FrameStride)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer, falling back to defaultValue when unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(valueStr))
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %v", ErrInvalidValue, key, err)
	}
	return value, nil
}
