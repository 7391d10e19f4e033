package pkg

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvLevel = "TETRITERM_LEVEL"
	EnvSeed  = "TETRITERM_SEED"
	EnvName  = "TETRITERM_NAME"
	EnvTheme = "TETRITERM_THEME"
	EnvLog   = "TETRITERM_LOG"
)

type Config struct {
	Level   int
	Seed    int64 // 0 picks a seed from the clock
	Name    string
	Theme   string
	LogPath string
}

func DefaultConfig() Config {
	return Config{
		Level:   1,
		Theme:   "basic",
		LogPath: "./tetriterm.log",
	}
}

// LoadConfig starts from DefaultConfig and applies the TETRITERM_* variables.
// Variables from envFile are loaded first without overriding ones already set;
// a missing envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	cfg := DefaultConfig()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if v := os.Getenv(EnvLevel); v != "" {
		level, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvLevel, v, err)
		}
		cfg.Level = level
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv(EnvName); v != "" {
		cfg.Name = v
	}
	if v := os.Getenv(EnvTheme); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv(EnvLog); v != "" {
		cfg.LogPath = v
	}

	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Level < 1 {
		return fmt.Errorf("level must be at least 1, got %d", c.Level)
	}
	if c.LogPath == "" {
		return errors.New("log path must not be empty")
	}
	return nil
}
