package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

const appDir = "vi-snake"

// Environment variable names
const (
	EnvDifficulty    = "VI_SNAKE_DIFFICULTY"
	EnvSound         = "VI_SNAKE_SOUND"
	EnvMasterVolume  = "VI_SNAKE_MASTER_VOLUME"
	EnvHighScorePath = "VI_SNAKE_HIGHSCORE_PATH"
)

// Sentinel errors
var (
	ErrInvalidDifficulty    = errors.New("invalid difficulty")
	ErrInvalidFrameInterval = errors.New("frame interval out of range")
	ErrInvalidVolume        = errors.New("master volume out of range")
	ErrEmptyHighScorePath   = errors.New("high score path is empty")
)

// Config is the user-editable game configuration
type Config struct {
	Difficulty      string  `toml:"difficulty"`
	FrameIntervalMs int     `toml:"frame_interval_ms"`
	HighScorePath   string  `toml:"highscore_path"`
	Sound           bool    `toml:"sound"`
	MasterVolume    float64 `toml:"master_volume"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Difficulty:      engine.DifficultyMedium.String(),
		FrameIntervalMs: int(constants.FrameUpdateInterval / time.Millisecond),
		HighScorePath:   filepath.Join(baseDir(), appDir, "highscore"),
		Sound:           true,
		MasterVolume:    constants.DefaultMasterVolume,
	}
}

// DefaultPath returns the config file location under the user config dir
func DefaultPath() string {
	return filepath.Join(baseDir(), appDir, "config.toml")
}

// baseDir falls back to the working directory when no user config dir exists
func baseDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return dir
}

// Load reads path over the defaults, then applies environment overrides
// A missing file is not an error
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return Default(), fmt.Errorf("decode config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// applyEnv overrides fields from VI_SNAKE_* variables; unset variables are skipped
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDifficulty); v != "" {
		c.Difficulty = v
	}
	if v := os.Getenv(EnvSound); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSound, err)
		}
		c.Sound = b
	}
	if v := os.Getenv(EnvMasterVolume); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		c.MasterVolume = f
	}
	if v := os.Getenv(EnvHighScorePath); v != "" {
		c.HighScorePath = v
	}
	return nil
}

// Validate checks ranges and normalizes the difficulty name
func (c *Config) Validate() error {
	d, err := engine.ParseDifficulty(c.Difficulty)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDifficulty, c.Difficulty)
	}
	c.Difficulty = d.String()

	interval := time.Duration(c.FrameIntervalMs) * time.Millisecond
	if interval < constants.MinFrameInterval || interval > constants.MaxFrameInterval {
		return fmt.Errorf("%w: %dms", ErrInvalidFrameInterval, c.FrameIntervalMs)
	}
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidVolume, c.MasterVolume)
	}
	if strings.TrimSpace(c.HighScorePath) == "" {
		return ErrEmptyHighScorePath
	}
	return nil
}

// DifficultyLevel returns the parsed difficulty, medium when invalid
func (c *Config) DifficultyLevel() engine.Difficulty {
	d, err := engine.ParseDifficulty(c.Difficulty)
	if err != nil {
		return engine.DifficultyMedium
	}
	return d
}

// FrameInterval returns the driver period
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMs) * time.Millisecond
}

// Encode writes c as TOML
func (c *Config) Encode(w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Write saves c to path, creating parent directories
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	if err := c.Encode(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
