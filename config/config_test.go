package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vi-snake/engine"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvDifficulty, EnvSound, EnvMasterVolume, EnvHighScorePath} {
		t.Setenv(name, "")
	}
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if cfg.DifficultyLevel() != engine.DifficultyMedium {
		t.Errorf("Expected medium, got %v", cfg.DifficultyLevel())
	}
	if cfg.FrameInterval() != 16*time.Millisecond {
		t.Errorf("Expected 16ms, got %v", cfg.FrameInterval())
	}
	if !cfg.Sound || cfg.MasterVolume != 0.5 {
		t.Errorf("Unexpected audio defaults %+v", cfg)
	}
	if !strings.HasSuffix(cfg.HighScorePath, filepath.Join("vi-snake", "highscore")) {
		t.Errorf("Unexpected high score path %q", cfg.HighScorePath)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Expected missing file to be fine, got %v", err)
	}
	if cfg.Difficulty != "medium" {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := writeFile(t, `
difficulty = "Hard"
frame_interval_ms = 20
sound = false
master_volume = 0.25
highscore_path = "/tmp/snake-score"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DifficultyLevel() != engine.DifficultyHard || cfg.Difficulty != "hard" {
		t.Errorf("Expected normalized hard, got %q", cfg.Difficulty)
	}
	if cfg.FrameInterval() != 20*time.Millisecond || cfg.Sound || cfg.MasterVolume != 0.25 {
		t.Errorf("Unexpected values %+v", cfg)
	}
	if cfg.HighScorePath != "/tmp/snake-score" {
		t.Errorf("Unexpected path %q", cfg.HighScorePath)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeFile(t, `difficulty = "easy"`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FrameIntervalMs != 16 || !cfg.Sound {
		t.Errorf("Expected untouched keys to keep defaults, got %+v", cfg)
	}
}

func TestLoadMalformed(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(writeFile(t, `difficulty = `))
	if err == nil {
		t.Fatal("Expected decode error")
	}
	if cfg == nil || cfg.Difficulty != "medium" {
		t.Errorf("Expected defaults alongside the error, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   error
	}{
		{"difficulty", func(c *Config) { c.Difficulty = "insane" }, ErrInvalidDifficulty},
		{"interval low", func(c *Config) { c.FrameIntervalMs = 0 }, ErrInvalidFrameInterval},
		{"interval high", func(c *Config) { c.FrameIntervalMs = 5000 }, ErrInvalidFrameInterval},
		{"volume", func(c *Config) { c.MasterVolume = 1.5 }, ErrInvalidVolume},
		{"path", func(c *Config) { c.HighScorePath = "  " }, ErrEmptyHighScorePath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvDifficulty, "easy")
	t.Setenv(EnvSound, "false")
	t.Setenv(EnvMasterVolume, "0.8")
	t.Setenv(EnvHighScorePath, "/var/tmp/hs")

	cfg, err := Load(writeFile(t, `difficulty = "hard"`))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Difficulty != "easy" || cfg.Sound || cfg.MasterVolume != 0.8 || cfg.HighScorePath != "/var/tmp/hs" {
		t.Errorf("Expected env to win over file, got %+v", cfg)
	}
}

func TestEnvInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSound, "maybe")

	if _, err := Load(""); err == nil {
		t.Error("Expected error for unparsable sound flag")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := Default()
	cfg.Difficulty = "hard"
	cfg.MasterVolume = 0.3
	if err := cfg.Write(path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if *loaded != *cfg {
		t.Errorf("Expected %+v, got %+v", cfg, loaded)
	}
}

func TestEncodeKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := Default().Encode(&buf); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"difficulty", "frame_interval_ms", "highscore_path", "sound", "master_volume"} {
		if !strings.Contains(buf.String(), key+" = ") {
			t.Errorf("Expected key %q in output:\n%s", key, buf.String())
		}
	}
}
