// Package config loads the settings shared by the wave tools from an optional
// YAML file.
package config

import (
	"bytes"
	"demon-waves/internal/radar"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds tool settings. Zero-valued fields in a file keep their defaults.
type Config struct {
	Seed      int64         `yaml:"seed"`       // 0 seeds from the clock
	StartWave int           `yaml:"start_wave"` // first wave shown
	Waves     int           `yaml:"waves"`      // number of waves wavegen prints
	Radar     radar.Config  `yaml:"radar"`
	Spawn     SpawnConfig   `yaml:"spawn"`
	Journal   JournalConfig `yaml:"journal"`
	Log       LogConfig     `yaml:"log"`
}

// SpawnConfig is the ring the spawn director places demons on.
type SpawnConfig struct {
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
}

// JournalConfig controls the wave journal. An empty Dir uses the XDG default.
type JournalConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// LogConfig selects the slog level and an optional log file.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		StartWave: 1,
		Waves:     20,
		Radar:     radar.DefaultConfig,
		Spawn:     SpawnConfig{MinDistance: 20, MaxDistance: 55},
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected so typos surface instead of being ignored.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks ranges that would otherwise fail deep inside a tool.
func (c Config) Validate() error {
	if c.Waves <= 0 {
		return fmt.Errorf("config: waves %d must be positive", c.Waves)
	}
	if err := c.Radar.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if c.Spawn.MinDistance < 0 || c.Spawn.MaxDistance < c.Spawn.MinDistance {
		return fmt.Errorf("config: spawn distances [%g, %g] out of order",
			c.Spawn.MinDistance, c.Spawn.MaxDistance)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SlogLevel parses Level ("debug", "info", "warn", "error").
func (c LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if c.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// OpenLogger builds a text logger writing to File, or to fallback when no
// file is configured. The returned close function releases the file.
func (c LogConfig) OpenLogger(fallback io.Writer) (*slog.Logger, func() error, error) {
	lvl, err := c.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	w := fallback
	closeFn := func() error { return nil }
	if c.File != "" {
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	return logger, closeFn, nil
}
