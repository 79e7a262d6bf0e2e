package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/collatz/internal/collatz"
	"github.com/san-kum/collatz/internal/playback"
)

const (
	DefaultStart      = 27
	DefaultIntervalMs = playback.DefaultIntervalMs
	DefaultScale      = "log"
	DefaultTheme      = "cyberpunk"
	DefaultDataDir    = "."

	// Speed slider range, ms per step.
	MinIntervalMs = 25
	MaxIntervalMs = 1000
)

type Config struct {
	Start      int64  `yaml:"start"`
	Cap        int    `yaml:"cap"`
	IntervalMs int    `yaml:"interval_ms"`
	Scale      string `yaml:"scale"`
	Theme      string `yaml:"theme"`
	DataDir    string `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Start:      DefaultStart,
		Cap:        collatz.DefaultCap,
		IntervalMs: DefaultIntervalMs,
		Scale:      DefaultScale,
		Theme:      DefaultTheme,
		DataDir:    DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Start <= 0 {
		return fmt.Errorf("config: start must be positive, got %d", c.Start)
	}
	if c.Cap <= 0 {
		return fmt.Errorf("config: cap must be positive, got %d", c.Cap)
	}
	if c.IntervalMs <= 0 {
		return fmt.Errorf("config: interval_ms must be positive, got %d", c.IntervalMs)
	}
	if _, err := playback.ParseScaleMode(c.Scale); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

func (c *Config) ScaleMode() playback.ScaleMode {
	m, err := playback.ParseScaleMode(c.Scale)
	if err != nil {
		return playback.Logarithmic
	}
	return m
}

// ClampInterval keeps ms inside the speed slider range.
func ClampInterval(ms int) int {
	if ms < MinIntervalMs {
		return MinIntervalMs
	}
	if ms > MaxIntervalMs {
		return MaxIntervalMs
	}
	return ms
}
