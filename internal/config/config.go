package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultTheme     = "cyberpunk"
	DefaultTimeScale = 1.0
	DefaultLogLevel  = "info"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnknownPreset indicates a preset name with no definition.
	ErrUnknownPreset = errors.New("config: unknown preset")
)

type Config struct {
	Theme     string  `yaml:"theme"`
	Seed      int64   `yaml:"seed"`
	TimeScale float64 `yaml:"time_scale"`
	LogLevel  string  `yaml:"log_level"`
	LogFile   string  `yaml:"log_file"`
}

func DefaultConfig() *Config {
	return &Config{
		Theme:     DefaultTheme,
		TimeScale: DefaultTimeScale,
		LogLevel:  DefaultLogLevel,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base, so keys missing from the
// file keep base's values.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := *base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.TimeScale <= 0 {
		return fmt.Errorf("%w: time_scale must be positive, got %g", ErrInvalidConfig, c.TimeScale)
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseLevel maps a log_level value onto a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s)
	}
	return lvl, nil
}
