// Package config loads application configuration from an optional YAML
// file with environment-variable overrides.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config defines application configuration. Week values here are defaults
// seeded into the settings table on first run; the live values are edited
// from the TUI settings view.
type Config struct {
	DBPath string     `yaml:"db_path"`
	Log    LogConfig  `yaml:"log"`
	Week   WeekConfig `yaml:"week"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type WeekConfig struct {
	TargetMinutes       int    `yaml:"target_minutes"`
	DailyMinimumMinutes int    `yaml:"daily_minimum_minutes"`
	StartDay            string `yaml:"start_day"` // "monday" or "sunday"
}

// Load reads configuration from an optional YAML file and environment
// variables. The file is WEEKHOURS_CONFIG_PATH when set, otherwise
// ~/.config/weekhours/config.yaml when present.
func Load() (Config, error) {
	cfg := Config{
		Log: LogConfig{Level: "info"},
		Week: WeekConfig{
			TargetMinutes:       2700,
			DailyMinimumMinutes: 360,
			StartDay:            "monday",
		},
	}

	path := os.Getenv("WEEKHOURS_CONFIG_PATH")
	if path == "" {
		if dir, err := os.UserConfigDir(); err == nil {
			candidate := filepath.Join(dir, "weekhours", "config.yaml")
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}
	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if dbPath := os.Getenv("WEEKHOURS_DB"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	if level := os.Getenv("WEEKHOURS_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if target := os.Getenv("WEEKHOURS_WEEKLY_TARGET"); target != "" {
		n, err := strconv.Atoi(target)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WEEKHOURS_WEEKLY_TARGET: %w", err)
		}
		cfg.Week.TargetMinutes = n
	}
	if minimum := os.Getenv("WEEKHOURS_DAILY_MINIMUM"); minimum != "" {
		n, err := strconv.Atoi(minimum)
		if err != nil {
			return Config{}, fmt.Errorf("invalid WEEKHOURS_DAILY_MINIMUM: %w", err)
		}
		cfg.Week.DailyMinimumMinutes = n
	}
	if day := os.Getenv("WEEKHOURS_WEEK_START"); day != "" {
		cfg.Week.StartDay = day
	}

	return cfg, nil
}

// WeekStart maps the configured start day to a weekday. Anything other
// than "sunday" means Monday.
func (c Config) WeekStart() time.Weekday {
	if c.Week.StartDay == "sunday" {
		return time.Sunday
	}
	return time.Monday
}

// SlogLevel maps the configured log level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
