package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/balkashynov/timeclock/internal/worktime"
)

// Prefix is prepended to every environment key, e.g. TIMECLOCK_DB_PATH.
const Prefix = "TIMECLOCK"

// Config holds runtime configuration for the CLI.
type Config struct {
	DBPath    string `envconfig:"DB_PATH"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn" validate:"omitempty,oneof=debug info warn warning error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`

	HourlyRate       float64 `envconfig:"HOURLY_RATE" default:"0" validate:"gte=0"`
	OvertimeRate     float64 `envconfig:"OVERTIME_RATE" default:"0" validate:"gte=0"`
	PenaltyPerMinute float64 `envconfig:"PENALTY_PER_MINUTE" default:"0" validate:"gte=0"`
}

// Load reads an optional .env file from the working directory and then the
// TIMECLOCK_* environment variables. Variables already set in the
// environment win over the file.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	if cfg.DBPath == "" {
		path, err := DefaultDBPath()
		if err != nil {
			return nil, err
		}
		cfg.DBPath = path
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultDBPath returns ~/.timeclock/timeclock.db.
func DefaultDBPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".timeclock", "timeclock.db"), nil
}

// Validate normalizes the log settings and checks every field.
func (c *Config) Validate() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))

	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("invalid %s %v (%s=%s)", fe.Field(), fe.Value(), fe.Tag(), fe.Param())
		}
		return err
	}
	return nil
}

// Rates returns the configured payroll rates.
func (c *Config) Rates() worktime.Rates {
	return worktime.Rates{
		Hourly:           c.HourlyRate,
		Overtime:         c.OvertimeRate,
		PenaltyPerMinute: c.PenaltyPerMinute,
	}
}

// NewLogger returns a slog.Logger writing to stderr so it never mixes with
// command output.
func NewLogger(cfg *Config) *slog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg *Config, w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	format := "text"
	if cfg != nil {
		if l, err := parseLevel(cfg.LogLevel); err == nil {
			level = l
		}
		format = strings.ToLower(cfg.LogFormat)
	}

	opts := &slog.HandlerOptions{Level: level}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("invalid log level %q (want debug, info, warn or error)", s)
}
