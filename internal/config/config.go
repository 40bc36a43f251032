// Package config provides configuration for the chess rules CLI.
package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Log formats accepted by LoggingConfig.Format.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
	LogFormatLegacy  = "legacy"
)

// DefaultMaxPerftDepth caps perft requests from the CLI.
const DefaultMaxPerftDepth = 6

// Config holds all program configuration.
type Config struct {
	// StartFEN is the position a new game starts from.
	StartFEN string `yaml:"start_fen"`

	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
	Perft   PerftConfig   `yaml:"perft"`
}

// LoggingConfig holds settings for the process logger.
type LoggingConfig struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is console, json or legacy.
	Format string `yaml:"format"`

	// File, when set, receives a copy of every log entry.
	File string `yaml:"file"`

	// Console enables logging to stderr.
	Console bool `yaml:"console"`

	// Caller adds the calling file and line to each entry.
	Caller bool `yaml:"caller"`
}

// PerftConfig holds limits for the perft command.
type PerftConfig struct {
	MaxDepth int `yaml:"max_depth"`

	// Workers is the number of goroutines counting root moves;
	// 0 means one per CPU.
	Workers int `yaml:"workers"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		StartFEN: engine.InitialFEN,
		Logging: LoggingConfig{
			Level:   "warn",
			Format:  LogFormatConsole,
			Console: true,
		},
		Output: *NewOutputConfig(),
		Perft:  PerftConfig{MaxDepth: DefaultMaxPerftDepth},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if _, err := engine.NewPositionFromFEN(c.StartFEN); err != nil {
		return fmt.Errorf("start_fen: %w: %w", errors.ErrInvalidConfig, err)
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	if c.Perft.MaxDepth < 1 {
		return fmt.Errorf("perft max_depth (%d) must be at least 1: %w", c.Perft.MaxDepth, errors.ErrInvalidConfig)
	}
	if c.Perft.Workers < 0 {
		return fmt.Errorf("perft workers (%d) must not be negative: %w", c.Perft.Workers, errors.ErrInvalidConfig)
	}
	return nil
}

// Validate checks the level and format names.
func (l *LoggingConfig) Validate() error {
	switch strings.ToLower(strings.TrimSpace(l.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log level %q: %w", l.Level, errors.ErrInvalidConfig)
	}
	switch strings.ToLower(strings.TrimSpace(l.Format)) {
	case LogFormatConsole, LogFormatJSON, LogFormatLegacy:
	default:
		return fmt.Errorf("log format %q: %w", l.Format, errors.ErrInvalidConfig)
	}
	return nil
}
