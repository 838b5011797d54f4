package config

import (
	"go.uber.org/zap/zapcore"

	"github.com/lgbarn/ludo-go/internal/errors"
)

// LogConfig holds settings for the logger.
type LogConfig struct {
	// Level is a zap level name: debug, info, warn, error
	Level string `mapstructure:"level"`

	// File is the path of a JSON log file; empty logs to stderr only
	File string `mapstructure:"file"`

	// MaxSize is the size in megabytes at which the log file is rotated
	MaxSize int `mapstructure:"max_size"`

	// MaxBackups is the number of rotated files kept
	MaxBackups int `mapstructure:"max_backups"`

	// MaxAge is the number of days rotated files are kept
	MaxAge int `mapstructure:"max_age"`

	// Compress gzips rotated files
	Compress bool `mapstructure:"compress"`

	// Dev enables development mode: stack traces from warn upwards
	Dev bool `mapstructure:"dev"`
}

// NewLogConfig creates a LogConfig with default values.
func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level:      "info",
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

// ParsedLevel returns Level as a zap level.
func (c *LogConfig) ParsedLevel() (zapcore.Level, error) {
	if c.Level == "" {
		return zapcore.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel, errors.Wrapf(errors.ErrInvalidConfig, "log level %q", c.Level)
	}
	return lvl, nil
}

// Validate checks the log settings.
func (c *LogConfig) Validate() error {
	if _, err := c.ParsedLevel(); err != nil {
		return err
	}
	if c.MaxSize < 0 || c.MaxBackups < 0 || c.MaxAge < 0 {
		return errors.Wrap(errors.ErrInvalidConfig, "rotation settings must not be negative")
	}
	return nil
}
