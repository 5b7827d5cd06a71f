package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level logged: debug, info, warn or error.
	Level string `mapstructure:"level" default:"info"`
	// Format selects the encoder: console or json.
	Format string `mapstructure:"format" default:"console"`
}

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// IsValidFormat checks if the configured format is known.
func (c Config) IsValidFormat() bool {
	switch c.Format {
	case FormatConsole, FormatJSON:
		return true
	default:
		return false
	}
}

// New creates a new zap logger based on the configuration.
func New(cfg *Config) (*zap.Logger, error) {
	var config zap.Config

	if cfg.Level == "debug" {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	if cfg.Level != "" {
		lvl, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("log level: %w", err)
		}
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	// Set format based on configuration
	if cfg.Format == FormatConsole {
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	} else {
		config.Encoding = "json"
	}

	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.TimeKey = "time"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stderr"}

	return config.Build()
}

// WithRunID returns a logger with the run_id field set.
func WithRunID(l *zap.Logger, id string) *zap.Logger {
	if id == "" {
		return l
	}
	return l.With(zap.String("run_id", id))
}
