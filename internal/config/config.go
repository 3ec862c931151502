// Package config resolves lvpar runtime settings from .lvpar.yaml,
// LVPAR_* environment variables, and command-line flags through viper.
package config

import (
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvpar/backend"
	"github.com/katalvlaran/lvpar/parallel"
)

// Keys understood by Load.
const (
	KeyWorkers   = "workers"
	KeyBackend   = "backend"
	KeyLogLevel  = "log_level"
	KeyLogFormat = "log_format"
)

// Log formats.
const (
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config holds all runtime configuration for an lvpar invocation.
type Config struct {
	Workers   int    `mapstructure:"workers"`
	Backend   string `mapstructure:"backend"`
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags, and validates it.
func Load() (Config, error) {
	viper.SetDefault(KeyWorkers, parallel.DefaultWorkers)
	viper.SetDefault(KeyBackend, backend.NameParallel)
	viper.SetDefault(KeyLogLevel, logrus.InfoLevel.String())
	viper.SetDefault(KeyLogFormat, LogFormatAuto)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the backend name, log level and log format.
func (c Config) Validate() error {
	if !slices.Contains(backend.Names(), c.Backend) {
		return fmt.Errorf("%w: %s=%q", backend.ErrUnknownBackend, KeyBackend, c.Backend)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %s: %w", parallel.ErrInvalidParameter, KeyLogLevel, err)
	}
	switch c.LogFormat {
	case LogFormatAuto, LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %s=%q", parallel.ErrInvalidParameter, KeyLogFormat, c.LogFormat)
	}
	return nil
}

// Parallel returns the worker configuration with logger attached.
func (c Config) Parallel(logger logrus.FieldLogger) parallel.Config {
	return parallel.Config{Workers: c.Workers, Logger: logger}
}
