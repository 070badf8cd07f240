// Package config resolves RegexNinja settings from flags, environment and
// an optional config file through viper.
package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/cheerioskun/regexninja/internal/analyzer"
)

// Viper keys
const (
	KeyEngine      = "engine"
	KeyRepeatLimit = "repeat_limit"
	KeySanitize    = "sanitize"
	KeyVerbose     = "verbose"
	KeyLogFile     = "log_file"
	KeyLogLevel    = "log_level"
)

// EnvPrefix is prepended to environment variable names (REGEXNINJA_ENGINE, ...)
const EnvPrefix = "REGEXNINJA"

// Config holds the resolved settings
type Config struct {
	Engine      string `mapstructure:"engine"`
	RepeatLimit int    `mapstructure:"repeat_limit"`
	Sanitize    bool   `mapstructure:"sanitize"`
	Verbose     bool   `mapstructure:"verbose"`
	LogFile     string `mapstructure:"log_file"`
	LogLevel    string `mapstructure:"log_level"`
}

// SetDefaults registers default values on v
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyEngine, analyzer.EngineGo)
	v.SetDefault(KeyRepeatLimit, analyzer.DefaultRepeatLimit)
	v.SetDefault(KeySanitize, false)
	v.SetDefault(KeyVerbose, false)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyLogLevel, "info")
}

// Load reads the settings held by v and validates them
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if _, err := analyzer.EngineByName(c.Engine); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyEngine, err)
	}
	if c.RepeatLimit < 1 || c.RepeatLimit > analyzer.MaxRepeatLimit {
		return fmt.Errorf("invalid %s: %d (must be between 1 and %d)", KeyRepeatLimit, c.RepeatLimit, analyzer.MaxRepeatLimit)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}
	return nil
}

// AnalyzerOptions translates the settings into analyzer options
func (c *Config) AnalyzerOptions() ([]analyzer.Option, error) {
	engine, err := analyzer.EngineByName(c.Engine)
	if err != nil {
		return nil, err
	}
	return []analyzer.Option{
		analyzer.WithEngine(engine),
		analyzer.WithRepeatLimit(c.RepeatLimit),
	}, nil
}
