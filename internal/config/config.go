// Package config loads and validates the linksift configuration from file,
// environment and defaults.
package config

import (
	"time"

	"github.com/w95/linksift/internal/extract"
)

// Config represents the complete linksift configuration. It can be loaded
// from linksift.yml with environment variable overrides.
type Config struct {
	Server  ServerConfig  `yaml:"server" mapstructure:"server"`
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	RateLimit    float64       `yaml:"rate_limit" mapstructure:"rate_limit"` // analyze requests per second, 0 disables limiting
	RateBurst    int           `yaml:"rate_burst" mapstructure:"rate_burst"` // burst size when rate limiting
}

// ExtractConfig tunes the extraction core.
type ExtractConfig struct {
	// ReformatThreshold is the input size in bytes above which full
	// beautification is replaced by the cheap line-break heuristic.
	ReformatThreshold int `yaml:"reformat_threshold" mapstructure:"reformat_threshold"`

	// ContextDelimiter bounds context windows around matches.
	ContextDelimiter string `yaml:"context_delimiter" mapstructure:"context_delimiter"`
}

// LoggingConfig configures structured logging.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or console
}

// Default returns a configuration with sensible defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         9402,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			RateLimit:    0,
			RateBurst:    10,
		},
		Extract: ExtractConfig{
			ReformatThreshold: extract.DefaultReformatThreshold,
			ContextDelimiter:  extract.DefaultContextDelimiter,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}
