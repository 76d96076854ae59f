package config

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPort indicates a port outside the valid range
	ErrInvalidPort = errors.New("invalid server port")

	// ErrInvalidTimeout indicates a non-positive server timeout
	ErrInvalidTimeout = errors.New("invalid server timeout")

	// ErrInvalidRateLimit indicates a negative rate limit or burst
	ErrInvalidRateLimit = errors.New("invalid rate limit")

	// ErrInvalidThreshold indicates a negative reformat threshold
	ErrInvalidThreshold = errors.New("invalid reformat threshold")

	// ErrEmptyDelimiter indicates a missing context delimiter
	ErrEmptyDelimiter = errors.New("empty context delimiter")

	// ErrInvalidLogLevel indicates an unsupported logging level
	ErrInvalidLogLevel = errors.New("invalid log level")

	// ErrInvalidLogFormat indicates an unsupported logging format
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Validate checks that the configuration is valid and complete.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidPort, cfg.Server.Port))
	}
	if cfg.Server.ReadTimeout <= 0 || cfg.Server.WriteTimeout <= 0 {
		errs = append(errs, ErrInvalidTimeout)
	}
	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 {
		errs = append(errs, ErrInvalidRateLimit)
	}

	if cfg.Extract.ReformatThreshold < 0 {
		errs = append(errs, fmt.Errorf("%w: %d", ErrInvalidThreshold, cfg.Extract.ReformatThreshold))
	}
	if cfg.Extract.ContextDelimiter == "" {
		errs = append(errs, ErrEmptyDelimiter)
	}

	switch cfg.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.Logging.Level))
	}
	switch cfg.Logging.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogFormat, cfg.Logging.Format))
	}

	return errors.Join(errs...)
}
