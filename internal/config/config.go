// Package config defines process configuration and its loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - All functions accept context.Context as the first parameter.
// - External errors are wrapped with this package's sentinel errors.
package config

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level" validate:"omitempty,oneof=debug info warn warning error"`

	// LogFormat selects text or json log lines.
	LogFormat string `koanf:"log_format" validate:"omitempty,oneof=text json"`

	// Addr configures the HTTP listen address, e.g. "127.0.0.1:8501".
	Addr string `koanf:"addr" validate:"required"`

	// DataDir is the folder scanned for match files when no directory is given.
	DataDir string `koanf:"data_dir" validate:"required"`

	// Extensions lists the recognized match file extensions.
	Extensions []string `koanf:"extensions" validate:"min=1,dive,startswith=."`

	// MaxTableRows caps terminal tables. 0 means unlimited.
	MaxTableRows int `koanf:"max_table_rows" validate:"gte=0"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention and is currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:     "info",
		LogFormat:    "text",
		Addr:         "127.0.0.1:8501",
		DataDir:      "./data",
		Extensions:   []string{".yaml", ".yml"},
		MaxTableRows: 0,
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validate checks field constraints and wraps failures in ErrInvalidConfig.
func (c *Config) Validate() error {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return fmt.Errorf("%w: %s failed %q", ErrInvalidConfig, verrs[0].Namespace(), verrs[0].Tag())
		}
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
