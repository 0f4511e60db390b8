package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix  = "CRICANALYTICS_"
	envConfig  = envPrefix + "CONFIG"
	keyExtList = "extensions"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New(ctx))
//  2. file (YAML) if CRICANALYTICS_CONFIG is set
//  3. env (prefix CRICANALYTICS_)
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, os.Getenv(envConfig))
}

// LoadFrom is Load with an explicit config file path. An empty path skips
// the file layer.
func LoadFrom(ctx context.Context, path string) (*Config, error) {
	base := New(ctx)

	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// CRICANALYTICS_DATA_DIR -> data_dir, CRICANALYTICS_EXTENSIONS=".yaml,.yml" -> extensions.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.TrimPrefix(strings.ToLower(s), strings.ToLower(envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}
	k.Delete("config")

	cfg := *base
	// A configured list replaces the default one instead of merging into it.
	if k.Exists(keyExtList) {
		cfg.Extensions = nil
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}
	cfg.Extensions = normalizeExtensions(cfg.Extensions)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalizeExtensions lower-cases entries, adds a missing leading dot, and
// splits comma-joined values coming from the environment.
func normalizeExtensions(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, item := range exts {
		for _, e := range strings.Split(item, ",") {
			e = strings.ToLower(strings.TrimSpace(e))
			if e == "" {
				continue
			}
			if !strings.HasPrefix(e, ".") {
				e = "." + e
			}
			out = append(out, e)
		}
	}
	return out
}
