package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if MSEVENTS_CONFIG is set
//  3. env (prefix MSEVENTS_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("MSEVENTS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: MSEVENTS_LOCALE, MSEVENTS_MAX_RETRIES, ...
	// Map env keys like MSEVENTS_LOG_LEVEL -> log_level (flat keys,
	// underscores preserved to match koanf tags on the struct).
	envProvider := env.Provider("MSEVENTS_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "msevents_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.APIURL == "" {
		return nil, errors.New("api_url must not be empty")
	}
	if cfg.MaxRetries < 1 {
		return nil, errors.New("max_retries must be at least 1")
	}
	return &cfg, nil
}
