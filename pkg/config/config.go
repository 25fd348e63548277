// Package config defines process configuration and its loading order:
// defaults, then an optional YAML file, then environment variables.
package config

import "time"

// Config contains process configuration.
type Config struct {
	// APIURL is the events card endpoint.
	APIURL string `koanf:"api_url"`

	// Locale is the default API locale for tool calls that omit one.
	Locale string `koanf:"locale"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogPretty switches stderr logging from JSON to console output.
	LogPretty bool `koanf:"log_pretty"`

	// MetricsAddr enables a Prometheus /metrics listener when non-empty,
	// e.g. ":9090". Empty means no listener.
	MetricsAddr string `koanf:"metrics_addr"`

	// MaxRetries is the total number of attempts per page request.
	MaxRetries int `koanf:"max_retries"`

	// RetryBackoff is the sleep before the first retry; doubles each retry.
	RetryBackoff time.Duration `koanf:"retry_backoff"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		APIURL:       "https://www.microsoft.com/msonecloudapi/events/cards",
		Locale:       "de-de",
		LogLevel:     "info",
		LogPretty:    false,
		MetricsAddr:  "",
		MaxRetries:   3,
		RetryBackoff: 2 * time.Second,
	}
}
