package catalog

import "errors"

// Config holds configuration for the remote catalog API client.
type Config struct {
	// BaseURL is the root of the catalog service, e.g. "http://127.0.0.1:8000"
	BaseURL string
	// TimeoutSeconds is the HTTP request timeout
	TimeoutSeconds int
}

// DefaultTimeoutSeconds is applied when no timeout is configured.
const DefaultTimeoutSeconds = 15

// ErrConfigMissingBaseURL is returned when the base URL is not configured.
var ErrConfigMissingBaseURL = errors.New("catalog: base URL is required")

// NewConfig creates a catalog client configuration with defaults.
func NewConfig(baseURL string) *Config {
	return &Config{
		BaseURL:        baseURL,
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// Validate validates the configuration and fills in defaults.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = DefaultTimeoutSeconds
	}
	return nil
}
