package config

import "time"

// APIConfig contains backend REST API configuration.
type APIConfig struct {
	// BaseURL is the fixed base address of the administration backend.
	BaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`

	// Timeout bounds each request. Zero keeps the transport default;
	// no retry is ever attempted on top of it.
	Timeout time.Duration `env:"API_TIMEOUT" envDefault:"0s"`
}

// Sanitize applies guardrails to API configuration values.
func (a *APIConfig) Sanitize() {
	if a.Timeout < 0 {
		a.Timeout = 0
	}
}
