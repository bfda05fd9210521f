package nebulo

import "time"

// Config provides environment-based configuration for the API client.
type Config struct {
	// BaseURL is the API root, including the version prefix.
	BaseURL string `env:"NEBULO_API_BASE_URL" envDefault:"http://localhost:5101/api/v2"`

	// Timeout bounds each API call end to end.
	Timeout time.Duration `env:"NEBULO_API_TIMEOUT" envDefault:"10s"`
}
