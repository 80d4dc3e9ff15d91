package configs

import "time"

// Insight configures the remote text-analysis service. An empty URL
// disables insight lookups.
type Insight struct {
	URL     string        `env:"URL"`
	APIKey  string        `env:"API_KEY"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether a service URL is configured.
func (c Insight) Enabled() bool {
	return c.URL != ""
}
