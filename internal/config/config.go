package config

import (
	"github.com/caarlos0/env/v11"

	"campaign-advisor/internal/config/configs"
	"campaign-advisor/internal/core/domain"
)

// Config is the advisor's runtime configuration, read from the environment.
// Each section maps to one env prefix (HTTP_, LOG_, PSQL_, INSIGHT_, RULES_).
type Config struct {
	// Env specifies the deployment environment (e.g. prod, dev). It is
	// attached to every log line.
	Env string `env:"ENV" envDefault:"prod"`

	// HTTP holds configuration for the HTTP server. Environment variables
	// prefixed with HTTP_ will populate this struct.
	HTTP configs.HTTP `envPrefix:"HTTP_"`

	// Log configures the structured logger. Environment variables prefixed
	// with LOG_ will populate this struct.
	Log configs.Logger `envPrefix:"LOG_"`

	// Psql configures the optional PostgreSQL campaign source. Environment
	// variables prefixed with PSQL_ will populate this struct.
	Psql configs.Postgres `envPrefix:"PSQL_"`

	// Insight configures the remote insight service. Environment variables
	// prefixed with INSIGHT_ will populate this struct.
	Insight configs.Insight `envPrefix:"INSIGHT_"`

	// Rules configures the action thresholds. Environment variables
	// prefixed with RULES_ will populate this struct.
	Rules configs.Rules `envPrefix:"RULES_"`

	// Thresholds is resolved from Rules by Load.
	Thresholds domain.Thresholds
}

// Load parses the environment and resolves the action thresholds, applying
// RULES_FILE on top of the RULES_* variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	th, err := cfg.Rules.Thresholds()
	if err != nil {
		return cfg, err
	}
	cfg.Thresholds = th
	return cfg, nil
}
