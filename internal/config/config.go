package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains runtime configuration required by the service.
//
// The Supabase values are deliberately optional at load time: their presence
// is checked per request, so a misconfigured deployment answers with the
// standard failure envelope instead of crash-looping at boot.
type Config struct {
	// ListenAddr is the HTTP bind address.
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8080"`

	// SupabaseURL is the base URL of the storage backend
	// (e.g. https://xyz.supabase.co).
	SupabaseURL string `env:"SUPABASE_URL"`

	// SupabaseServiceKey is the service-role credential sent as both the
	// bearer token and the apikey header. Must never be logged.
	SupabaseServiceKey string `env:"SUPABASE_SERVICE_ROLE_KEY"`

	// ForwardTimeout bounds the outbound insert call.
	ForwardTimeout time.Duration `env:"FORWARD_TIMEOUT" envDefault:"5s"`
}

// Load reads configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SupabaseConfigured reports whether both storage-backend values are present.
func (c Config) SupabaseConfigured() bool {
	return c.SupabaseURL != "" && c.SupabaseServiceKey != ""
}
