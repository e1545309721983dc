// Package config loads service configuration from the environment.
package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings the composition root needs beyond the
// database/Redis bootstrap (which keep their own env handling).
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string `env:"ADDR" envDefault:":8080"`

	// JWTSecret signs session tokens. Empty only makes sense in development.
	JWTSecret string `env:"JWT_SECRET"`

	// JWTExpiration is the session token lifetime.
	JWTExpiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`

	SMTP SMTPConfig `envPrefix:"SMTP_"`
}

// SMTPConfig configures the outbound reset-code mailer.
// An empty Host disables real delivery (codes are logged instead).
type SMTPConfig struct {
	Host string `env:"HOST"`
	Port int    `env:"PORT" envDefault:"587"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
	From string `env:"FROM" envDefault:"noreply@shop.local"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
