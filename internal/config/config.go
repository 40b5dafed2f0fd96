// Package config loads the demo service configuration from environment
// variables (optionally via a .env file) into validated structs.
//
// Keys use the ECHOAPI_ prefix with "." as the nesting delimiter, e.g.
// ECHOAPI_SERVER.PORT maps to Config.Server.Port.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/bipsandbytes/echo-api/api"
)

// Config is the root configuration object.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env   string `koanf:"env" validate:"required,oneof=local test staging production"`
	Debug bool   `koanf:"debug"`
}

// ServerConfig groups HTTP server settings. Timeouts are seconds.
type ServerConfig struct {
	Port         string `koanf:"port" validate:"required"`
	ReadTimeout  int    `koanf:"readtimeout" validate:"required"`
	WriteTimeout int    `koanf:"writetimeout" validate:"required"`
	IdleTimeout  int    `koanf:"idletimeout" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `koanf:"host" validate:"required"`
	Port     int    `koanf:"port" validate:"required"`
	User     string `koanf:"user" validate:"required"`
	Password string `koanf:"password" validate:"required"`
	Name     string `koanf:"name" validate:"required"`
	SSLMode  string `koanf:"sslmode" validate:"required"`
	MaxConns int    `koanf:"maxconns"`
}

// Policy maps the configured environment to a validation policy. Debug and
// the local/test environments run strict so contract violations fail loud
// during development; everything else runs lenient.
func (c *Config) Policy() api.Policy {
	if c.Primary.Debug || c.Primary.Env == "local" || c.Primary.Env == "test" {
		return api.Strict
	}
	return api.Lenient
}

// Load reads, unmarshals and validates the configuration.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider("ECHOAPI_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "ECHOAPI_"))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}
