// Package config loads server configuration from the environment
package config

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/encounter-builder/internal/errors"
)

// Config holds every setting the server reads at startup
type Config struct {
	GRPCPort int `env:"ENCOUNTER_BUILDER_GRPC_PORT" envDefault:"50051"`

	RedisAddr     string `env:"ENCOUNTER_BUILDER_REDIS_ADDR"     envDefault:"localhost:6379"`
	RedisPassword string `env:"ENCOUNTER_BUILDER_REDIS_PASSWORD"`
	RedisDB       int    `env:"ENCOUNTER_BUILDER_REDIS_DB"       envDefault:"0"`

	CompendiumBaseURL  string        `env:"ENCOUNTER_BUILDER_COMPENDIUM_BASE_URL"  envDefault:"https://www.dnd5eapi.co/api/2014/"`
	CompendiumTimeout  time.Duration `env:"ENCOUNTER_BUILDER_COMPENDIUM_TIMEOUT"   envDefault:"30s"`
	CompendiumCacheTTL time.Duration `env:"ENCOUNTER_BUILDER_COMPENDIUM_CACHE_TTL" envDefault:"24h"`

	RoleHeader      string   `env:"ENCOUNTER_BUILDER_ROLE_HEADER"      envDefault:"x-encounter-role"`
	PrivilegedRoles []string `env:"ENCOUNTER_BUILDER_PRIVILEGED_ROLES" envDefault:"gm" envSeparator:","`

	// SessionTTL is how long an untouched session survives
	SessionTTL time.Duration `env:"ENCOUNTER_BUILDER_SESSION_TTL" envDefault:"12h"`
}

// Load parses the environment into a validated Config
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges the env tags cannot express
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("grpc_port", c.GRPCPort, 1, 65535, vb)
	errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
	errors.ValidateRequired("role_header", c.RoleHeader, vb)
	if len(c.PrivilegedRoles) == 0 {
		vb.RequiredField("privileged_roles")
	}
	if c.SessionTTL < 0 {
		vb.Field("session_ttl", "must not be negative")
	}
	if c.CompendiumTimeout < 0 {
		vb.Field("compendium_timeout", "must not be negative")
	}

	return vb.Build()
}
