// Package config handles configuration for the server component, layering
// defaults, an optional JSON file, environment variables, and command-line
// flags (later layers win).
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoSecretKey reports a missing JWT signing secret. This is a startup-time
// misconfiguration: the process must refuse to start rather than fail on the
// first login.
var ErrNoSecretKey = errors.New("no JWT secret key configured")

// Config holds runtime settings for the auth server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP endpoint.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required.
//   - TokenTTL: bearer token lifetime.
//   - BcryptCost: bcrypt work factor for password hashing.
//   - SeedUsers: when true, seed the fixture accounts at startup.
//     Development convenience only.
//   - SeedPassword: plaintext password given to the fixture accounts.
type Config struct {
	EndpointAddr string
	SecretKey    string
	TokenTTL     time.Duration
	BcryptCost   int
	SeedUsers    bool
	SeedPassword string
}

// LoadDefaults populates Config with development defaults. The secret key has
// no default on purpose.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.SecretKey = ""
	c.TokenTTL = 7 * 24 * time.Hour
	c.BcryptCost = 10
	c.SeedUsers = false
	c.SeedPassword = "password"
}

// Validate reports fatal misconfiguration.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return ErrNoSecretKey
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("token ttl must be positive, got %s", c.TokenTTL)
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
