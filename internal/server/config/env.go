package config

import (
	"github.com/caarlos0/env/v11"

	"github.com/servtech/authd/internal/timex"
)

// envConfig maps environment variables onto config fields. JWT_EXPIRE uses
// timex.Duration so values like "7d" work, matching the JSON overlay.
type envConfig struct {
	EndpointAddr string         `env:"ADDRESS"`
	SecretKey    string         `env:"JWT_SECRET"`
	TokenTTL     timex.Duration `env:"JWT_EXPIRE"`
	BcryptCost   int            `env:"BCRYPT_COST"`
	SeedUsers    bool           `env:"SEED_USERS"`
	SeedPassword string         `env:"SEED_PASSWORD"`
}

// parseEnv overlays values from the environment. Fields are preloaded with
// the current config so variables that are not set leave it untouched.
func parseEnv(config *Config) {
	e := envConfig{
		EndpointAddr: config.EndpointAddr,
		SecretKey:    config.SecretKey,
		TokenTTL:     timex.Duration{Duration: config.TokenTTL},
		BcryptCost:   config.BcryptCost,
		SeedUsers:    config.SeedUsers,
		SeedPassword: config.SeedPassword,
	}

	if err := env.Parse(&e); err != nil {
		panic(err)
	}

	config.EndpointAddr = e.EndpointAddr
	config.SecretKey = e.SecretKey
	config.TokenTTL = e.TokenTTL.Duration
	config.BcryptCost = e.BcryptCost
	config.SeedUsers = e.SeedUsers
	config.SeedPassword = e.SeedPassword
}
