package config

import (
	"encoding/json"
	"os"

	"github.com/servtech/authd/internal/flagx"
	"github.com/servtech/authd/internal/timex"
)

// jsonConfig is the DTO for the optional JSON config file. Durations accept
// either strings like "7d"/"24h" or integer nanoseconds via timex.Duration.
type jsonConfig struct {
	EndpointAddr string         `json:"endpoint_addr"`
	SecretKey    string         `json:"secret_key"`
	TokenTTL     timex.Duration `json:"token_ttl"`
	BcryptCost   int            `json:"bcrypt_cost"`
	SeedUsers    *bool          `json:"seed_users"`
	SeedPassword string         `json:"seed_password"`
}

// parseJSON overlays values from the JSON file named by -c/-config, if any.
// Absent fields keep their current values. An unreadable or malformed file is
// a startup failure and panics.
func parseJSON(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &jsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenTTL.Duration != 0 {
		config.TokenTTL = c.TokenTTL.Duration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.SeedUsers != nil {
		config.SeedUsers = *c.SeedUsers
	}
	if c.SeedPassword != "" {
		config.SeedPassword = c.SeedPassword
	}
}
