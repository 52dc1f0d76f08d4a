package config

import (
	"flag"
	"os"

	"github.com/servtech/authd/internal/flagx"
	"github.com/servtech/authd/internal/timex"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":3000")
//	-s string   JWT HMAC secret key
//	-e string   token lifetime ("7d", "24h", ...)
//	-b int      bcrypt cost
//	-u          seed fixture accounts (use -u=true / -u=false)
//	-p string   fixture account password
//
// os.Args is first filtered to the flags handled here, so flags owned by
// other components (such as -c/-config) do not cause parse errors.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-e", "-b", "-u", "-p"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "JWT secret key")

	tokenTTL := fs.String("e", "", "token lifetime (e.g. 7d)")

	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")
	fs.BoolVar(&config.SeedUsers, "u", config.SeedUsers, "seed fixture accounts")
	fs.StringVar(&config.SeedPassword, "p", config.SeedPassword, "fixture account password")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	if *tokenTTL != "" {
		d, err := timex.ParseDuration(*tokenTTL)
		if err != nil {
			panic(err)
		}
		config.TokenTTL = d
	}
}
