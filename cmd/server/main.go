package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/servtech/authd/internal/server"
	"github.com/servtech/authd/internal/server/config"
)

func main() {
	// A local .env is optional; the real environment always wins.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
