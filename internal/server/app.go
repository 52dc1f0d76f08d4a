// Package server wires the auth service together: configuration, logging,
// the user directory, the authentication core and the HTTP endpoint, plus
// graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/servtech/authd/internal/logging"
	"github.com/servtech/authd/internal/server/config"
	"github.com/servtech/authd/internal/server/httpapi"
	"github.com/servtech/authd/internal/server/password"
	"github.com/servtech/authd/internal/server/token"
	"github.com/servtech/authd/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	http   *httpapi.Server
}

// NewApp builds the full service from configuration. Misconfiguration (such
// as a missing JWT secret) is returned as an error so the caller can abort
// startup; nothing here is recoverable per-request.
func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	tokens, err := token.NewService(cfg.SecretKey, cfg.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token service init error: %w", err)
	}

	hasher := password.NewHasher(cfg.BcryptCost)
	repo := users.NewInMemoryRepository()

	if cfg.SeedUsers {
		if err := users.Seed(context.Background(), repo, hasher, cfg.SeedPassword); err != nil {
			return nil, fmt.Errorf("seed error: %w", err)
		}
		logger.Info(context.Background(), "seeded fixture accounts", "accounts", []string{"admin", "user"})
	}

	svc := users.NewService(repo, hasher, tokens)
	httpServer := httpapi.NewServer(cfg.EndpointAddr, logger, svc, tokens)

	return &App{config: cfg, logger: logger, http: httpServer}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.http.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()
}
