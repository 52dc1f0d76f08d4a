// Package httpapi is the HTTP boundary of the auth service. It owns routing,
// the response envelope and the auth middleware; all the interesting decisions
// live in the core packages it calls into.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/servtech/authd/internal/logging"
	"github.com/servtech/authd/internal/server/token"
	"github.com/servtech/authd/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address string
	logger  logging.Logger
	users   *users.Service
	tokens  *token.Service
	engine  *gin.Engine
}

func NewServer(address string, l logging.Logger, us *users.Service, ts *token.Service) *Server {
	s := &Server{
		address: address,
		logger:  l.With("module", "httpapi"),
		users:   us,
		tokens:  ts,
	}
	s.engine = s.buildRouter()
	return s
}

// Handler exposes the routed engine, mainly for httptest.
func (s *Server) Handler() http.Handler {
	return s.engine
}

func (s *Server) buildRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	e := gin.New()
	e.Use(gin.Recovery(), s.requestLog(), cors())

	e.GET("/", s.optionalAuth(), s.root)

	auth := e.Group("/api/auth")
	{
		auth.POST("/register", s.register)
		auth.POST("/login", s.login)
		auth.GET("/profile", s.requireAuth(), s.profile)
		auth.GET("/getAllUsers", s.requireAuth(), s.getAllUsers)
		auth.GET("/protected", s.requireAuth(), s.protected)
		auth.POST("/logout", s.requireAuth(), s.logout)
	}

	e.NoRoute(s.notFound)
	return e
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{Addr: s.address, Handler: s.engine}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
