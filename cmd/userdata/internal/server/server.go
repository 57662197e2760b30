// Package server provides HTTP server setup and routing for the user-data
// API. All routes pass through request logging, panic recovery, and Basic
// authentication; the auth exclusion list comes from configuration.
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/auth"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/config"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/constants"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/database"
	apierrors "github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/errors"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/logging"
	"github.com/FRANKD-UX/alx-backend-user-data/cmd/userdata/internal/users"
)

// Server represents the HTTP server
type Server struct {
	config     *config.AppConfig
	db         database.Driver
	store      *users.Store
	logger     *logging.Logger
	errors     *apierrors.ErrorHandler
	authChain  func(http.HandlerFunc) http.HandlerFunc
	requestLog *logging.RequestLogger
	mux        *http.ServeMux
	server     *http.Server
	version    string
}

// New creates a new server instance
func New(cfg *config.AppConfig, db database.Driver, store *users.Store, logger *logging.Logger, version string) *Server {
	mux := http.NewServeMux()

	errHandler := apierrors.NewErrorHandler(apierrors.ErrorHandlerConfig{Logger: logger})

	srv := &Server{
		config: cfg,
		db:     db,
		store:  store,
		logger: logger,
		errors: errHandler,
		authChain: auth.Middleware(auth.MiddlewareConfig{
			Auth:          auth.NewBasicAuth(store),
			ExcludedPaths: cfg.Auth.ExcludedPaths,
			Errors:        errHandler,
		}),
		requestLog: logging.NewRequestLogger(logging.RequestLoggerConfig{
			Logger:    logger,
			SkipPaths: []string{"/health"},
		}),
		mux:     mux,
		version: version,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:      mux,
			ReadTimeout:  constants.HTTPReadTimeout,
			WriteTimeout: constants.HTTPWriteTimeout,
			IdleTimeout:  constants.HTTPIdleTimeout,
		},
	}

	srv.setupRoutes()
	return srv
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("GET /health", s.wrap(s.healthHandler))
	s.mux.HandleFunc("GET /api/v1/status", s.wrap(s.statusHandler))
	s.mux.HandleFunc("GET /api/v1/users", s.wrap(s.listUsersHandler))
	s.mux.HandleFunc("POST /api/v1/users", s.wrap(s.createUserHandler))
	s.mux.HandleFunc("/", s.wrap(s.notFoundHandler))
}

// wrap applies the standard middleware chain: request logging, panic
// recovery, then Basic authentication.
func (s *Server) wrap(handler http.HandlerFunc) http.HandlerFunc {
	return s.requestLog.Middleware(s.errors.RecoveryMiddleware(s.authChain(handler)))
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Infof("Starting server on %s", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// Handler returns the configured root handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run starts the server and handles graceful shutdown
func (s *Server) Run() error {
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- s.Start()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		s.logger.Infof("Received signal: %v", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()

		if err := s.Shutdown(ctx); err != nil {
			if err := s.server.Close(); err != nil {
				return fmt.Errorf("could not stop server gracefully: %w", err)
			}
		}
	}

	return nil
}
