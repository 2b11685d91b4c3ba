package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/bookwell/bookwell/internal/config"
	"github.com/bookwell/bookwell/internal/rest"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 10 * time.Second

// Application wires configuration, router, and server lifecycle.
type Application struct {
	deps    *Dependencies
	handler http.Handler
	srv     *http.Server
}

// NewApplication constructs the full HTTP application from the config file at path.
func NewApplication(path string) (*Application, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// New builds the application from an already loaded configuration.
func New(cfg config.Application) (*Application, error) {
	deps, err := BuildDependencies(cfg)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()

	// Middleware chain
	SetupMiddleware(r, deps, cfg)

	// Routes
	RegisterRoutes(r, deps, cfg)

	// Frontend
	if cfg.Frontend.Enabled {
		frontend := rest.NewFrontendHandler(cfg.Frontend.Dir, cfg.Frontend.Index)
		r.PathPrefix("/").Handler(frontend)
	}

	handler := WithCors(r, cfg.Cors)

	srv := &http.Server{
		Handler:      handler,
		Addr:         cfg.Server.Addr,
		WriteTimeout: cfg.Server.WriteTimeout,
		ReadTimeout:  cfg.Server.ReadTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &Application{deps: deps, handler: handler, srv: srv}, nil
}

// Handler is the fully wrapped root handler served by the HTTP server.
func (a *Application) Handler() http.Handler {
	return a.handler
}

// Close releases background resources when the application is not run.
func (a *Application) Close() {
	a.deps.Close()
}

// Run starts the HTTP server and blocks until it fails or the process is interrupted.
func (a *Application) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer a.deps.Close()

	errCh := make(chan error, 1)
	go func() {
		log.Infof("Starting server on %s", a.srv.Addr)
		errCh <- a.srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.srv.Shutdown(shutdownCtx)
	}
}
