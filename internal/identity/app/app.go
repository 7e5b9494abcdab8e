package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/accessly/authd/internal/identity/http"
	"github.com/accessly/authd/internal/identity/service"
	"github.com/accessly/authd/internal/identity/store"
	"github.com/accessly/authd/internal/identity/store/drivers/sqlite"
	"github.com/accessly/authd/pkg/jwtx"
	"github.com/accessly/authd/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the identity service with all its dependencies.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db       store.Store
	signer   jwtx.Signer
	verifier jwtx.Verifier

	accountService *service.AccountService
	tokenService   *service.TokenService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized. Missing or
// unusable configuration (no token secret, broken TTL combination) is a
// startup-fatal error here, never a per-request one.
func New(cfg Config) (*Application, error) {
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "identity-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initTokenCodec(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.logger.Info("identity service starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"profile", app.cfg.Profile,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down identity service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("identity service stopped")
	return nil
}

// validateConfig enforces the startup-fatal configuration invariants.
func validateConfig(cfg *Config) error {
	if cfg.TokenSecret == "" {
		return errors.New("AUTH_TOKEN_SECRET is required")
	}
	if len(cfg.TokenSecret) < jwtx.MinSecretBytes {
		return fmt.Errorf("AUTH_TOKEN_SECRET must be at least %d bytes", jwtx.MinSecretBytes)
	}

	switch httpapi.Profile(cfg.Profile) {
	case httpapi.ProfileMinimal, httpapi.ProfileRich:
	default:
		return fmt.Errorf("AUTH_PROFILE must be %q or %q, got %q",
			httpapi.ProfileMinimal, httpapi.ProfileRich, cfg.Profile)
	}

	// A non-positive TTL without the explicit non-expiring flag would mint
	// dead tokens; refuse to start rather than do that silently.
	if !cfg.TokenNonExpiring && cfg.TokenTTL <= 0 {
		return errors.New("AUTH_TOKEN_TTL must be positive unless AUTH_TOKEN_NON_EXPIRING is set")
	}

	return nil
}

// initDatabase initializes the database and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initTokenCodec builds the HS256 signer/verifier pair from the shared
// secret.
func (app *Application) initTokenCodec() error {
	secret := []byte(app.cfg.TokenSecret)

	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return fmt.Errorf("failed to initialize token signer: %w", err)
	}
	verifier, err := jwtx.NewVerifierHS256(secret, app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize token verifier: %w", err)
	}

	app.signer = signer
	app.verifier = verifier
	return nil
}

// initServices initializes the business logic services.
func (app *Application) initServices() {
	ttl := app.cfg.TokenTTL
	if app.cfg.TokenNonExpiring {
		ttl = 0
	}

	app.accountService = &service.AccountService{
		Store:      app.db,
		BcryptCost: app.cfg.BcryptCost,
		Bounds: service.PasswordBounds{
			Min: app.cfg.PasswordMin,
			Max: app.cfg.PasswordMax,
		},
	}

	app.tokenService = &service.TokenService{
		Signer:   app.signer,
		Verifier: app.verifier,
		Issuer:   app.cfg.Issuer,
		TTL:      ttl,
	}
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.verifier,
		httpapi.Profile(app.cfg.Profile),
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AccountService = app.accountService
	router.TokenService = app.tokenService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
