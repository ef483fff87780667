package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/inkwell-edu/inkwell/internal/platform/http"
	"github.com/inkwell-edu/inkwell/internal/platform/service"
	"github.com/inkwell-edu/inkwell/internal/platform/store"
	"github.com/inkwell-edu/inkwell/internal/platform/store/drivers/sqlite"
	"github.com/inkwell-edu/inkwell/pkg/cryptox"
	"github.com/inkwell-edu/inkwell/pkg/jwtx"
	"github.com/inkwell-edu/inkwell/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application encapsulates the Inkwell server with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db           store.Store
	accessCodec  *jwtx.Codec
	refreshCodec *jwtx.Codec

	// Services
	tokenService        *service.TokenService
	userService         *service.UserService
	googleService       *service.GoogleService
	bootstrapService    *service.BootstrapService
	catalogService      *service.CatalogService
	bookmarkService     *service.BookmarkService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router

	// jwksCancel stops the background Google JWKS refresh on shutdown
	jwksCancel context.CancelFunc
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "inkwell",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	// Set pepper path for password hashing
	cryptox.SetPepperPath(app.cfg.PepperFile)

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initCodecs(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.db.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	// Start housekeeping service
	app.housekeepingService.Start()

	app.logger.Info("inkwell server starting", "port", app.cfg.Port, "version", BuildVersion)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		// Perform graceful shutdown
		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down inkwell server...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	// Shutdown the HTTP server
	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	// Stop the housekeeping service
	app.housekeepingService.Stop()

	// Stop the Google JWKS background refresh
	if app.jwksCancel != nil {
		app.jwksCancel()
	}

	// Close database connection
	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("inkwell server stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
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

// initCodecs builds the two HS256 codecs. Config validation already
// guaranteed the secrets are present, long enough and distinct.
func (app *Application) initCodecs() error {
	access, err := jwtx.NewCodec([]byte(app.cfg.AccessTokenSecret), app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to build access token codec: %w", err)
	}
	refresh, err := jwtx.NewCodec([]byte(app.cfg.RefreshTokenSecret), app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to build refresh token codec: %w", err)
	}

	app.accessCodec = access
	app.refreshCodec = refresh
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() error {
	app.tokenService = &service.TokenService{
		AccessCodec:  app.accessCodec,
		RefreshCodec: app.refreshCodec,
		Store:        app.db,
		Issuer:       app.cfg.Issuer,
		AccessTTL:    app.cfg.AccessTokenTTL,
		RefreshTTL:   app.cfg.RefreshTokenTTL,
	}

	app.userService = &service.UserService{Store: app.db}
	app.bootstrapService = &service.BootstrapService{
		Store: app.db,
		Token: app.cfg.BootstrapToken,
	}
	app.catalogService = &service.CatalogService{Store: app.db}
	app.bookmarkService = &service.BookmarkService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)

	// Google sign-in is optional: without a client ID the routes are simply
	// not registered (useful for tests and closed deployments).
	if app.cfg.GoogleClientID != "" {
		jwksCtx, cancel := context.WithCancel(context.Background())
		app.jwksCancel = cancel

		googleService, err := service.NewGoogleService(jwksCtx, app.db, service.GoogleConfig{
			ClientID:     app.cfg.GoogleClientID,
			ClientSecret: app.cfg.GoogleClientSecret,
			RedirectURL:  app.cfg.GoogleRedirectURL,
		})
		if err != nil {
			cancel()
			return fmt.Errorf("failed to initialize google sign-in: %w", err)
		}
		app.googleService = googleService
		app.logger.Info("google sign-in enabled")
	} else {
		app.logger.Warn("google sign-in disabled: GOOGLE_CLIENT_ID not set")
	}

	return nil
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.accessCodec,
		BuildVersion,
		app.db,
		app.logger,
	)

	// Wire services to router
	router.TokenService = app.tokenService
	router.UserService = app.userService
	router.GoogleService = app.googleService // nil when Google sign-in is disabled
	router.BootstrapService = app.bootstrapService
	router.CatalogService = app.catalogService
	router.BookmarkService = app.bookmarkService
	router.ApplyRoutes()

	app.router = router

	// Initialize HTTP server
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
