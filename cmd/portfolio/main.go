package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/cannondawg34/portfolio/internal/adapters/http/api"
	"github.com/cannondawg34/portfolio/internal/adapters/http/site"
	"github.com/cannondawg34/portfolio/internal/adapters/http/swagger"
	"github.com/cannondawg34/portfolio/internal/adapters/prefstore"
	app "github.com/cannondawg34/portfolio/internal/app"
	"github.com/cannondawg34/portfolio/internal/config"
	"github.com/cannondawg34/portfolio/internal/domain/theme"
	"github.com/cannondawg34/portfolio/pkg/logger"
	"github.com/cannondawg34/portfolio/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 10 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	systemMetricsInterval     = 10 * time.Second
	nanosecondsPerMillisecond = 1e6
)

func main() {
	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		logger.Get().Error(ctx, "portfolio exited", logger.Error(err))
		_ = logger.Sync()
		stop()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func run(ctx context.Context) error {
	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	if cfg.LogFormat == string(logger.FormatJSON) {
		if err := logger.Init(logger.WithFormat(logger.FormatJSON)); err != nil {
			return err
		}
	}
	log := logger.Get()
	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	prefs, err := openThemeStore(ctx, cfg)
	if err != nil {
		return err
	}

	svc := app.New(
		app.WithLogger(logger.Named("service")),
		app.WithCatalogPath(cfg.CatalogPath),
		app.WithThemeStore(prefs),
		app.WithDefaultTheme(theme.Theme(cfg.DefaultTheme)),
		app.WithMemoSize(cfg.MemoSize),
		app.WithSuggestLimit(cfg.SuggestLimit),
		app.WithBasePath(cfg.BasePath),
	)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("start service: %w", err)
	}
	defer svc.Stop()

	go startSystemMetricsUpdater(ctx)

	handler, err := newHandler(ctx, cfg, svc)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr), logger.String("base_path", cfg.BasePath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
	return nil
}

// openThemeStore builds the configured preference backend.
func openThemeStore(ctx context.Context, cfg *config.Config) (theme.Store, error) {
	switch cfg.ThemeStore {
	case config.ThemeStoreSQLite:
		store, err := prefstore.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open theme store: %w", err)
		}
		logger.Get().Info(ctx, "using sqlite theme store", logger.String("path", cfg.SQLitePath))
		return store, nil
	default:
		return prefstore.NewMemoryStore(), nil
	}
}

// newHandler registers docs, API and site routes on one mux.
func newHandler(ctx context.Context, cfg *config.Config, svc *app.Service) (http.Handler, error) {
	mux := http.NewServeMux()

	swagger.Register(ctx, mux)

	apiServer := api.NewServer(svc, svc,
		api.WithBasePath(cfg.BasePath),
		api.WithSecureCookies(cfg.SecureCookies),
		api.WithLogger(logger.Named("api")),
	)
	apiServer.Register(ctx, mux)

	if err := site.Register(ctx, mux); err != nil {
		return nil, err
	}
	return mux, nil
}

// startSystemMetricsUpdater periodically records runtime figures until ctx ends.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	var avgPauseMs float64
	if m.NumGC > 0 {
		avgPauseMs = float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
	}
	metrics.Default().UpdateSystem(m.Alloc, runtime.NumGoroutine(), avgPauseMs)
}
