package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kailas-cloud/homepage/internal/config"
	logpkg "github.com/kailas-cloud/homepage/internal/logger"
	"github.com/kailas-cloud/homepage/internal/metrics"
	chiTransport "github.com/kailas-cloud/homepage/internal/transport/chi"
	healthuc "github.com/kailas-cloud/homepage/internal/usecase/health"
	homeuc "github.com/kailas-cloud/homepage/internal/usecase/home"
	"github.com/kailas-cloud/homepage/internal/version"
	"github.com/kailas-cloud/homepage/internal/view"
)

func main() {
	// Load configuration based on ENV
	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting home page server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("default_locale", cfg.Site.DefaultLocale),
		zap.Bool("api_auth", len(cfg.Auth.APIKeys) > 0),
	)

	// Register metrics explicitly (no init())
	metrics.RegisterHTTPMetrics()
	metrics.RegisterPageMetrics()

	locale, err := homeuc.ParseLocale(cfg.Site.DefaultLocale)
	if err != nil {
		logger.Fatal("Invalid default locale", zap.Error(err))
	}
	homeSvc, err := homeuc.New(locale)
	if err != nil {
		logger.Fatal("Home page content is invalid", zap.Error(err))
	}
	healthSvc := healthuc.New(homeSvc, newRenderHealthChecker(homeSvc))

	server := chiTransport.NewServer(homeSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(chiTransport.JSONRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(chiTransport.WideEventMiddleware(logger))
	r.Use(metrics.Middleware())
	server.Routes(r, cfg.Auth.APIKeys)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// renderHealthChecker renders every locale to HTML and discards the output.
type renderHealthChecker struct {
	home *homeuc.Service
}

func newRenderHealthChecker(home *homeuc.Service) *renderHealthChecker {
	return &renderHealthChecker{home: home}
}

func (h *renderHealthChecker) HealthCheck(ctx context.Context) error {
	for _, l := range homeuc.Locales() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("render health check: %w", err)
		}
		doc, err := h.home.Render(l)
		if err != nil {
			return fmt.Errorf("render %s: %w", l, err)
		}
		if err := view.HTML(io.Discard, doc); err != nil {
			return fmt.Errorf("render %s html: %w", l, err)
		}
	}
	return nil
}
