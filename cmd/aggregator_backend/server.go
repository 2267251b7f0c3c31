package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SscSPs/user_profile_aggregator/internal/adapters/upstream"
	"github.com/SscSPs/user_profile_aggregator/internal/core/ports/services"
	"github.com/SscSPs/user_profile_aggregator/internal/core/ports/upstreams"
	coreservices "github.com/SscSPs/user_profile_aggregator/internal/core/services"
	"github.com/SscSPs/user_profile_aggregator/internal/handlers"
	"github.com/SscSPs/user_profile_aggregator/internal/middleware"
	"github.com/SscSPs/user_profile_aggregator/internal/platform/config"
	"github.com/SscSPs/user_profile_aggregator/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/klauspost/compress/gzhttp"
)

// run wires the application and serves until ctx is canceled or a signal arrives.
func run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	container := coreservices.NewServiceContainer(cfg, newUpstreams(cfg))

	handler, err := newHTTPHandler(cfg, logger, container, posthogClient)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: cfg.UpstreamTimeout*4 + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("url", fmt.Sprintf("http://localhost:%d", cfg.Port)))
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("error starting server: %w", err)
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info("Server gracefully stopped")
	return nil
}

func newUpstreams(cfg *config.Config) upstreams.UpstreamProvider {
	httpClient := upstream.NewHTTPClient(cfg.UpstreamTimeout)
	return upstreams.UpstreamProvider{
		Person:   upstream.NewRandomUserClient(httpClient, cfg.RandomUserURL),
		Country:  upstream.NewCountryLayerClient(httpClient, cfg.CountryAPIURL, cfg.CountryAPIKey),
		Exchange: upstream.NewExchangeRateClient(httpClient, cfg.ExchangeAPIURL, cfg.ExchangeAPIKey),
		News:     upstream.NewNewsAPIClient(httpClient, cfg.NewsAPIURL, cfg.NewsAPIKey),
	}
}

// newHTTPHandler builds the gin engine with global middleware and gzip compression.
func newHTTPHandler(cfg *config.Config, logger *slog.Logger, container *services.ServiceContainer, posthogClient *utils.PosthogClientWrapper) (http.Handler, error) {
	r := gin.New()

	// Global middleware (logging, recovery, cors, analytics)
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		middleware.JSONRecovery(),
		middleware.CORS(cfg.CORSAllowOrigins),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	rateLimiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	handlers.RegisterRoutes(r, cfg, container, rateLimiter)

	return gzhttp.GzipHandler(r), nil
}
