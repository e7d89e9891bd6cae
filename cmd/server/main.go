package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/finledger/internal/adapter/http"
	"github.com/iho/finledger/internal/adapter/http/handler"
	"github.com/iho/finledger/internal/adapter/http/middleware"
	"github.com/iho/finledger/internal/adapter/report/xlsx"
	"github.com/iho/finledger/internal/adapter/repository/memory"
	"github.com/iho/finledger/internal/infrastructure/config"
	"github.com/iho/finledger/internal/infrastructure/logger"
	"github.com/iho/finledger/internal/infrastructure/metrics"
	"github.com/iho/finledger/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	log.Logger = appLogger

	app := newApp(cfg, appLogger, prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go runSweeper(ctx, app.sessions, app.limiter, cfg.SessionSweepInterval, cfg.SessionIdleTTL, appLogger)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      app.router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		appLogger.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	appLogger.Info().Msg("server stopped")
}

type app struct {
	router   http.Handler
	sessions *usecase.SessionUseCase
	limiter  *middleware.RateLimiter
}

// newApp wires repositories, use cases and handlers into a router.
func newApp(cfg *config.Config, logger zerolog.Logger, reg prometheus.Registerer) *app {
	// Initialize repositories
	store := memory.NewSessionStore()
	idGen := memory.NewULIDGenerator()
	exporter := xlsx.NewExporter(cfg.CurrencySymbol)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	var (
		observer       usecase.Observer
		metricsHandler http.Handler
	)
	if cfg.MetricsEnabled {
		m := metrics.New(reg)
		limiter.OnLimit(m.RateLimited)
		observer = m
		metricsHandler = promhttp.Handler()
	}

	// Initialize use cases
	sessionUC := usecase.NewSessionUseCase(store, idGen, observer)
	ledgerUC := usecase.NewLedgerUseCase(store, idGen, observer, cfg.CurrencySymbol)
	reportUC := usecase.NewReportUseCase(store, exporter, observer, cfg.ReportFilename)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		SessionHandler: handler.NewSessionHandler(sessionUC),
		EntryHandler:   handler.NewEntryHandler(ledgerUC),
		SummaryHandler: handler.NewSummaryHandler(ledgerUC),
		ReportHandler:  handler.NewReportHandler(reportUC, logger),
		HealthHandler:  handler.NewHealthHandler(sessionUC),
		RateLimiter:    limiter,
		MetricsHandler: metricsHandler,
		Logger:         logger,
	})

	return &app{
		router:   router,
		sessions: sessionUC,
		limiter:  limiter,
	}
}

type sessionExpirer interface {
	ExpireIdle(ctx context.Context, idleTTL time.Duration) (int, error)
}

// runSweeper ends idle sessions and drops stale rate limiters every interval
// until ctx is cancelled.
func runSweeper(ctx context.Context, sessions sessionExpirer, limiter *middleware.RateLimiter, interval, idleTTL time.Duration, logger zerolog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := sessions.ExpireIdle(ctx, idleTTL)
			if err != nil {
				logger.Warn().Err(err).Msg("session sweep failed")
				continue
			}
			if n > 0 {
				logger.Info().Int("expired", n).Msg("expired idle sessions")
			}
			if limiter != nil {
				limiter.CleanupLimiters()
			}
		}
	}
}
