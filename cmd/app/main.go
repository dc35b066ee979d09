package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gymslot/internal/config"
	"gymslot/internal/export"
	"gymslot/internal/gateway"
	"gymslot/internal/logging"
	"gymslot/internal/metrics"
	"gymslot/internal/payment"
	"gymslot/internal/service"
	"gymslot/internal/session"
	"gymslot/internal/worker"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	cfg, logger, closer, err := loadConfigAndLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer (func(c io.Closer) { _ = c.Close() })(closer)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.Register()

	store := initSessionStore(ctx, cfg, logger)

	gw := gateway.NewClient(
		cfg.Backend.BaseURL,
		time.Duration(cfg.Backend.TimeoutSeconds)*time.Second,
		cfg.Backend.RateLimitRPS,
		cfg.Backend.RateLimitBurst,
		store,
		logger,
	)

	processor := payment.NewStripeProcessor(cfg.Payment, logger)
	flow := payment.NewFlow(gw, processor, logger)

	var exporter service.Exporter
	if cfg.Exports.Enabled {
		writer := export.NewXLSXWriter(cfg.Exports.Path, logger)
		exportWorker := worker.NewExportWorker(writer, worker.RetryPolicy{}, logger)
		go exportWorker.Start(ctx)
		exporter = exportWorker
	}

	client := service.NewClient(gw, flow, exporter, logger)

	if cfg.Monitoring.PrometheusEnabled {
		metricsServer := metrics.NewServer(cfg.Monitoring.PrometheusPort)
		go func() {
			if err := metricsServer.Start(); err != nil {
				logger.Error().Err(err).Msg("Metrics server error")
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = metricsServer.Shutdown(shutdownCtx)
		}()
	}

	restoreSession(ctx, store, gw, client, logger)

	logger.Info().Str("backend", cfg.Backend.BaseURL).Msg("Client started")
	<-ctx.Done()
	logger.Info().Msg("Shutting down")
	return nil
}

func loadConfigAndLogger() (*config.Config, *zerolog.Logger, io.Closer, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	baseLogger, closer, err := logging.New(cfg.Logging, cfg.App)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := baseLogger.With().Str("component", "app-main").Logger()

	return cfg, &logger, closer, nil
}

// initSessionStore подключает Redis, при недоступности переходит на память
func initSessionStore(ctx context.Context, cfg *config.Config, logger *zerolog.Logger) *session.Store {
	ttl := time.Duration(cfg.Session.TTLSeconds) * time.Second
	memory := session.NewMemoryRepository()

	var repo session.Repository = memory

	redisClient := session.NewRedisClient(cfg.Redis)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := session.Ping(pingCtx, redisClient); err != nil {
		logger.Warn().Err(err).Msg("Redis недоступен, сессия хранится только в памяти")
	} else {
		repo = session.NewFailoverRepository(session.NewRedisRepository(redisClient, ttl), memory, logger)
	}

	return session.NewStore(repo, logger)
}

// restoreSession picks up a persisted session, checks the token is still
// accepted by the backend and warms the bookings cache.
func restoreSession(ctx context.Context, store *session.Store, gw *gateway.Client, client *service.Client, logger *zerolog.Logger) {
	if err := store.Load(ctx); err != nil {
		logger.Warn().Err(err).Msg("Session restore failed")
		return
	}
	if !store.Authenticated() {
		logger.Info().Msg("No persisted session")
		return
	}

	if _, err := gw.VerifyToken(ctx); err != nil {
		if errors.Is(err, gateway.ErrUnauthenticated) {
			logger.Info().Msg("Persisted token rejected, logging out")
			_ = store.Logout(ctx)
			return
		}
		logger.Warn().Err(err).Msg("Token verification failed, keeping session")
		return
	}

	if err := client.LoadBookings(ctx); err != nil {
		logger.Warn().Err(err).Msg("Bookings preload failed")
		return
	}
	logger.Info().Int("bookings", len(client.View())).Msg("Session restored")
}
