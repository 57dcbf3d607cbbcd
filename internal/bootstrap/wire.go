// Package bootstrap wires configuration, infrastructure and transport into
// a runnable HTTP server.
package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/sparcom/backend/internal/application/auth"
	"github.com/sparcom/backend/internal/application/events"
	"github.com/sparcom/backend/internal/application/roles"
	"github.com/sparcom/backend/internal/config"
	"github.com/sparcom/backend/internal/infrastructure/db/postgres"
	"github.com/sparcom/backend/internal/infrastructure/memory"
	"github.com/sparcom/backend/internal/infrastructure/messaging/rabbitmq"
	"github.com/sparcom/backend/internal/infrastructure/security"
	"github.com/sparcom/backend/internal/logger"
	http_handlers "github.com/sparcom/backend/internal/transport/http/handlers"
	"github.com/sparcom/backend/internal/transport/http/router"
)

// publisher is the union of the per-service publisher ports.
type publisher interface {
	auth.EventPublisher
	events.EventPublisher
	roles.EventPublisher
}

// NewServer builds the production server. The returned cleanup closes the
// database pool and the broker connection.
func NewServer() (*http.Server, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	lg := logger.Init(cfg.LogLevel, cfg.LogFormat)

	db, err := postgres.NewDB(cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	cleanupFns := []func(){func() { _ = db.Close() }}

	if cfg.MigrateOnStart {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := postgres.Migrate(ctx, db); err != nil {
			runCleanup(cleanupFns)
			return nil, nil, err
		}
		lg.Info().Msg("migrations applied")
	}

	pub, pubCleanup := newPublisher(cfg, lg)
	if pubCleanup != nil {
		cleanupFns = append(cleanupFns, pubCleanup)
	}

	userRepo := postgres.NewUserRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)
	eventRepo := postgres.NewEventRepo(db)
	appRepo := postgres.NewApplicationRepo(db)

	stopSweep := startSessionSweep(sessionRepo, lg)
	cleanupFns = append(cleanupFns, stopSweep)

	hasher := security.NewPBKDF2Hasher(cfg.HashIterations)

	authSvc := auth.NewService(userRepo, hasher, sessionRepo, security.NewSessionToken, pub, lg, auth.Config{
		SessionTTL: cfg.SessionTTL,
	})
	eventsSvc := events.NewService(eventRepo, pub, lg, nil)
	rolesSvc := roles.NewService(appRepo, pub, lg, nil)

	secureCookies := cfg.AppEnv != "dev"

	h := router.New(router.Deps{
		Health:   http_handlers.NewHealthHandler(db),
		Auth:     http_handlers.NewAuthHandler(authSvc, cfg.SessionTTL, secureCookies, lg),
		Events:   http_handlers.NewEventsHandler(eventsSvc, lg),
		Roles:    http_handlers.NewRolesHandler(rolesSvc, lg),
		Sessions: authSvc,
		Logger:   lg,
	}, router.Config{
		RLEnabled:          cfg.RLEnabled,
		RLLimit:            cfg.RLLimit,
		RLWindow:           cfg.RLWindow,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      h,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	return srv, func() { runCleanup(cleanupFns) }, nil
}

// newPublisher connects to RabbitMQ when configured; dev without a broker
// gets the logging noop.
func newPublisher(cfg *config.Config, lg zerolog.Logger) (publisher, func()) {
	if cfg.RabbitURL == "" {
		lg.Warn().Msg("no RABBIT_URL configured; events will not be published")
		return memory.NewNoopPublisher(lg), nil
	}

	p, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
	if err != nil {
		lg.Warn().Err(err).Msg("rabbitmq unavailable; falling back to noop publisher")
		return memory.NewNoopPublisher(lg), nil
	}
	lg.Info().Str("exchange", cfg.RabbitExchange).Msg("rabbitmq connected")
	return p, func() { _ = p.Close() }
}

// startSessionSweep prunes expired sessions hourly. Readers already filter
// on expires_at, the sweep only keeps the table small.
func startSessionSweep(sessions *postgres.SessionRepo, lg zerolog.Logger) (stop func()) {
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				n, err := sessions.DeleteExpired(ctx, time.Now())
				cancel()
				if err != nil {
					lg.Warn().Err(err).Msg("session sweep failed")
					continue
				}
				if n > 0 {
					lg.Info().Int64("deleted", n).Msg("expired sessions pruned")
				}
			}
		}
	}()
	return func() { close(done) }
}

func runCleanup(fns []func()) {
	for i := len(fns) - 1; i >= 0; i-- {
		fns[i]()
	}
}
