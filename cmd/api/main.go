package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"example.com/fittrack/internal/api"
	"example.com/fittrack/internal/auth"
	"example.com/fittrack/internal/config"
	persistence "example.com/fittrack/internal/persistence/postgres"
	"example.com/fittrack/internal/session"
	httptransport "example.com/fittrack/internal/transport/http"
)

func main() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "fittrack").Logger()

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.PostgresURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()

	sessions, err := newSessionStore(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to configure session store")
	}

	repos := persistence.NewRepositories(pool)
	verifier := auth.NewVerifier(cfg.PasswordScheme)
	authService := auth.NewService(repos.Users, sessions, verifier)

	handler := api.NewHandler(api.Deps{
		Auth:          authService,
		Users:         repos.Users,
		Exercises:     repos.Exercises,
		Plans:         repos.Plans,
		PlanExercises: repos.PlanExercises,
		Progress:      repos.Progress,
		Nutrition:     repos.Nutrition,
		SessionTTL:    cfg.SessionTTL,
		CookieSecure:  cfg.CookieSecure,
	})

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())

	chain := httptransport.RequestID(
		httptransport.RequestLogger(logger,
			httptransport.CORS(cfg.AllowedOrigin, mux)))

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, chain)

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info().Str("address", cfg.HTTPAddress).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	<-shutdownCh
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// newSessionStore picks Redis when configured and falls back to the in-memory
// store otherwise.
func newSessionStore(cfg config.Config) (session.Store, error) {
	if cfg.RedisURL == "" {
		return session.NewMemoryStore(cfg.SessionTTL), nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	return session.NewRedisStore(redis.NewClient(opts), cfg.SessionTTL), nil
}
