package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/tasktrack/backend/internal/auth"
	"github.com/tasktrack/backend/internal/config"
	"github.com/tasktrack/backend/internal/db"
	"github.com/tasktrack/backend/internal/handler"
	"github.com/tasktrack/backend/internal/logging"
	"github.com/tasktrack/backend/internal/service"
)

const shutdownTimeout = 10 * time.Second

type repository interface {
	service.UserRepository
	service.TaskRepository
}

func main() {
	cfg := config.Load()
	log := logging.New(cfg.Log)
	gin.SetMode(cfg.Server.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error().Err(err).Msg("server exited")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	repo, closeRepo, err := openRepository(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeRepo()

	key, err := auth.NewSigningKey()
	if err != nil {
		return err
	}
	codec, err := auth.NewTokenCodec(key, auth.WithTTL(cfg.Auth.TokenTTL))
	if err != nil {
		return err
	}
	tokens := auth.NewTokenStore()
	revoked := auth.NewRevocationList()

	go auth.NewSweeper(tokens, revoked, cfg.Auth.SweepInterval, log).Run(ctx)

	authSvc := service.NewAuthService(repo, auth.NewPasswordHasher(), codec, tokens, revoked, log)
	taskSvc := service.NewTaskService(repo, log)
	router := handler.NewRouter(handler.RouterConfig{AllowedOrigins: cfg.Server.AllowedOrigins}, log, authSvc, taskSvc)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Server.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func openRepository(ctx context.Context, cfg config.Config, log zerolog.Logger) (repository, func(), error) {
	if cfg.Storage.Driver == config.StorageMemory {
		log.Warn().Msg("using in-memory storage; data is lost on restart")
		return db.NewMemory(), func() {}, nil
	}

	pool, err := db.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	log.Info().Msg("database ready")
	return db.NewPostgres(pool), pool.Close, nil
}
