package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	adapthttp "healthlog/internal/adapter/http"
	"healthlog/internal/adapter/memory"
	"healthlog/internal/adapter/postgres"
	"healthlog/internal/app"
	"healthlog/internal/config"
	"healthlog/internal/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New(os.Stderr, "", "error").Error(context.Background(), "config", "error", err)
		os.Exit(1)
	}
	logger := logging.New(os.Stdout, cfg.Env, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "server stopped", "error", err)
		os.Exit(1)
	}
}

// run wires the store, services and HTTP server and blocks until ctx is
// cancelled or the listener fails.
func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	srv, closer, err := build(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	httpServer := &http.Server{
		Addr:              cfg.Addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "listening", "addr", cfg.Addr, "env", cfg.Env)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// build picks PostgreSQL when DATABASE_URL is set and the in-memory store
// otherwise.
func build(ctx context.Context, cfg *config.Config, logger logging.Logger) (*adapthttp.Server, io.Closer, error) {
	var (
		users     *app.UserService
		auth      *app.AuthService
		moods     *app.MoodService
		water     *app.WaterService
		pedometer *app.PedometerService
		closer    io.Closer = io.NopCloser(nil)
	)

	if cfg.DatabaseURL != "" {
		db, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		closer = db
		users = app.NewUserService(db)
		auth = app.NewAuthService(db, []byte(cfg.SecretKey), cfg.TokenTTL)
		moods = app.NewMoodService(postgres.NewMoodRepo(db))
		water = app.NewWaterService(postgres.NewWaterRepo(db))
		pedometer = app.NewPedometerService(postgres.NewPedometerRepo(db))
	} else {
		logger.Warn(ctx, "DATABASE_URL not set, using in-memory store")
		db := memory.New()
		users = app.NewUserService(db)
		auth = app.NewAuthService(db, []byte(cfg.SecretKey), cfg.TokenTTL)
		moods = app.NewMoodService(memory.NewMoodRepo(db))
		water = app.NewWaterService(memory.NewWaterRepo(db))
		pedometer = app.NewPedometerService(memory.NewPedometerRepo(db))
	}

	srv := adapthttp.New(auth, users, moods, water, pedometer, logger)

	if cfg.OIDC.Enabled() {
		oidcCfg, err := adapthttp.NewOIDCConfig(ctx, cfg.OIDC.Issuer, cfg.OIDC.ClientID, cfg.OIDC.ClientSecret, cfg.OIDC.RedirectURL)
		if err != nil {
			_ = closer.Close()
			return nil, nil, err
		}
		srv.WithOIDC(oidcCfg)
		logger.Info(ctx, "sso enabled", "issuer", cfg.OIDC.Issuer)
	}
	return srv, closer, nil
}
