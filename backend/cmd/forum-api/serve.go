package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/forum-api/forum-api/backend/internal/router"
	"github.com/forum-api/forum-api/backend/internal/setup"
	"github.com/forum-api/forum-api/shared/config"
	"github.com/forum-api/forum-api/shared/logger"
	"github.com/forum-api/forum-api/shared/middleware/ratelimiter"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	limiterSweepInterval   = 10 * time.Minute
)

var serveCommand = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustLoad(configFolder)
		logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.JSON)
		defer logger.Log.Sync()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		deps, err := setup.SetupDependencies(ctx, cfg)
		if err != nil {
			logger.Log.Error("failed to initialize dependencies", zap.Error(err))
			return err
		}
		defer deps.Storage.Cleanup()

		if deps.WriteLimiter != nil {
			go sweepLimiter(ctx, deps.WriteLimiter)
		}

		server := &http.Server{
			Addr:              cfg.Public.Http.Addr,
			Handler:           router.New(deps),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       cfg.Public.Http.ReadTimeout,
		}

		serverErr := make(chan error, 1)
		go func() {
			logger.Log.Info("server started", zap.String("addr", server.Addr))
			if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				serverErr <- err
			}
			close(serverErr)
		}()

		select {
		case err := <-serverErr:
			logger.Log.Error("server shut down unexpectedly", zap.Error(err))
			return err
		case <-ctx.Done():
		}

		timeout := cfg.Public.Http.ShutdownTimeout
		if timeout == 0 {
			timeout = defaultShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		logger.Log.Info("shutting down")
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("graceful shutdown failed", zap.Error(err))
			return err
		}
		return nil
	},
}

func sweepLimiter(ctx context.Context, l *ratelimiter.Limiter) {
	ticker := time.NewTicker(limiterSweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := l.Sweep(); n > 0 {
				logger.Log.Debug("dropped idle rate limit buckets",
					zap.Int("count", n), zap.Int("tracked", l.Size()))
			}
		}
	}
}
