// Package app assembles the HTTP server from configuration.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	httpLayer "emi-calculator/http"
	"emi-calculator/internal/config"
	"emi-calculator/repository"
	"emi-calculator/service"
)

const shutdownTimeout = 10 * time.Second

// NewSessionRepository picks Redis when an address is configured and the
// in-memory store otherwise. The returned func releases the store.
func NewSessionRepository(ctx context.Context, cfg config.Config, logger *zap.Logger) (repository.SessionRepository, func(), error) {
	if cfg.RedisAddr == "" {
		logger.Info("using in-memory session store", zap.Duration("ttl", cfg.SessionTTL))
		return repository.NewSessionRepositoryMemory(cfg.SessionTTL), func() {}, nil
	}

	store := repository.NewRedisSessionRepository(cfg.RedisAddr, cfg.SessionTTL)
	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("connect redis at %s: %w", cfg.RedisAddr, err)
	}
	logger.Info("using redis session store",
		zap.String("addr", cfg.RedisAddr),
		zap.Duration("ttl", cfg.SessionTTL),
	)
	return store, func() { _ = store.Close() }, nil
}

// NewHandler builds the full route tree. The returned func stops background
// work owned by the handler.
func NewHandler(cfg config.Config, repo repository.SessionRepository, logger *zap.Logger) (http.Handler, func()) {
	loanService := service.NewLoanService(logger)
	sessionService := service.NewSessionService(repo, logger)

	limiter := httpLayer.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)

	router := httpLayer.NewRouter(httpLayer.RouterConfig{
		Loans:          httpLayer.NewLoanHandler(loanService, logger),
		Sessions:       httpLayer.NewSessionHandler(sessionService, logger),
		Limiter:        limiter,
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins,
	})
	return router, limiter.Stop
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	repo, closeRepo, err := NewSessionRepository(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRepo()

	handler, stop := NewHandler(cfg, repo, logger)
	defer stop()

	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("EMI calculator API listening", zap.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("start server: %w", err)
	case <-ctx.Done():
		logger.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}
	logger.Info("server exited")
	return nil
}
