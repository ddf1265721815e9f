package http

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"emi-calculator/repository"
	"emi-calculator/service"
)

func newTestRouter(limiter *RateLimiter) http.Handler {
	logger := zap.NewNop()
	repo := repository.NewSessionRepositoryMemory(time.Hour)

	return NewRouter(RouterConfig{
		Loans:          NewLoanHandler(service.NewLoanService(logger), logger),
		Sessions:       NewSessionHandler(service.NewSessionService(repo, logger), logger),
		Limiter:        limiter,
		Logger:         logger,
		AllowedOrigins: []string{"*"},
	})
}
