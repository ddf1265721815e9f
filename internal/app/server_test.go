package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"emi-calculator/internal/config"
	"emi-calculator/repository"
)

func testConfig() config.Config {
	return config.Config{
		ServerPort:        "0",
		SessionTTL:        time.Minute,
		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		AllowedOrigins:    []string{"*"},
	}
}

func TestNewSessionRepository_Memory(t *testing.T) {
	repo, closeRepo, err := NewSessionRepository(context.Background(), testConfig(), zap.NewNop())
	require.NoError(t, err)
	defer closeRepo()

	assert.IsType(t, &repository.SessionRepositoryMemory{}, repo)
}

func TestNewSessionRepository_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.RedisAddr = mr.Addr()

	repo, closeRepo, err := NewSessionRepository(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeRepo()

	assert.IsType(t, &repository.RedisSessionRepository{}, repo)
}

func TestNewSessionRepository_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := testConfig()
	cfg.RedisAddr = mr.Addr()
	mr.Close()

	_, _, err := NewSessionRepository(context.Background(), cfg, zap.NewNop())
	assert.Error(t, err)
}

func TestNewHandler(t *testing.T) {
	handler, stop := NewHandler(testConfig(), repository.NewSessionRepositoryMemory(time.Minute), zap.NewNop())
	defer stop()

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sessions", nil))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"monthly_emi":"₹ 19,566"`)
}
