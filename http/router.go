package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Loans          *LoanHandler
	Sessions       *SessionHandler
	Limiter        *RateLimiter
	Logger         *zap.Logger
	AllowedOrigins []string
}

// NewRouter wires the calculator routes behind the shared middleware stack.
func NewRouter(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		if cfg.Limiter != nil {
			r.Use(RateLimitMiddleware(cfg.Limiter))
		}

		r.Get("/loan/bounds", cfg.Loans.Bounds)
		r.Post("/loan/calculate", cfg.Loans.CalculateLoan)

		r.Post("/sessions", cfg.Sessions.Create)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", cfg.Sessions.Get)
			r.Delete("/", cfg.Sessions.Delete)
			r.Post("/reset", cfg.Sessions.Reset)
			r.Put("/inputs/{field}", cfg.Sessions.ChangeInput)
		})
	})

	return r
}
