package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/securevault/securevault-go/internal/middleware"
	"github.com/securevault/securevault-go/internal/service"
)

// RouterConfig carries the services and limits the API is built from.
// Nil limiters disable rate limiting for their routes.
type RouterConfig struct {
	Generator     *service.GeneratorService
	Cipher        *service.CipherService
	History       *service.HistoryService
	SessionSecret string
	SessionExpiry time.Duration
	APILimiter    *middleware.Limiter
	SessionLimit  *middleware.Limiter
}

// NewRouter wires all HTTP routes.
func NewRouter(cfg RouterConfig) http.Handler {
	genHandler := NewGeneratorHandler(cfg.Generator)
	cipherHandler := NewCipherHandler(cfg.Cipher)
	historyHandler := NewHistoryHandler(cfg.History)
	sessionHandler := NewSessionHandler(cfg.SessionSecret, cfg.SessionExpiry)

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", HandlePing)
	r.Get("/api/health", HandleHealth)

	r.Group(func(r chi.Router) {
		if cfg.SessionLimit != nil {
			r.Use(cfg.SessionLimit.Middleware)
		}
		r.Post("/api/v1/session", sessionHandler.HandleCreate)
	})

	r.Post("/api/v1/strength", genHandler.HandleStrength)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Session(cfg.SessionSecret))

		r.Group(func(r chi.Router) {
			if cfg.APILimiter != nil {
				r.Use(cfg.APILimiter.Middleware)
			}
			r.Post("/api/v1/generate", genHandler.HandleGenerate)
			r.Post("/api/v1/encrypt", cipherHandler.HandleEncrypt)
			r.Post("/api/v1/decrypt", cipherHandler.HandleDecrypt)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession)
			r.Get("/api/v1/history", historyHandler.HandleList)
			r.Delete("/api/v1/history", historyHandler.HandleClear)
		})
	})

	return r
}
