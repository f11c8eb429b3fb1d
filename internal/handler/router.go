package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/passforge/passforge-go/internal/middleware"
)

// RouterConfig carries what NewRouter needs besides the handlers.
type RouterConfig struct {
	Logger         *slog.Logger
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires every route. ctx bounds the rate limiter's background cleanup.
func NewRouter(ctx context.Context, cfg RouterConfig, gen *GeneratorHandler, wid *WidgetHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger(cfg.Logger))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/", HandleIndex)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))

		r.Post("/generate", gen.HandleGenerate)
		r.Post("/generate/batch", gen.HandleGenerateBatch)
		r.Post("/strength", gen.HandleStrength)

		r.Get("/widget", wid.HandleState)
		r.Post("/widget/generate", wid.HandleRegenerate)
		r.Put("/widget/length", wid.HandleSetLength)
		r.Post("/widget/classes/{class}/toggle", wid.HandleToggleClass)
		r.Post("/widget/copy", wid.HandleCopy)
	})

	return r
}
