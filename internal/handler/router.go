package handler

import (
	"context"
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/strongpass/strongpass-go/internal/middleware"
	"github.com/strongpass/strongpass-go/internal/service"
)

// RouterOptions configures NewRouter.
type RouterOptions struct {
	AllowedOrigin  string
	RateLimitRPS   float64
	RateLimitBurst int
	// Static is served for every path the API does not claim. Nil disables it.
	Static fs.FS
}

// NewRouter wires the generator API, metrics and the landing page.
// ctx bounds background work started by middleware.
func NewRouter(ctx context.Context, svc *service.GeneratorService, opts RouterOptions) http.Handler {
	genHandler := NewGeneratorHandler(svc)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(opts.AllowedOrigin))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, opts.RateLimitRPS, opts.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
		r.Post("/api/v1/strength", genHandler.HandleStrength)
	})

	if opts.Static != nil {
		r.Handle("/*", http.FileServer(http.FS(opts.Static)))
	}

	return r
}
