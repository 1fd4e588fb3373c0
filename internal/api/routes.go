package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bitai/castforge/internal/config"
	"github.com/bitai/castforge/internal/db"
	"github.com/bitai/castforge/internal/generator"
	"github.com/bitai/castforge/internal/llm"
	"github.com/bitai/castforge/internal/scraper"
)

func NewRouter(cfg *config.Config, database *db.DB, gen *generator.Generator, scr *scraper.Service, llmClient *llm.Client, pub Publisher) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)

	handlers := NewHandlers(cfg, database, gen, scr, llmClient)
	if pub != nil {
		handlers.SetPublisher(pub)
	}

	limiter := NewRateLimiter(60, time.Minute)

	// Public endpoints
	r.Get("/health", handlers.Health)

	// API v1 routes (authenticated)
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(AuthMiddleware(cfg))
		r.Use(JSONContentType)
		r.Use(RateLimitMiddleware(limiter))

		r.Post("/generate/hooks", handlers.GenerateHooks)
		r.Post("/generate/content", handlers.GenerateContent)
		r.Post("/scrape/topic", handlers.ScrapeTopic)
		r.Get("/scrape/trending", handlers.Trending)
		r.Get("/personality/templates", handlers.Templates)
		r.Get("/content/history", handlers.History)
		r.Post("/content/update", handlers.UpdateContent)
		r.Post("/publish/cast", handlers.PublishCast)
	})

	return r
}
