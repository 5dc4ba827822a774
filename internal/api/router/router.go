package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/monteverde-landscapes/website-api/internal/content"
	httpmiddleware "github.com/monteverde-landscapes/website-api/internal/http/middleware"
	"github.com/monteverde-landscapes/website-api/internal/leads"
	"github.com/monteverde-landscapes/website-api/internal/reviews"
	"github.com/monteverde-landscapes/website-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	LeadsHandler       *leads.Handler
	ReviewsHandler     *reviews.Handler
	ContentHandler     *content.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// Rate limiting for the form POST endpoints. Zero disables it.
	FormRateLimit float64
	FormRateBurst int
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		// Form submissions, rate limited per IP.
		api.Group(func(submit chi.Router) {
			if cfg.FormRateLimit > 0 {
				submit.Use(httpmiddleware.RateLimit(cfg.FormRateLimit, cfg.FormRateBurst))
			}
			submit.Post("/lead", cfg.LeadsHandler.CreateLead)
			submit.Post("/quote", cfg.LeadsHandler.CreateQuote)
			submit.Post("/review", cfg.ReviewsHandler.Create)
		})

		// Public reads.
		api.Get("/review", cfg.ReviewsHandler.List)
		if cfg.ContentHandler != nil {
			api.Route("/content", func(r chi.Router) {
				r.Get("/services", cfg.ContentHandler.Services)
				r.Get("/projects", cfg.ContentHandler.Projects)
				r.Get("/process", cfg.ContentHandler.Process)
			})
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
