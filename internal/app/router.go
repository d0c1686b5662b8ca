package app

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpserver "github.com/careerpath-labs/career-compass/internal/adapter/httpserver"
	"github.com/careerpath-labs/career-compass/internal/adapter/observability"
	"github.com/careerpath-labs/career-compass/internal/config"
)

// ParseOrigins splits a comma-separated origin list into a slice, trimming spaces.
// If the input is empty, returns ["*"].
func ParseOrigins(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return []string{"*"}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// BuildRouter constructs the HTTP handler with all middlewares and routes.
func BuildRouter(cfg config.Config, srv *httpserver.Server) http.Handler {
	r := chi.NewRouter()
	r.Use(httpserver.Recoverer())
	r.Use(httpserver.RequestID())
	r.Use(httpserver.TimeoutMiddleware(30 * time.Second))
	r.Use(httpserver.TraceMiddleware)
	r.Use(httpserver.AccessLog())
	r.Use(observability.HTTPMetricsMiddleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   ParseOrigins(cfg.CORSAllowOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Rate limit mutating endpoints
	r.Group(func(wr chi.Router) {
		wr.Use(httprate.LimitByIP(cfg.RateLimitPerMin, 1*time.Minute))
		wr.Put("/v1/assessment", srv.SubmitAssessmentHandler())
		wr.Delete("/v1/assessment", srv.ResetAssessmentHandler())
		wr.Put("/v1/careers/{id}/saved", srv.SaveItemHandler("career"))
		wr.Delete("/v1/careers/{id}/saved", srv.UnsaveItemHandler("career"))
		wr.Put("/v1/courses/{id}/saved", srv.SaveItemHandler("course"))
		wr.Delete("/v1/courses/{id}/saved", srv.UnsaveItemHandler("course"))
		wr.Post("/v1/assistant", srv.AssistantHandler())
		wr.Post("/v1/chat", srv.ChatHandler())
		wr.Post("/v1/resume", srv.ResumeHandler())
	})
	// Read-only endpoints
	r.Get("/v1/assessment", srv.GetAssessmentHandler())
	r.Get("/v1/careers", srv.ListCareersHandler())
	r.Get("/v1/courses", srv.ListCoursesHandler())
	r.Get("/v1/recommendations", srv.RecommendationsHandler())

	// Health and metrics
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) { promhttp.Handler().ServeHTTP(w, r) })
	r.Get("/readyz", srv.ReadyzHandler())

	return httpserver.SecurityHeaders(r)
}
