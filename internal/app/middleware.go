package app

import (
	"net/http"
	"time"

	"github.com/bookwell/bookwell/internal/config"
	"github.com/go-chi/cors"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			started := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, req)
			log.WithFields(log.Fields{
				"method":   req.Method,
				"path":     req.URL.Path,
				"status":   rec.status,
				"duration": time.Since(started),
			}).Debug("request served")
		})
	})

	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware)
	}
}

// WithCors wraps the whole router so preflight requests are answered before route
// matching rejects the OPTIONS method.
func WithCors(h http.Handler, cfg config.Cors) http.Handler {
	if len(cfg.AllowedOrigins) == 0 {
		return h
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Requested-With"},
		MaxAge:         300,
	})(h)
}
