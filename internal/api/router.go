package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/brainbox-app/brainbox/internal/auth"
	"github.com/brainbox-app/brainbox/internal/store"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Auth         *auth.Middleware
	Tokens       *auth.Tokens
	UserStore    *store.UserStore
	ContentStore *store.ContentStore
	ShareStore   *store.ShareStore
}

// NewRouter assembles the full chi router. The API lives under /api/v1;
// /metrics is served at the root.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)

	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(jsonContentType)

		registerAccountRoutes(r, deps.UserStore, deps.Tokens)
		registerPublicBrainRoute(r, deps.ShareStore, deps.ContentStore, deps.UserStore)

		// Every content operation and the share toggle sit behind the same
		// gate; no mutating route is special-cased out of it.
		r.Group(func(r chi.Router) {
			r.Use(deps.Auth.RequireUser)
			registerContentRoutes(r, deps.ContentStore)
			registerShareRoute(r, deps.ShareStore)
		})
	})

	return r
}

// jsonContentType sets Content-Type: application/json on all API responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// requestLogger emits one structured event per request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
