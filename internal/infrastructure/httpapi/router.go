// Package httpapi exposes the tab group store over a local HTTP API.
package httpapi

import (
	"net/http"
	"time"

	"github.com/bnema/tabstash/internal/application/usecase"
	"github.com/bnema/tabstash/internal/infrastructure/broadcast"
	"github.com/bnema/tabstash/internal/logging"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

// Options configures the router.
type Options struct {
	AllowedOrigins []string
	Logger         zerolog.Logger
	// Bus feeds the /api/events stream. Nil disables the endpoint.
	Bus *broadcast.Bus
	// KeepAlive is the SSE comment interval.
	KeepAlive time.Duration
}

// NewRouter builds the chi router for the API.
func NewRouter(store *usecase.TabGroupStore, opts Options) http.Handler {
	h := &handler{store: store, bus: opts.Bus, keepAlive: opts.KeepAlive}
	if h.keepAlive <= 0 {
		h.keepAlive = 15 * time.Second
	}

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(requestLogger(opts.Logger))
	router.Use(middleware.Recoverer)
	router.Use(corsHandler(opts.AllowedOrigins))

	router.Get("/healthz", h.health)

	router.Route("/api", func(r chi.Router) {
		r.Route("/tab-groups", func(r chi.Router) {
			r.Get("/", h.list)
			r.Post("/", h.create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", h.get)
				r.Put("/", h.put)
				r.Delete("/", h.destroy)
			})
		})
		if h.bus != nil {
			r.Get("/events", h.events)
		}
	})

	return router
}

func corsHandler(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"moz-extension://*", "chrome-extension://*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Content-Type", "Cache-Control"},
		MaxAge:         300,
	})
}

// requestLogger attaches the logger to each request context and logs completion.
func requestLogger(base zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLog := base.With().Str("request_id", middleware.GetReqID(r.Context())).Logger()
			ctx := logging.WithContext(r.Context(), reqLog)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLog.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("http request")
		})
	}
}
