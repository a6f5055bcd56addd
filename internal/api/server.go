// Package api exposes the HTTP surface of the Q&A service.
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/rs/zerolog"

	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/qa"
	"github.com/Eppo-exp/Eppo-AI-SDK-demo/internal/telemetry"
)

// Options tunes the router middleware stack.
type Options struct {
	RateLimitPerIP int           // requests per IP per minute, 0 disables
	RequestTimeout time.Duration // per-request timeout, 0 uses a 15s default
	FlagKey        string        // flag key shown in the variants view
	ModelMarker    string        // marker shown in the variants view
}

type Server struct {
	svc  *qa.Service
	opts Options
	log  zerolog.Logger
}

func NewServer(svc *qa.Service, opts Options, log zerolog.Logger) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 15 * time.Second
	}
	return &Server{svc: svc, opts: opts, log: log}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(s.opts.RequestTimeout))
	if s.opts.RateLimitPerIP > 0 {
		r.Use(httprate.LimitByIP(s.opts.RateLimitPerIP, time.Minute))
	}
	r.Use(telemetry.Middleware)
	r.Use(s.requestLogger)

	// greeting kept from the original demo
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"Hello": "World"})
	})

	// health
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/qa", s.handleQA)
	r.Get("/v1/variants", s.handleVariants)

	return r
}

// requestLogger emits one structured line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
