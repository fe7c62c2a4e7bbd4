package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/byiringiro-albert/portfolio/internal/requests"
)

// NewRouter wires every route of the site.
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.HandleHome)
	r.Get("/index.html", h.HandleHome)
	r.Get("/publications", h.HandlePublications)
	r.Get("/publications/cards", h.HandleCards)
	r.Get("/read/{id}", h.HandleRead)
	r.Get("/request/{id}", h.HandleRequest)
	r.Get("/reader", h.HandleReader)

	r.Route("/api", func(r chi.Router) {
		r.Get("/publications", h.HandleAPIPublications)
		r.Get("/handoff/{token}", h.HandleHandoff)
		r.Route("/preview/{session}", func(r chi.Router) {
			r.Get("/", h.HandlePreviewState)
			r.Post("/navigate", h.HandlePreviewNavigate)
			r.Post("/request", h.HandlePreviewRequest)
		})
	})

	if h.requests != nil {
		r.With(requests.CORS()).Handle("/request-download", h.requests)
	}

	r.Get(DocsBase+"/*", h.HandleDocument)
	r.Handle("/static/*", h.HandleStatic())
	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})

	return r
}

// requestLogger logs one line per request at debug level.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			slog.Debug("HTTP request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
				"remote", r.RemoteAddr,
			)
		}()
		next.ServeHTTP(ww, r)
	})
}
