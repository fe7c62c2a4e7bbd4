// Package requests implements the download-request endpoint.
package requests

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/byiringiro-albert/portfolio/internal/audit"
	"github.com/byiringiro-albert/portfolio/internal/models"
)

const (
	MessageReceived  = "Request received. You will receive a confirmation email shortly."
	MessageNextSteps = "Your request is under review. You will receive download instructions via email if approved."
)

var errBadBody = errors.New("Invalid request body")

// Handler validates download requests and acknowledges them. It keeps no
// state between requests apart from the optional rate limiter.
type Handler struct {
	sink         audit.Sink
	notifier     Notifier
	limiter      *rate.Limiter
	adminEmail   string
	dashboardURL string
	development  bool
	now          func() time.Time
}

type Option func(*Handler)

// WithNotifier replaces the default logging notifier.
func WithNotifier(n Notifier) Option {
	return func(h *Handler) { h.notifier = n }
}

// WithAdmin sets the recipient and dashboard link of the admin notification.
func WithAdmin(email, dashboardURL string) Option {
	return func(h *Handler) {
		h.adminEmail = email
		h.dashboardURL = dashboardURL
	}
}

// WithDevelopment includes fault detail in 500 responses.
func WithDevelopment(dev bool) Option {
	return func(h *Handler) { h.development = dev }
}

// WithRateLimit caps accepted requests per second. Zero or less disables it.
func WithRateLimit(perSecond float64) Option {
	return func(h *Handler) {
		if perSecond > 0 {
			h.limiter = rate.NewLimiter(rate.Limit(perSecond), 1)
		}
	}
}

func withClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

func New(sink audit.Sink, opts ...Option) *Handler {
	if sink == nil {
		sink = audit.NewLogSink(nil)
	}
	h := &Handler{
		sink:     sink,
		notifier: LogNotifier{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

var (
	corsMethods = []string{http.MethodPost, http.MethodOptions}
	corsHeaders = []string{"Content-Type"}
)

// CORS opens the endpoint to every origin. The headers are sent even when
// the request carries no Origin, which cors.Handler alone would skip.
func CORS() func(http.Handler) http.Handler {
	open := cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: corsMethods,
		AllowedHeaders: corsHeaders,
	})
	return func(next http.Handler) http.Handler {
		withCORS := open(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Origin") == "" {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", "*")
				h.Set("Access-Control-Allow-Methods", strings.Join(corsMethods, ", "))
				h.Set("Access-Control-Allow-Headers", strings.Join(corsHeaders, ", "))
			}
			withCORS.ServeHTTP(w, r)
		})
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer func() {
		if rec := recover(); rec != nil {
			h.writeInternal(w, fmt.Errorf("panic: %v", rec))
		}
	}()

	switch r.Method {
	case http.MethodOptions:
		w.WriteHeader(http.StatusOK)
		return
	case http.MethodPost:
	default:
		writeError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if h.limiter != nil && !h.limiter.Allow() {
		writeError(w, "Too many requests", http.StatusTooManyRequests)
		return
	}

	req, err := decode(r)
	if err != nil {
		slog.Debug("Unable to decode download request", "err", err)
		writeError(w, errBadBody.Error(), http.StatusBadRequest)
		return
	}

	if err := Validate(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	now := h.now()
	rec := models.AuditRecord{
		RequestID:     NewRequestID(now),
		PublicationID: req.PublicationID,
		Name:          req.Name,
		Email:         req.Email,
		Institution:   req.Institution,
		Purpose:       req.Purpose,
		Timestamp:     now,
		IP:            clientIP(r),
	}

	if err := h.sink.Record(r.Context(), rec); err != nil {
		h.writeInternal(w, fmt.Errorf("record download request: %w", err))
		return
	}

	for _, n := range []Notification{
		AdminNotification(h.adminEmail, h.dashboardURL, rec),
		UserConfirmation(rec),
	} {
		if err := h.notifier.Notify(r.Context(), n); err != nil {
			slog.Warn("Unable to send notification", "request_id", rec.RequestID, "subject", n.Subject, "err", err)
		}
	}

	writeJSON(w, http.StatusOK, models.DownloadResponse{
		Success:   true,
		RequestID: rec.RequestID,
		Message:   MessageReceived,
		NextSteps: MessageNextSteps,
	})
}

// decode reads a JSON body, or a urlencoded/multipart form for plain HTML posts.
func decode(r *http.Request) (models.DownloadRequest, error) {
	var req models.DownloadRequest

	contentType := r.Header.Get("Content-Type")
	if contentType == "" || strings.Contains(contentType, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, err
		}
		return req, nil
	}

	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return req, err
		}
	} else if err := r.ParseForm(); err != nil {
		return req, err
	}

	req.Name = r.PostFormValue("name")
	req.Email = r.PostFormValue("email")
	req.Institution = r.PostFormValue("institution")
	req.Purpose = r.PostFormValue("purpose")
	req.PublicationID = r.PostFormValue("publicationId")
	req.AgreeToTerms = models.ParseFlag(r.PostFormValue("agreeToTerms"))
	return req, nil
}

// clientIP prefers the first X-Forwarded-For hop over the socket address.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (h *Handler) writeInternal(w http.ResponseWriter, err error) {
	slog.Error("Error processing download request", "err", err)
	body := models.ErrorResponse{Error: "Internal server error"}
	if h.development {
		body.Message = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, body)
}

func writeError(w http.ResponseWriter, message string, code int) {
	writeJSON(w, code, models.ErrorResponse{Error: message})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
	}
}
