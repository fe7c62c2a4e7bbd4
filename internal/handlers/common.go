// Package handlers serves the portfolio pages, the preview API and the
// download-request endpoint.
package handlers

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/byiringiro-albert/portfolio/internal/catalog"
	"github.com/byiringiro-albert/portfolio/internal/deterrent"
	"github.com/byiringiro-albert/portfolio/internal/documents"
	"github.com/byiringiro-albert/portfolio/internal/models"
	"github.com/byiringiro-albert/portfolio/internal/preview"
	"github.com/byiringiro-albert/portfolio/internal/render"
	"github.com/byiringiro-albert/portfolio/internal/storage"
)

//go:embed templates/*.html
var templateFS embed.FS

// DocsBase is the URL prefix preview documents are served under.
const DocsBase = "/docs/previews"

// FeaturedLimit caps the cards on the home page.
const FeaturedLimit = 3

type Handler struct {
	catalog    *catalog.Catalog
	renderer   *render.Renderer
	pages      map[string]*template.Template
	handoff    storage.Store
	sessions   *preview.SessionStore
	resolver   *preview.Resolver
	documents  documents.Store
	requests   http.Handler
	contactURL string
}

// Deps are the collaborators a Handler serves from.
type Deps struct {
	Catalog    *catalog.Catalog
	Loader     preview.CatalogLoader
	Handoff    storage.Store
	Sessions   *preview.SessionStore
	Documents  documents.Store
	Requests   http.Handler
	ContactURL string
}

func New(d Deps) *Handler {
	if d.Catalog == nil {
		d.Catalog = catalog.New(nil)
	}
	if d.ContactURL == "" {
		d.ContactURL = "/contact.html"
	}
	return &Handler{
		catalog:    d.Catalog,
		renderer:   render.New(),
		pages:      parsePages(),
		handoff:    d.Handoff,
		sessions:   d.Sessions,
		resolver:   preview.NewResolver(d.Handoff, d.Loader),
		documents:  d.Documents,
		requests:   d.Requests,
		contactURL: d.ContactURL,
	}
}

func parsePages() map[string]*template.Template {
	pages := map[string]*template.Template{}
	for _, name := range []string{"index", "publications", "reader", "notfound"} {
		pages[name] = template.Must(template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html"))
	}
	return pages
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Debug(message, "status", code)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: message}); err != nil {
		slog.Error("Unable to encode JSON error", "err", err)
	}
}

// writePage renders a page template and watermarks its images before sending.
func (h *Handler) writePage(w http.ResponseWriter, name string, code int, data any) {
	var buf bytes.Buffer
	if err := h.pages[name].ExecuteTemplate(&buf, "layout", data); err != nil {
		slog.Error("Unable to render page", "page", name, "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	body, err := deterrent.Watermark(buf.Bytes())
	if err != nil {
		slog.Warn("Unable to watermark page", "page", name, "err", err)
		body = buf.Bytes()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write(body); err != nil {
		slog.Error("Unable to write page", "page", name, "err", err)
	}
}

// contactRedirect addresses the request-collection view for a handoff token.
func (h *Handler) contactRedirect(token string) string {
	q := url.Values{"type": {"download"}}
	if token != "" {
		q.Set("h", token)
	}
	return h.contactURL + "?" + q.Encode()
}
