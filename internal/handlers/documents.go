package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/byiringiro-albert/portfolio/internal/documents"
)

// HandleDocument streams a preview document from the document store.
func (h *Handler) HandleDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := h.documents.Open(r.Context(), chi.URLParam(r, "*"))
	switch {
	case errors.Is(err, documents.ErrInvalidName):
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	case errors.Is(err, documents.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		slog.Error("Unable to open preview document", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = doc.Body.Close() }()

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("Cache-Control", "no-store")
	http.ServeContent(w, r, doc.Name, doc.ModTime, doc.Body)
}
