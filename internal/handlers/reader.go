package handlers

import (
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/byiringiro-albert/portfolio/internal/models"
	"github.com/byiringiro-albert/portfolio/internal/preview"
	"github.com/byiringiro-albert/portfolio/internal/render"
	"github.com/byiringiro-albert/portfolio/internal/storage"
)

type readerPage struct {
	Title       string
	Pub         models.Publication
	Citation    template.HTML
	State       preview.State
	LimitNotice string
	Watermark   string
}

// HandleRead hands the record to the reader and redirects there. The id stays
// in the URL so a reload still resolves once the token is spent.
func (h *Handler) HandleRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	q := url.Values{"id": {id}}

	if pub, ok := h.catalog.Find(id); ok {
		token, err := h.handoff.Put(r.Context(), storage.SlotCurrent, pub)
		if err != nil {
			slog.Warn("Unable to store handoff, reader will look the id up", "id", id, "err", err)
		} else {
			q.Set("h", token)
		}
	}

	http.Redirect(w, r, "/reader?"+q.Encode(), http.StatusFound)
}

// HandleRequest hands the record to the request-collection view.
func (h *Handler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	pub, ok := h.catalog.Find(id)
	if !ok {
		h.writePage(w, "notfound", http.StatusNotFound, struct{ Title string }{"Publication Not Found"})
		return
	}

	token, err := h.handoff.Put(r.Context(), storage.SlotRequested, pub)
	if err != nil {
		slog.Error("Unable to store requested publication", "id", id, "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, h.contactRedirect(token), http.StatusFound)
}

// HandleReader resolves the publication and opens a preview session for it.
func (h *Handler) HandleReader(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pub, err := h.resolver.Resolve(r.Context(), q.Get("h"), q.Get("id"))
	if err != nil {
		h.writePage(w, "notfound", http.StatusNotFound, struct{ Title string }{"Publication Not Found"})
		return
	}

	session := h.sessions.Open(pub)
	slog.Info("Preview session opened", "session_id", session.ID, "publication_id", pub.ID)

	h.writePage(w, "reader", http.StatusOK, readerPage{
		Title:       pub.Title + " - Reader",
		Pub:         pub,
		Citation:    render.ReaderCitation(pub),
		State:       preview.StateOf(&session, DocsBase, false),
		LimitNotice: session.LimitNotice(),
		Watermark:   preview.WatermarkText,
	})
}

// Session helpers
func (h *Handler) sessionError(w http.ResponseWriter, err error) {
	if errors.Is(err, preview.ErrSessionNotFound) {
		h.writeError(w, "Session not found", http.StatusNotFound)
		return
	}
	slog.Error("Preview session failure", "err", err)
	h.writeError(w, "Internal server error", http.StatusInternalServerError)
}

func (h *Handler) HandlePreviewState(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Get(chi.URLParam(r, "session"))
	if err != nil {
		h.sessionError(w, err)
		return
	}
	h.writeJSON(w, preview.StateOf(&session, DocsBase, false))
}

func (h *Handler) HandlePreviewNavigate(w http.ResponseWriter, r *http.Request) {
	var direction int
	switch r.URL.Query().Get("direction") {
	case "-1", "prev":
		direction = -1
	case "1", "+1", "next":
		direction = 1
	default:
		h.writeError(w, "Invalid direction", http.StatusBadRequest)
		return
	}

	session, moved, err := h.sessions.Navigate(chi.URLParam(r, "session"), direction)
	if err != nil {
		h.sessionError(w, err)
		return
	}
	h.writeJSON(w, preview.StateOf(&session, DocsBase, moved))
}

// HandlePreviewRequest ends the session and hands its publication to the
// request-collection view.
func (h *Handler) HandlePreviewRequest(w http.ResponseWriter, r *http.Request) {
	session, err := h.sessions.Close(chi.URLParam(r, "session"))
	if err != nil {
		h.sessionError(w, err)
		return
	}

	token, err := h.handoff.Put(r.Context(), storage.SlotRequested, session.Publication)
	if err != nil {
		slog.Error("Unable to store requested publication", "id", session.Publication.ID, "err", err)
		h.writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, map[string]string{"redirect": h.contactRedirect(token)})
}

// HandleHandoff returns the record behind a handoff token exactly once.
func (h *Handler) HandleHandoff(w http.ResponseWriter, r *http.Request) {
	slot := storage.Slot(r.URL.Query().Get("slot"))
	switch slot {
	case "":
		slot = storage.SlotRequested
	case storage.SlotCurrent, storage.SlotRequested:
	default:
		h.writeError(w, "Unknown slot", http.StatusBadRequest)
		return
	}

	pub, err := h.handoff.Take(r.Context(), slot, chi.URLParam(r, "token"))
	if err != nil {
		if errors.Is(err, storage.ErrSlotEmpty) {
			h.writeError(w, "Handoff not found", http.StatusNotFound)
			return
		}
		slog.Error("Handoff lookup failed", "slot", slot, "err", err)
		h.writeError(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	h.writeJSON(w, pub)
}
