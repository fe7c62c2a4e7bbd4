// Package render projects publication records into HTML card fragments.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// Stagger timing for the card reveal transition.
const (
	StaggerStart = 100 * time.Millisecond
	StaggerStep  = 100 * time.Millisecond
)

// Card is the view model of one rendered publication.
type Card struct {
	Pub          models.Publication
	Index        int
	Authors      string
	Citation     template.HTML
	CategorySlug string
	ReadURL      string
	RequestURL   string
	DelayMS      int64
}

// Renderer builds card fragments for listing containers.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded card templates.
func New() *Renderer {
	return &Renderer{
		tmpl: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// Cards builds the view models for records, in order.
func Cards(records []models.Publication) []Card {
	cards := make([]Card, 0, len(records))
	for i, pub := range records {
		cards = append(cards, Card{
			Pub:          pub,
			Index:        i,
			Authors:      Authors(pub),
			Citation:     Citation(pub),
			CategorySlug: CategorySlug(pub.Category),
			ReadURL:      ReadURL(pub.ID),
			RequestURL:   RequestURL(pub.ID),
			DelayMS:      StaggerDelay(i).Milliseconds(),
		})
	}
	return cards
}

// Render writes the contents of a listing container: one card per record,
// or a single no-results placeholder when records is empty.
func (r *Renderer) Render(w io.Writer, records []models.Publication) error {
	if err := r.tmpl.ExecuteTemplate(w, "cards", Cards(records)); err != nil {
		return fmt.Errorf("failed to render cards: %w", err)
	}
	return nil
}

// RenderHTML is Render into a string, for embedding into page templates.
func (r *Renderer) RenderHTML(records []models.Publication) (template.HTML, error) {
	var b strings.Builder
	if err := r.Render(&b, records); err != nil {
		return "", err
	}
	return template.HTML(b.String()), nil
}

// LoadError writes the message shown in a listing container when the
// catalog could not be loaded.
func (r *Renderer) LoadError(w io.Writer) error {
	return r.tmpl.ExecuteTemplate(w, "load-error", nil)
}

// LoadErrorHTML is LoadError into a string.
func (r *Renderer) LoadErrorHTML() template.HTML {
	var b strings.Builder
	_ = r.LoadError(&b)
	return template.HTML(b.String())
}

// Authors joins the author list for display.
func Authors(pub models.Publication) string {
	return strings.Join(pub.Authors, ", ")
}

// CategorySlug lowercases a category and joins its words with dashes, the
// form used by filter-button values.
func CategorySlug(category string) string {
	return strings.Join(strings.Fields(strings.ToLower(category)), "-")
}

// StaggerDelay is when the card at index becomes visible.
func StaggerDelay(index int) time.Duration {
	return StaggerStart + time.Duration(index)*StaggerStep
}

// ReadURL is the "read online" action for a publication.
func ReadURL(id string) string {
	return "/read/" + url.PathEscape(id)
}

// RequestURL is the "request download" action for a publication.
func RequestURL(id string) string {
	return "/request/" + url.PathEscape(id)
}
