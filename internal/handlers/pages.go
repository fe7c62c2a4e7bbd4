package handlers

import (
	"html/template"
	"log/slog"
	"net/http"
	"slices"
	"strconv"

	"github.com/byiringiro-albert/portfolio/internal/filter"
	"github.com/byiringiro-albert/portfolio/internal/models"
)

// Facet is one filter button on the listing page.
type Facet struct {
	Value  string
	Label  string
	Active bool
}

var categoryFacets = []Facet{
	{Value: filter.FacetAll, Label: "All"},
	{Value: "journal", Label: "Journal Articles"},
	{Value: "book", Label: "Book Chapters"},
	{Value: "conference", Label: "Conference Papers"},
}

type homePage struct {
	Title    string
	Featured template.HTML
}

type listingPage struct {
	Title  string
	Facets []Facet
	Query  string
	Grid   template.HTML
}

func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	data := homePage{Title: "Home"}
	if h.catalog.Err() != nil {
		data.Featured = h.renderer.LoadErrorHTML()
	} else {
		html, err := h.renderer.RenderHTML(h.catalog.Featured(FeaturedLimit))
		if err != nil {
			slog.Error("Unable to render featured publications", "err", err)
			html = h.renderer.LoadErrorHTML()
		}
		data.Featured = html
	}
	h.writePage(w, "index", http.StatusOK, data)
}

func (h *Handler) HandlePublications(w http.ResponseWriter, r *http.Request) {
	view := filter.NewView(h.catalog.Records())
	results := view.ApplyRawQuery(r.URL.RawQuery)

	data := listingPage{
		Title:  "Publications",
		Facets: h.facets(view),
		Query:  view.Query,
	}
	if h.catalog.Err() != nil {
		data.Grid = h.renderer.LoadErrorHTML()
	} else {
		html, err := h.renderer.RenderHTML(results)
		if err != nil {
			slog.Error("Unable to render publications", "err", err)
			html = h.renderer.LoadErrorHTML()
		}
		data.Grid = html
	}
	h.writePage(w, "publications", http.StatusOK, data)
}

// HandleCards renders only the card fragment for in-place updates of the grid.
func (h *Handler) HandleCards(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if h.catalog.Err() != nil {
		if err := h.renderer.LoadError(w); err != nil {
			slog.Error("Unable to render load error", "err", err)
		}
		return
	}

	results := filter.NewView(h.catalog.Records()).ApplyRawQuery(r.URL.RawQuery)
	if err := h.renderer.Render(w, results); err != nil {
		slog.Error("Unable to render cards", "err", err)
	}
}

func (h *Handler) HandleAPIPublications(w http.ResponseWriter, r *http.Request) {
	if h.catalog.Err() != nil {
		h.writeError(w, "Unable to load publications. Please try again later.", http.StatusServiceUnavailable)
		return
	}
	results := filter.NewView(h.catalog.Records()).ApplyRawQuery(r.URL.RawQuery)
	if results == nil {
		results = []models.Publication{}
	}
	h.writeJSON(w, models.CatalogDocument{Publications: results})
}

// facets lists the category buttons followed by one button per catalog year,
// newest first, marking the active one. A search applied after the facet
// leaves no button active.
func (h *Handler) facets(view *filter.View) []Facet {
	active := view.Facet
	if view.Last == filter.ActionSearch {
		active = ""
	}
	var years []int
	for _, pub := range h.catalog.Records() {
		if !slices.Contains(years, pub.Year) {
			years = append(years, pub.Year)
		}
	}
	slices.Sort(years)
	slices.Reverse(years)

	out := slices.Clone(categoryFacets)
	for _, y := range years {
		v := strconv.Itoa(y)
		out = append(out, Facet{Value: v, Label: v})
	}
	for i := range out {
		out[i].Active = out[i].Value == active
	}
	return out
}
