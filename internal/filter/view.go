package filter

import (
	"net/url"
	"strings"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

// Action names the last operation applied to a View. The zero value means
// nothing has been applied yet.
type Action int

const (
	ActionFacet Action = iota + 1
	ActionSearch
)

// View is the current filter state over a catalog. Facet filtering and search
// each replace the working set; the most recent one wins and the two are
// never intersected.
type View struct {
	catalog []models.Publication
	current []models.Publication
	Facet   string
	Query   string
	Last    Action
}

// NewView starts with the whole catalog selected.
func NewView(catalog []models.Publication) *View {
	return &View{
		catalog: catalog,
		current: clone(catalog),
		Facet:   FacetAll,
	}
}

// ApplyFacet replaces the working set with the facet's matches.
func (v *View) ApplyFacet(facet string) []models.Publication {
	v.Facet = facet
	v.Last = ActionFacet
	v.current = ByFacet(v.catalog, facet)
	return v.current
}

// ApplySearch replaces the working set with the query's matches.
func (v *View) ApplySearch(query string) []models.Publication {
	v.Query = query
	v.Last = ActionSearch
	v.current = Search(v.catalog, query)
	return v.current
}

// Results returns the working set.
func (v *View) Results() []models.Publication {
	return v.current
}

// Query parameter names understood by ApplyRawQuery.
const (
	ParamFacet = "filter"
	ParamQuery = "q"
)

// ApplyRawQuery replays filter and q parameters in the order they appear in
// a raw URL query string, so the parameter written last decides the result.
func (v *View) ApplyRawQuery(rawQuery string) []models.Publication {
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(key)
		if err != nil {
			continue
		}
		value, err = url.QueryUnescape(value)
		if err != nil {
			continue
		}
		switch key {
		case ParamFacet:
			v.ApplyFacet(value)
		case ParamQuery:
			v.ApplySearch(value)
		}
	}
	return v.current
}
