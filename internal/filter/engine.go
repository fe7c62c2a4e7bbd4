// Package filter derives filtered views of the publications catalog from a
// facet selection or a free-text query.
package filter

import (
	"strconv"
	"strings"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

// FacetAll is the facet value that selects the whole catalog.
const FacetAll = "all"

// MatchesFacet reports whether a record matches a facet: the facet is a
// substring of the lowercased category, or equals the year exactly.
func MatchesFacet(pub models.Publication, facet string) bool {
	return strings.Contains(strings.ToLower(pub.Category), facet) ||
		strconv.Itoa(pub.Year) == facet
}

// MatchesQuery reports whether a lowercased query is a substring of the
// title, the abstract, any keyword or any author.
func MatchesQuery(pub models.Publication, term string) bool {
	if strings.Contains(strings.ToLower(pub.Title), term) ||
		strings.Contains(strings.ToLower(pub.Abstract), term) {
		return true
	}
	for _, kw := range pub.Keywords {
		if strings.Contains(strings.ToLower(kw), term) {
			return true
		}
	}
	for _, author := range pub.Authors {
		if strings.Contains(strings.ToLower(author), term) {
			return true
		}
	}
	return false
}

// ByFacet returns the records matching facet. FacetAll returns a copy of the
// whole catalog in its original order.
func ByFacet(records []models.Publication, facet string) []models.Publication {
	if facet == FacetAll {
		return clone(records)
	}
	return keep(records, func(pub models.Publication) bool {
		return MatchesFacet(pub, facet)
	})
}

// Search returns the records matching query, case-insensitively. A blank
// query returns the whole catalog.
func Search(records []models.Publication, query string) []models.Publication {
	if strings.TrimSpace(query) == "" {
		return clone(records)
	}
	term := strings.ToLower(query)
	return keep(records, func(pub models.Publication) bool {
		return MatchesQuery(pub, term)
	})
}

func keep(records []models.Publication, pred func(models.Publication) bool) []models.Publication {
	out := make([]models.Publication, 0, len(records))
	for _, pub := range records {
		if pred(pub) {
			out = append(out, pub)
		}
	}
	return out
}

func clone(records []models.Publication) []models.Publication {
	out := make([]models.Publication, len(records))
	copy(out, records)
	return out
}
