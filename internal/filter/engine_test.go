package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

func testCatalog() []models.Publication {
	return []models.Publication{
		{
			ID:       "climate",
			Title:    "Climate Adaptation in Rural Rwanda",
			Authors:  []string{"Albert Byiringiro", "Jane Doe"},
			Year:     2020,
			Category: "Journal Article",
			Keywords: []string{"Agriculture", "resilience"},
			Abstract: "Smallholder farmers and drought.",
		},
		{
			ID:       "water",
			Title:    "Water Governance",
			Authors:  []string{"Albert Byiringiro"},
			Year:     2021,
			Category: "Book Chapter",
			Keywords: []string{"policy"},
			Abstract: "Institutions managing rivers.",
		},
		{
			ID:       "health",
			Title:    "Community Health Workers",
			Authors:  []string{"Marie Uwase"},
			Year:     2019,
			Category: "Conference Paper",
			Keywords: []string{"health systems"},
			Abstract: "A survey of 2021 deployments.",
		},
	}
}

func ids(records []models.Publication) []string {
	out := []string{}
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestByFacet(t *testing.T) {
	tests := []struct {
		name  string
		facet string
		want  []string
	}{
		{name: "all keeps order", facet: "all", want: []string{"climate", "water", "health"}},
		{name: "category substring", facet: "journal", want: []string{"climate"}},
		{name: "category substring matches several", facet: "a", want: []string{"climate", "water", "health"}},
		{name: "year exact", facet: "2021", want: []string{"water"}},
		{name: "year is not a substring match", facet: "202", want: []string{}},
		{name: "facet is not lowercased", facet: "Journal", want: []string{}},
		{name: "multiword category", facet: "book chapter", want: []string{"water"}},
		{name: "no match", facet: "thesis", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(ByFacet(testCatalog(), tt.facet))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ByFacet(%q) mismatch (-want +got):\n%s", tt.facet, diff)
			}
		})
	}
}

func TestByFacetScenario(t *testing.T) {
	catalog := []models.Publication{
		{ID: "first", Category: "Journal Article", Year: 2020},
		{ID: "second", Category: "Book Chapter", Year: 2021},
	}

	if diff := cmp.Diff([]string{"first"}, ids(ByFacet(catalog, "journal"))); diff != "" {
		t.Errorf("journal facet mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"second"}, ids(ByFacet(catalog, "2021"))); diff != "" {
		t.Errorf("2021 facet mismatch (-want +got):\n%s", diff)
	}
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty resets", query: "", want: []string{"climate", "water", "health"}},
		{name: "whitespace resets", query: "   ", want: []string{"climate", "water", "health"}},
		{name: "title", query: "governance", want: []string{"water"}},
		{name: "title case-insensitive", query: "RWANDA", want: []string{"climate"}},
		{name: "abstract", query: "rivers", want: []string{"water"}},
		{name: "abstract mentions a year", query: "2021", want: []string{"health"}},
		{name: "keyword", query: "agricul", want: []string{"climate"}},
		{name: "keyword with space", query: "health sys", want: []string{"health"}},
		{name: "author", query: "byiringiro", want: []string{"climate", "water"}},
		{name: "author partial", query: "uwa", want: []string{"health"}},
		{name: "no match", query: "quantum", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Search(testCatalog(), tt.query))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Search(%q) mismatch (-want +got):\n%s", tt.query, diff)
			}
		})
	}
}

func TestByFacetDoesNotAliasCatalog(t *testing.T) {
	catalog := testCatalog()
	got := ByFacet(catalog, FacetAll)
	got[0].Title = "changed"
	if catalog[0].Title == "changed" {
		t.Error("ByFacet(all) returned the catalog slice itself")
	}
}
