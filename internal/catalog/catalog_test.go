package catalog

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

func TestOpen(t *testing.T) {
	path := writeFile(t, "publications.json", sampleJSON)

	c := Open(context.Background(), NewLoader(path))
	if c.Err() != nil {
		t.Fatalf("unexpected error: %v", c.Err())
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}

	pub, ok := c.Find("pub-2021-water")
	if !ok {
		t.Fatal("Find() did not return pub-2021-water")
	}
	if pub.Title != "Water Governance" {
		t.Errorf("Find() title = %q", pub.Title)
	}
	if _, ok := c.Find("missing"); ok {
		t.Error("Find() returned a record for an unknown id")
	}
}

func TestOpenFailureLeavesCatalogEmpty(t *testing.T) {
	c := Open(context.Background(), NewLoader(filepath.Join(t.TempDir(), "missing.json")))

	if !errors.Is(c.Err(), ErrLoad) {
		t.Fatalf("Err() = %v, want ErrLoad", c.Err())
	}
	if c.Len() != 0 || len(c.Records()) != 0 {
		t.Errorf("expected empty catalog, got %d records", c.Len())
	}
}

func TestFeatured(t *testing.T) {
	records := []models.Publication{
		{ID: "a", Featured: true},
		{ID: "b"},
		{ID: "c", Featured: true},
		{ID: "d", Featured: true},
		{ID: "e", Featured: true},
	}
	c := New(records)

	var got []string
	for _, pub := range c.Featured(3) {
		got = append(got, pub.ID)
	}
	if diff := cmp.Diff([]string{"a", "c", "d"}, got); diff != "" {
		t.Errorf("Featured() mismatch (-want +got):\n%s", diff)
	}
}
