// Package catalog loads the read-only publications catalog and holds it in memory.
package catalog

import (
	"context"
	"log/slog"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

// Catalog is the in-memory result of a single load. It is either fully
// populated or empty with Err set.
type Catalog struct {
	records []models.Publication
	byID    map[string]int
	err     error
}

// New wraps already loaded records.
func New(records []models.Publication) *Catalog {
	c := &Catalog{
		records: records,
		byID:    make(map[string]int, len(records)),
	}
	for i, rec := range records {
		c.byID[rec.ID] = i
	}
	return c
}

// Open loads the catalog once. A failed load is not retried; the returned
// catalog is empty and reports the failure through Err.
func Open(ctx context.Context, loader *Loader) *Catalog {
	records, err := loader.Load(ctx)
	if err != nil {
		slog.Error("Error loading publications", "source", loader.Source(), "err", err)
		c := New(nil)
		c.err = err
		return c
	}
	slog.Info("Publications loaded", "source", loader.Source(), "count", len(records))
	return New(records)
}

// Err returns the load failure, if any.
func (c *Catalog) Err() error {
	return c.err
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Records returns the records in catalog order. Callers must not modify them.
func (c *Catalog) Records() []models.Publication {
	return c.records
}

// Find looks a record up by identifier.
func (c *Catalog) Find(id string) (models.Publication, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Publication{}, false
	}
	return c.records[i], true
}

// Featured returns up to limit featured records in catalog order.
func (c *Catalog) Featured(limit int) []models.Publication {
	var featured []models.Publication
	for _, rec := range c.records {
		if len(featured) == limit {
			break
		}
		if rec.Featured {
			featured = append(featured, rec)
		}
	}
	return featured
}
