package preview

import (
	"context"
	"errors"
	"log/slog"

	"github.com/byiringiro-albert/portfolio/internal/models"
	"github.com/byiringiro-albert/portfolio/internal/storage"
)

// ErrNotFound means no publication resolved for a preview.
var ErrNotFound = errors.New("publication not found")

// Handoff yields the record handed over by the listing view.
type Handoff interface {
	Take(ctx context.Context, slot storage.Slot, token string) (models.Publication, error)
}

// CatalogLoader loads a fresh copy of the catalog.
type CatalogLoader interface {
	Load(ctx context.Context) ([]models.Publication, error)
}

// Resolver decides which publication a new preview session shows.
type Resolver struct {
	handoff Handoff
	loader  CatalogLoader
}

// NewResolver creates a resolver over a handoff store and a catalog loader.
func NewResolver(handoff Handoff, loader CatalogLoader) *Resolver {
	return &Resolver{handoff: handoff, loader: loader}
}

// Resolve prefers the record behind a handoff token and otherwise looks id up
// in a freshly loaded catalog. It returns ErrNotFound when neither yields a
// publication.
func (r *Resolver) Resolve(ctx context.Context, token, id string) (models.Publication, error) {
	if token != "" {
		pub, err := r.handoff.Take(ctx, storage.SlotCurrent, token)
		switch {
		case err == nil:
			return pub, nil
		case errors.Is(err, storage.ErrSlotEmpty):
			slog.Debug("Handoff token expired or used, falling back to catalog", "id", id)
		default:
			slog.Warn("Handoff lookup failed, falling back to catalog", "id", id, "err", err)
		}
	}

	if id == "" {
		return models.Publication{}, ErrNotFound
	}

	records, err := r.loader.Load(ctx)
	if err != nil {
		slog.Error("Error loading publication", "id", id, "err", err)
		return models.Publication{}, ErrNotFound
	}
	for _, pub := range records {
		if pub.ID == id {
			return pub, nil
		}
	}
	return models.Publication{}, ErrNotFound
}
