// Package storage holds short-lived navigation handoff slots that carry one
// publication record between views.
package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/byiringiro-albert/portfolio/internal/models"
)

// Slot names a handoff channel between two views.
type Slot string

const (
	// SlotCurrent carries a record from the listing to the preview view.
	SlotCurrent Slot = "currentPublication"
	// SlotRequested carries a record to the request-collection view.
	SlotRequested Slot = "requestedPublication"
)

// ErrSlotEmpty is returned when a token is unknown, expired or already taken.
var ErrSlotEmpty = errors.New("handoff slot empty")

// Store puts a record behind a token and hands it out once.
type Store interface {
	Put(ctx context.Context, slot Slot, pub models.Publication) (string, error)
	Take(ctx context.Context, slot Slot, token string) (models.Publication, error)
}

type entry struct {
	pub     models.Publication
	expires time.Time
}

// MemoryStore is an in-process Store.
type MemoryStore struct {
	entries map[string]entry
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
}

// New creates a memory store whose entries live for ttl.
func New(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

func key(slot Slot, token string) string {
	return string(slot) + ":" + token
}

// Put stores pub in slot and returns its token.
func (s *MemoryStore) Put(_ context.Context, slot Slot, pub models.Publication) (string, error) {
	token := uuid.NewString()

	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	for k, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, k)
		}
	}
	s.entries[key(slot, token)] = entry{pub: pub, expires: now.Add(s.ttl)}
	return token, nil
}

// Take returns and removes the record behind token.
func (s *MemoryStore) Take(_ context.Context, slot Slot, token string) (models.Publication, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	k := key(slot, token)
	e, ok := s.entries[k]
	if !ok {
		return models.Publication{}, ErrSlotEmpty
	}
	delete(s.entries, k)
	if s.now().After(e.expires) {
		return models.Publication{}, ErrSlotEmpty
	}
	return e.pub, nil
}

// Len returns the number of stored entries, expired or not.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
