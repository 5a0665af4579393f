package collection

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/osse101/PackOpener_Go/internal/domain"
)

// MemoryRepository keeps collections in process memory. Contents are lost on restart.
type MemoryRepository struct {
	mu       sync.RWMutex
	counts   map[string]map[string]int
	openings map[string][]domain.OpeningRecord
}

// NewMemoryRepository creates an empty in-memory collection store
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		counts:   make(map[string]map[string]int),
		openings: make(map[string][]domain.OpeningRecord),
	}
}

// RecordOpening increments each drawn card and appends the opening to the user's history
func (r *MemoryRepository) RecordOpening(ctx context.Context, record domain.OpeningRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	owned, ok := r.counts[record.UserID]
	if !ok {
		owned = make(map[string]int)
		r.counts[record.UserID] = owned
	}
	for _, id := range record.CardIDs {
		owned[id]++
	}

	record.CardIDs = slices.Clone(record.CardIDs)
	r.openings[record.UserID] = append(r.openings[record.UserID], record)
	return nil
}

// GetCollection returns the user's owned cards ordered by card id
func (r *MemoryRepository) GetCollection(_ context.Context, userID string) ([]domain.CollectionEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := r.counts[userID]
	entries := make([]domain.CollectionEntry, 0, len(owned))
	for id, n := range owned {
		entries = append(entries, domain.CollectionEntry{CardID: id, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CardID < entries[j].CardID })
	return entries, nil
}

// GetCount returns how many copies of a card the user owns
func (r *MemoryRepository) GetCount(_ context.Context, userID, cardID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.counts[userID][cardID], nil
}

// ListOpenings returns the user's openings, newest first
func (r *MemoryRepository) ListOpenings(_ context.Context, userID string, limit int) ([]domain.OpeningRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	history := r.openings[userID]
	n := len(history)
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]domain.OpeningRecord, 0, n)
	for i := len(history) - 1; i >= 0 && len(out) < n; i-- {
		rec := history[i]
		rec.CardIDs = slices.Clone(rec.CardIDs)
		out = append(out, rec)
	}
	return out, nil
}
