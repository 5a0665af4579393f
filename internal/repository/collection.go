package repository

import (
	"context"

	"github.com/osse101/PackOpener_Go/internal/domain"
)

// Collection defines the interface for persisting the cards each user has pulled
type Collection interface {
	// RecordOpening adds one copy per drawn card and appends the opening to history atomically
	RecordOpening(ctx context.Context, record domain.OpeningRecord) error
	GetCollection(ctx context.Context, userID string) ([]domain.CollectionEntry, error)
	GetCount(ctx context.Context, userID, cardID string) (int, error)
	// ListOpenings returns the most recent openings first; limit <= 0 returns all
	ListOpenings(ctx context.Context, userID string, limit int) ([]domain.OpeningRecord, error)
}
