package collection

import (
	"context"
	"fmt"
	"sort"

	"github.com/osse101/PackOpener_Go/internal/catalog"
	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/logger"
	"github.com/osse101/PackOpener_Go/internal/metrics"
	"github.com/osse101/PackOpener_Go/internal/repository"
	"github.com/osse101/PackOpener_Go/internal/utils"
)

// Service defines the collection business logic
type Service interface {
	// Record adds the opened cards to the user's collection and history
	Record(ctx context.Context, opening *domain.PackOpening) error
	GetCollection(ctx context.Context, userID string) ([]domain.CollectionEntry, error)
	Summary(ctx context.Context, userID string) (*domain.CollectionSummary, error)
	// History returns recent openings, newest first
	History(ctx context.Context, userID string, limit int) ([]domain.OpeningRecord, error)
}

type service struct {
	repo     repository.Collection
	catalogs catalog.Provider
	backend  string
}

// NewService creates a new collection service. backend labels the storage in metrics.
func NewService(repo repository.Collection, catalogs catalog.Provider, backend string) Service {
	return &service{
		repo:     repo,
		catalogs: catalogs,
		backend:  backend,
	}
}

func (s *service) Record(ctx context.Context, opening *domain.PackOpening) error {
	if err := domain.ValidateUserID(opening.UserID); err != nil {
		return err
	}

	log := logger.FromContext(ctx)
	err := s.repo.RecordOpening(ctx, domain.NewOpeningRecord(opening))
	metrics.CollectionRecords.WithLabelValues(s.backend, metrics.StatusLabel(err)).Inc()
	if err != nil {
		log.Error(LogMsgRecordFailed, LogFieldOpeningID, opening.ID, "error", err)
		return fmt.Errorf("%s: %w", ErrContextFailedToRecordOpening, err)
	}

	log.Debug(LogMsgOpeningRecorded,
		LogFieldUserID, opening.UserID,
		LogFieldPackID, opening.PackID,
		LogFieldOpeningID, opening.ID,
		LogFieldCards, len(opening.Cards))
	return nil
}

// GetCollection returns owned cards with catalog names, ordered by rarity then card id.
// Cards no longer in the catalog are kept without a name and sort last.
func (s *service) GetCollection(ctx context.Context, userID string) ([]domain.CollectionEntry, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}

	entries, err := s.repo.GetCollection(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetCollection, err)
	}

	cat := s.catalogs.Current()
	for i := range entries {
		card, err := cat.Get(entries[i].CardID)
		if err != nil {
			logger.FromContext(ctx).Debug(LogMsgCardMissingFromCatalog, LogFieldCardID, entries[i].CardID)
			continue
		}
		entries[i].Name = card.Name
		entries[i].Rarity = card.Rarity
	}

	sort.SliceStable(entries, func(i, j int) bool {
		ri, rj := sortRank(entries[i].Rarity), sortRank(entries[j].Rarity)
		if ri != rj {
			return ri < rj
		}
		return entries[i].CardID < entries[j].CardID
	})
	return entries, nil
}

func (s *service) Summary(ctx context.Context, userID string) (*domain.CollectionSummary, error) {
	entries, err := s.GetCollection(ctx, userID)
	if err != nil {
		return nil, err
	}

	cat := s.catalogs.Current()
	summary := &domain.CollectionSummary{
		UserID:          userID,
		CatalogSize:     cat.Len(),
		ByRarity:        make(map[domain.Rarity]int),
		CatalogByRarity: cat.CountByRarity(),
	}
	for _, e := range entries {
		if e.Count <= 0 {
			continue
		}
		summary.UniqueOwned++
		summary.TotalCards += e.Count
		if e.Rarity != "" {
			summary.ByRarity[e.Rarity]++
		}
	}
	return summary, nil
}

func (s *service) History(ctx context.Context, userID string, limit int) ([]domain.OpeningRecord, error) {
	if err := domain.ValidateUserID(userID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	limit = utils.ClampInt(limit, 1, MaxHistoryLimit)

	records, err := s.repo.ListOpenings(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListOpenings, err)
	}
	return records, nil
}

func sortRank(r domain.Rarity) int {
	if rank := r.Rank(); rank >= 0 {
		return rank
	}
	return len(domain.AllRarities())
}
