package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/PackOpener_Go/internal/domain"
)

const (
	upsertUserCardSQL = `
		INSERT INTO user_cards (user_id, card_id, count)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, card_id)
		DO UPDATE SET count = user_cards.count + EXCLUDED.count, updated_at = NOW()`

	insertOpeningSQL = `
		INSERT INTO pack_openings (opening_id, user_id, pack_id, card_ids, shortfall, opened_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	selectCollectionSQL = `
		SELECT card_id, count
		FROM user_cards
		WHERE user_id = $1 AND count > 0
		ORDER BY card_id`

	selectCountSQL = `
		SELECT count FROM user_cards WHERE user_id = $1 AND card_id = $2`

	selectOpeningsSQL = `
		SELECT opening_id, user_id, pack_id, card_ids, shortfall, opened_at
		FROM pack_openings
		WHERE user_id = $1
		ORDER BY opened_at DESC, opening_id
		LIMIT $2`
)

// CollectionRepository implements repository.Collection for PostgreSQL
type CollectionRepository struct {
	db *pgxpool.Pool
}

// NewCollectionRepository creates a new collection repository
func NewCollectionRepository(db *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{db: db}
}

// RecordOpening upserts the per-card counts and inserts the opening in one transaction
func (r *CollectionRepository) RecordOpening(ctx context.Context, record domain.OpeningRecord) error {
	openingID, err := uuid.Parse(record.ID)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgInvalidOpeningID, err)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	// Sorted ids keep row lock order stable across concurrent openings
	counts := tallyCards(record.CardIDs)
	for _, cardID := range sortedKeys(counts) {
		batch.Queue(upsertUserCardSQL, record.UserID, cardID, counts[cardID])
	}
	batch.Queue(insertOpeningSQL,
		openingID, record.UserID, record.PackID, record.CardIDs, record.Shortfall, record.OpenedAt)

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordOpening, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}

// GetCollection returns the user's owned cards ordered by card id
func (r *CollectionRepository) GetCollection(ctx context.Context, userID string) ([]domain.CollectionEntry, error) {
	rows, err := r.db.Query(ctx, selectCollectionSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCollection, err)
	}

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CollectionEntry, error) {
		var e domain.CollectionEntry
		err := row.Scan(&e.CardID, &e.Count)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanCollection, err)
	}
	return entries, nil
}

// GetCount returns how many copies of a card the user owns, zero when none
func (r *CollectionRepository) GetCount(ctx context.Context, userID, cardID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, selectCountSQL, userID, cardID).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToQueryCollection, err)
	}
	return count, nil
}

// ListOpenings returns the user's openings, newest first. A NULL limit means no limit.
func (r *CollectionRepository) ListOpenings(ctx context.Context, userID string, limit int) ([]domain.OpeningRecord, error) {
	var lim *int
	if limit > 0 {
		lim = &limit
	}

	rows, err := r.db.Query(ctx, selectOpeningsSQL, userID, lim)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryOpenings, err)
	}

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.OpeningRecord, error) {
		var (
			rec domain.OpeningRecord
			id  uuid.UUID
		)
		if err := row.Scan(&id, &rec.UserID, &rec.PackID, &rec.CardIDs, &rec.Shortfall, &rec.OpenedAt); err != nil {
			return rec, err
		}
		rec.ID = id.String()
		return rec, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanOpenings, err)
	}
	return records, nil
}

func tallyCards(cardIDs []string) map[string]int {
	counts := make(map[string]int, len(cardIDs))
	for _, id := range cardIDs {
		counts[id]++
	}
	return counts
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
