package domain

import (
	"strings"
	"time"
	"unicode"
)

// CollectionEntry is one owned card and how many copies the user has pulled
type CollectionEntry struct {
	CardID string `json:"card_id"`
	Name   string `json:"name,omitempty"`
	Rarity Rarity `json:"rarity,omitempty"`
	Count  int    `json:"count"`
}

// CollectionSummary is an overview of a user's progress through the catalog
type CollectionSummary struct {
	UserID      string         `json:"user_id"`
	UniqueOwned int            `json:"unique_owned"`
	TotalCards  int            `json:"total_cards"`
	CatalogSize int            `json:"catalog_size"`
	ByRarity    map[Rarity]int `json:"by_rarity"`
	// CatalogByRarity is how many cards of each tier exist to be collected
	CatalogByRarity map[Rarity]int `json:"catalog_by_rarity"`
}

// OpeningRecord is a stored pack opening in a user's history
type OpeningRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	PackID    string    `json:"pack_id"`
	CardIDs   []string  `json:"card_ids"`
	Shortfall int       `json:"shortfall"`
	OpenedAt  time.Time `json:"opened_at"`
}

// NewOpeningRecord flattens an opening into its stored form
func NewOpeningRecord(o *PackOpening) OpeningRecord {
	ids := make([]string, len(o.Cards))
	for i, c := range o.Cards {
		ids[i] = c.ID
	}
	return OpeningRecord{
		ID:        o.ID,
		UserID:    o.UserID,
		PackID:    o.PackID,
		CardIDs:   ids,
		Shortfall: o.Shortfall,
		OpenedAt:  o.OpenedAt,
	}
}

// MaxUserIDLength bounds caller-supplied user ids
const MaxUserIDLength = 128

// ValidateUserID rejects empty, oversized, or whitespace-containing user ids
func ValidateUserID(userID string) error {
	if userID == "" || len(userID) > MaxUserIDLength || strings.IndexFunc(userID, unicode.IsSpace) >= 0 {
		return ErrInvalidUserID
	}
	return nil
}
