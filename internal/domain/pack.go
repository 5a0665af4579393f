package domain

import "time"

// RarityDistribution holds how many picks each rarity slot attempts per pack
type RarityDistribution struct {
	Common   int `json:"common"`
	Uncommon int `json:"uncommon"`
	RareSlot int `json:"rare_slot"`
}

// Total returns the number of slot picks before top-up
func (d RarityDistribution) Total() int {
	return d.Common + d.Uncommon + d.RareSlot
}

// PackSpec describes one purchasable booster pack
type PackSpec struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Series             string             `json:"series,omitempty"`
	CardsPerPack       int                `json:"cards_per_pack"`
	RarityDistribution RarityDistribution `json:"rarity_distribution"`
	PossibleCards      []string           `json:"possible_cards"`
}

// RevealStep is when a drawn card is turned face up, relative to the start of the reveal
type RevealStep struct {
	Index  int           `json:"index"`
	CardID string        `json:"card_id"`
	Offset time.Duration `json:"offset_ns"`
}

// PackOpening is the outcome of opening one pack for a user
type PackOpening struct {
	ID             string        `json:"id"`
	UserID         string        `json:"user_id"`
	PackID         string        `json:"pack_id"`
	Cards          []Card        `json:"cards"`
	Reveal         []RevealStep  `json:"reveal"`
	RevealDuration time.Duration `json:"reveal_duration_ns"`
	Shortfall      int           `json:"shortfall"` // cards_per_pack minus cards drawn
	OpenedAt       time.Time     `json:"opened_at"`
}

// RarityOdds is the simulated frequency of one rarity in a pack
type RarityOdds struct {
	Rarity         Rarity  `json:"rarity"`
	MeanPerPack    float64 `json:"mean_per_pack"`
	AtLeastOneRate float64 `json:"at_least_one_rate"`
}

// PackOdds summarizes a Monte Carlo run over a pack
type PackOdds struct {
	PackID        string       `json:"pack_id"`
	Trials        int          `json:"trials"`
	MeanCards     float64      `json:"mean_cards"`
	HoloRareShare float64      `json:"holo_rare_share"` // of rare-slot picks
	Rarities      []RarityOdds `json:"rarities"`
}

// ReloadReport describes the catalog and pack registry after a reload
type ReloadReport struct {
	CatalogVersion uint64              `json:"catalog_version"`
	Cards          int                 `json:"cards"`
	Packs          int                 `json:"packs"`
	UnknownCards   map[string][]string `json:"unknown_cards,omitempty"` // pack id to missing card ids
}
