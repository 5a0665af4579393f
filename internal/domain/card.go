package domain

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Rarity is the scarcity tier printed on a card
type Rarity string

const (
	RarityCommon                  Rarity = "Common"
	RarityUncommon                Rarity = "Uncommon"
	RarityRare                    Rarity = "Rare"
	RarityHoloRare                Rarity = "Holo Rare"
	RarityDoubleRare              Rarity = "Double Rare"
	RarityUltraRare               Rarity = "Ultra Rare"
	RarityIllustrationRare        Rarity = "Illustration Rare"
	RaritySpecialIllustrationRare Rarity = "Special Illustration Rare"
	RarityHyperRare               Rarity = "Hyper Rare"
)

// rarityOrder lists every tier from most to least common.
var rarityOrder = []Rarity{
	RarityCommon,
	RarityUncommon,
	RarityRare,
	RarityHoloRare,
	RarityDoubleRare,
	RarityUltraRare,
	RarityIllustrationRare,
	RaritySpecialIllustrationRare,
	RarityHyperRare,
}

// rarityAliases maps alternate labels found in set data onto the canonical tier
var rarityAliases = map[string]Rarity{
	"Rare Holo":   RarityHoloRare,
	"Holo":        RarityHoloRare,
	"Rare Ultra":  RarityUltraRare,
	"Rare Secret": RarityHyperRare,
	"Secret Rare": RarityHyperRare,
}

// AllRarities returns every tier in ascending scarcity
func AllRarities() []Rarity {
	out := make([]Rarity, len(rarityOrder))
	copy(out, rarityOrder)
	return out
}

// Rank returns the position of the tier in ascending scarcity, or -1 when unknown
func (r Rarity) Rank() int {
	for i, tier := range rarityOrder {
		if tier == r {
			return i
		}
	}
	return -1
}

// IsValid reports whether r is one of the known tiers
func (r Rarity) IsValid() bool {
	return r.Rank() >= 0
}

// ParseRarity normalizes a free-form label ("holo_rare", "RARE HOLO") to a tier
func ParseRarity(label string) (Rarity, error) {
	normalized := strings.NewReplacer("_", " ", "-", " ").Replace(label)
	normalized = strings.Join(strings.Fields(normalized), " ")
	// Casers are stateful, so each call gets its own
	normalized = cases.Title(language.English).String(strings.ToLower(normalized))

	if alias, ok := rarityAliases[normalized]; ok {
		return alias, nil
	}

	r := Rarity(normalized)
	if !r.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownRarity, label)
	}
	return r, nil
}

// Card is a single collectible card in the catalog
type Card struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Rarity Rarity `json:"rarity"`
	Type   string `json:"type,omitempty"`
	Series string `json:"series"`
	Image  string `json:"image,omitempty"`
}
