package catalog

import (
	"fmt"
	"sort"

	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/packdraw"
)

// Catalog is an immutable, indexed set of cards
type Catalog struct {
	cards   []domain.Card
	byID    map[string]int
	version uint64
}

// New indexes cards. Card ids must be unique and every rarity must be a known tier.
func New(cards []domain.Card) (*Catalog, error) {
	c := &Catalog{
		cards: make([]domain.Card, 0, len(cards)),
		byID:  make(map[string]int, len(cards)),
	}
	for _, card := range cards {
		if card.ID == "" {
			return nil, fmt.Errorf("%w: card without id", domain.ErrInvalidCatalog)
		}
		if !card.Rarity.IsValid() {
			return nil, fmt.Errorf("%w: card %s: %w", domain.ErrInvalidCatalog, card.ID, domain.ErrUnknownRarity)
		}
		if _, dup := c.byID[card.ID]; dup {
			return nil, fmt.Errorf("%w: %s: %s", domain.ErrInvalidCatalog, ErrContextDuplicateCardID, card.ID)
		}
		c.byID[card.ID] = len(c.cards)
		c.cards = append(c.cards, card)
	}
	return c, nil
}

// All returns every card in load order. The slice is shared and must not be modified.
func (c *Catalog) All() []domain.Card {
	return c.cards
}

// Len returns the number of cards
func (c *Catalog) Len() int {
	return len(c.cards)
}

// Version identifies this load of the catalog; it changes on every reload
func (c *Catalog) Version() uint64 {
	return c.version
}

// Get looks up a card by id
func (c *Catalog) Get(id string) (domain.Card, error) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Card{}, fmt.Errorf("%w: %s", domain.ErrCardNotFound, id)
	}
	return c.cards[i], nil
}

// Has reports whether a card id exists
func (c *Catalog) Has(id string) bool {
	_, ok := c.byID[id]
	return ok
}

// Eligible returns the cards referenced by ids, in catalog order
func (c *Catalog) Eligible(ids []string) []domain.Card {
	return packdraw.Eligible(c.cards, ids)
}

// Missing returns the ids not present in the catalog, in input order
func (c *Catalog) Missing(ids []string) []string {
	var missing []string
	for _, id := range ids {
		if !c.Has(id) {
			missing = append(missing, id)
		}
	}
	return missing
}

// Series returns the distinct series names, sorted
func (c *Catalog) Series() []string {
	seen := make(map[string]struct{})
	for _, card := range c.cards {
		seen[card.Series] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// BySeries returns the cards of one series, in catalog order
func (c *Catalog) BySeries(series string) []domain.Card {
	var out []domain.Card
	for _, card := range c.cards {
		if card.Series == series {
			out = append(out, card)
		}
	}
	return out
}

// CountByRarity tallies the catalog per tier
func (c *Catalog) CountByRarity() map[domain.Rarity]int {
	counts := make(map[domain.Rarity]int)
	for _, card := range c.cards {
		counts[card.Rarity]++
	}
	return counts
}
