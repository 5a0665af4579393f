package packdraw

import (
	"fmt"

	"github.com/osse101/PackOpener_Go/internal/domain"
)

// scriptedRNG replays fixed sequences so fallback paths are reproducible
type scriptedRNG struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *scriptedRNG) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *scriptedRNG) IntN(n int) int {
	if len(r.ints) == 0 || n <= 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

func makeCards(prefix string, rarity domain.Rarity, n int) []domain.Card {
	cards := make([]domain.Card, n)
	for i := range n {
		cards[i] = domain.Card{
			ID:     fmt.Sprintf("%s-%d", prefix, i+1),
			Name:   fmt.Sprintf("%s %d", rarity, i+1),
			Rarity: rarity,
			Series: "base",
		}
	}
	return cards
}

func concat(groups ...[]domain.Card) []domain.Card {
	var out []domain.Card
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func cardIDs(cards []domain.Card) []string {
	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}
	return ids
}

func packFor(cards []domain.Card, dist domain.RarityDistribution, perPack int) domain.PackSpec {
	return domain.PackSpec{
		ID:                 "test-pack",
		Name:               "Test Pack",
		CardsPerPack:       perPack,
		RarityDistribution: dist,
		PossibleCards:      cardIDs(cards),
	}
}

func countByRarity(cards []domain.Card) map[domain.Rarity]int {
	counts := make(map[domain.Rarity]int)
	for _, c := range cards {
		counts[c.Rarity]++
	}
	return counts
}
