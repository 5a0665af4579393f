package packdraw

import (
	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/utils"
)

// Simulate fills trials packs from eligible and reports how often each rarity shows up.
// Only tiers present in the eligible pool are listed.
func Simulate(eligible []domain.Card, spec domain.PackSpec, trials int, rng RandomSource) domain.PackOdds {
	odds := domain.PackOdds{PackID: spec.ID, Trials: max(trials, 0)}
	if trials <= 0 {
		return odds
	}

	present := make(map[domain.Rarity]bool)
	for _, c := range eligible {
		present[c.Rarity] = true
	}

	totals := make(map[domain.Rarity]int)
	atLeastOne := make(map[domain.Rarity]int)
	var cards, rareSlotPicks, rareSlotHolo int

	seen := make(map[domain.Rarity]bool)
	for i := 0; i < trials; i++ {
		clear(seen)
		for _, p := range Fill(eligible, spec, rng) {
			cards++
			totals[p.Card.Rarity]++
			seen[p.Card.Rarity] = true
			if p.Slot == SlotRare {
				rareSlotPicks++
				if p.Card.Rarity == domain.RarityHoloRare {
					rareSlotHolo++
				}
			}
		}
		for r := range seen {
			atLeastOne[r]++
		}
	}

	odds.MeanCards = utils.Ratio(cards, trials)
	odds.HoloRareShare = utils.Ratio(rareSlotHolo, rareSlotPicks)
	for _, r := range domain.AllRarities() {
		if !present[r] {
			continue
		}
		odds.Rarities = append(odds.Rarities, domain.RarityOdds{
			Rarity:         r,
			MeanPerPack:    utils.Ratio(totals[r], trials),
			AtLeastOneRate: utils.Ratio(atLeastOne[r], trials),
		})
	}
	return odds
}
