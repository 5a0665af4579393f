package packdraw

import "github.com/osse101/PackOpener_Go/internal/domain"

// Strategy is one candidate filter in a slot's fallback chain
type Strategy struct {
	Name   string
	Accept func(domain.Card) bool
}

// Slot is a rarity slot of a pack: how many picks it makes and, per pick,
// which strategies to try in order before skipping.
type Slot struct {
	Name  string
	Count func(domain.RarityDistribution) int
	Chain func(rng RandomSource) []Strategy
}

func rarityIs(tiers ...domain.Rarity) func(domain.Card) bool {
	return func(c domain.Card) bool {
		for _, t := range tiers {
			if c.Rarity == t {
				return true
			}
		}
		return false
	}
}

var (
	commonOnly   = Strategy{Name: StrategyCommon, Accept: rarityIs(domain.RarityCommon)}
	uncommonOnly = Strategy{Name: StrategyUncommon, Accept: rarityIs(domain.RarityUncommon)}
	rareOnly     = Strategy{Name: StrategyRare, Accept: rarityIs(domain.RarityRare)}
	holoOnly     = Strategy{Name: StrategyHoloRare, Accept: rarityIs(domain.RarityHoloRare)}
	rareOrHolo   = Strategy{Name: StrategyRareOrHolo, Accept: rarityIs(domain.RarityRare, domain.RarityHoloRare)}
	nonCommon    = Strategy{Name: StrategyNonCommon, Accept: func(c domain.Card) bool { return c.Rarity != domain.RarityCommon }}
	anyRemaining = Strategy{Name: StrategyAnyRemaining, Accept: func(domain.Card) bool { return true }}
)

// CommonChain tries Common, then anything left in the pool.
func CommonChain(RandomSource) []Strategy {
	return []Strategy{commonOnly, anyRemaining}
}

// UncommonChain tries Uncommon, then anything that is not Common.
func UncommonChain(RandomSource) []Strategy {
	return []Strategy{uncommonOnly, nonCommon}
}

// RareChain rolls once per pick: HoloRareChance of Holo Rare before Rare,
// otherwise Rare before Holo Rare. Either way it ends on any Rare or Holo Rare.
// The last step never matches a card the first two missed; it is kept as the
// explicit "either tier" fallback.
func RareChain(rng RandomSource) []Strategy {
	if rng.Float64() < HoloRareChance {
		return []Strategy{holoOnly, rareOnly, rareOrHolo}
	}
	return []Strategy{rareOnly, holoOnly, rareOrHolo}
}

// Slots returns the slot policy in fill order
func Slots() []Slot {
	return []Slot{
		{
			Name:  SlotCommon,
			Count: func(d domain.RarityDistribution) int { return d.Common },
			Chain: CommonChain,
		},
		{
			Name:  SlotUncommon,
			Count: func(d domain.RarityDistribution) int { return d.Uncommon },
			Chain: UncommonChain,
		},
		{
			Name:  SlotRare,
			Count: func(d domain.RarityDistribution) int { return d.RareSlot },
			Chain: RareChain,
		},
	}
}
