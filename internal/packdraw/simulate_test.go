package packdraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PackOpener_Go/internal/domain"
)

func TestSimulate(t *testing.T) {
	catalog := concat(
		makeCards("c", domain.RarityCommon, 6),
		makeCards("u", domain.RarityUncommon, 3),
		makeCards("r", domain.RarityRare, 1),
		makeCards("h", domain.RarityHoloRare, 1),
	)
	spec := packFor(catalog, domain.RarityDistribution{Common: 6, Uncommon: 3, RareSlot: 1}, 10)

	odds := Simulate(catalog, spec, 4000, NewSeededRNG(8))

	assert.Equal(t, "test-pack", odds.PackID)
	assert.Equal(t, 4000, odds.Trials)
	assert.InDelta(t, 10.0, odds.MeanCards, 1e-9)
	assert.InDelta(t, HoloRareChance, odds.HoloRareShare, 0.04)

	require.Len(t, odds.Rarities, 4)
	byRarity := make(map[domain.Rarity]domain.RarityOdds)
	for _, r := range odds.Rarities {
		byRarity[r.Rarity] = r
	}
	assert.Equal(t, domain.RarityCommon, odds.Rarities[0].Rarity)
	assert.InDelta(t, 6.0, byRarity[domain.RarityCommon].MeanPerPack, 1e-9)
	assert.InDelta(t, 1.0, byRarity[domain.RarityCommon].AtLeastOneRate, 1e-9)
	assert.InDelta(t, 3.0, byRarity[domain.RarityUncommon].MeanPerPack, 1e-9)
	assert.InDelta(t, 1.0,
		byRarity[domain.RarityRare].MeanPerPack+byRarity[domain.RarityHoloRare].MeanPerPack, 1e-9)
}

func TestSimulate_NoTrials(t *testing.T) {
	catalog := makeCards("c", domain.RarityCommon, 3)
	spec := packFor(catalog, domain.RarityDistribution{Common: 1}, 1)

	odds := Simulate(catalog, spec, 0, DefaultRNG())
	assert.Equal(t, 0, odds.Trials)
	assert.Empty(t, odds.Rarities)

	odds = Simulate(catalog, spec, -5, DefaultRNG())
	assert.Equal(t, 0, odds.Trials)
}
