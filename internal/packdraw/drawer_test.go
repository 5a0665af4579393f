package packdraw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/PackOpener_Go/internal/domain"
)

func TestOpen_ConcreteScenario(t *testing.T) {
	commons := makeCards("c", domain.RarityCommon, 6)
	uncommons := makeCards("u", domain.RarityUncommon, 3)
	rare := makeCards("r", domain.RarityRare, 1)
	holo := makeCards("h", domain.RarityHoloRare, 1)
	catalog := concat(commons, uncommons, rare, holo)
	spec := packFor(catalog, domain.RarityDistribution{Common: 6, Uncommon: 3, RareSlot: 1}, 10)

	rng := NewSeededRNG(7)
	for i := 0; i < 200; i++ {
		result := Open(catalog, spec, rng)
		require.Len(t, result, 10)

		ids := cardIDs(result)
		for _, c := range concat(commons, uncommons) {
			assert.Contains(t, ids, c.ID)
		}

		counts := countByRarity(result)
		assert.Equal(t, 6, counts[domain.RarityCommon])
		assert.Equal(t, 3, counts[domain.RarityUncommon])
		assert.Equal(t, 1, counts[domain.RarityRare]+counts[domain.RarityHoloRare])
	}
}

func TestOpen_NoDuplicates(t *testing.T) {
	catalog := concat(
		makeCards("c", domain.RarityCommon, 40),
		makeCards("u", domain.RarityUncommon, 20),
		makeCards("r", domain.RarityRare, 10),
		makeCards("h", domain.RarityHoloRare, 5),
		makeCards("ur", domain.RarityUltraRare, 5),
	)
	spec := packFor(catalog, domain.RarityDistribution{Common: 5, Uncommon: 3, RareSlot: 1}, 10)

	rng := NewSeededRNG(99)
	for i := 0; i < 500; i++ {
		result := Open(catalog, spec, rng)
		require.Len(t, result, 10)

		seen := make(map[string]bool)
		for _, c := range result {
			assert.False(t, seen[c.ID], "duplicate card %s", c.ID)
			seen[c.ID] = true
		}
	}
}

func TestOpen_LengthBoundAndMembership(t *testing.T) {
	catalog := concat(
		makeCards("c", domain.RarityCommon, 8),
		makeCards("u", domain.RarityUncommon, 4),
		makeCards("r", domain.RarityRare, 2),
		makeCards("h", domain.RarityHoloRare, 2),
	)

	tests := []struct {
		name     string
		possible []string
		perPack  int
		dist     domain.RarityDistribution
		expected int
	}{
		{
			name:     "large pool fills exactly",
			possible: cardIDs(catalog),
			perPack:  10,
			dist:     domain.RarityDistribution{Common: 6, Uncommon: 3, RareSlot: 1},
			expected: 10,
		},
		{
			name:     "subset smaller than pack",
			possible: []string{"c-1", "c-2", "u-1", "r-1"},
			perPack:  10,
			dist:     domain.RarityDistribution{Common: 6, Uncommon: 3, RareSlot: 1},
			expected: 4,
		},
		{
			name:     "unknown ids are ignored",
			possible: []string{"c-1", "missing-1", "h-2", "missing-2"},
			perPack:  5,
			dist:     domain.RarityDistribution{Common: 1, Uncommon: 1, RareSlot: 1},
			expected: 2,
		},
		{
			name:     "slot counts above pack size are capped",
			possible: cardIDs(catalog),
			perPack:  4,
			dist:     domain.RarityDistribution{Common: 6, Uncommon: 3, RareSlot: 1},
			expected: 4,
		},
		{
			name:     "zero slots tops up",
			possible: cardIDs(catalog),
			perPack:  5,
			dist:     domain.RarityDistribution{},
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := domain.PackSpec{
				ID:                 "bound",
				CardsPerPack:       tt.perPack,
				RarityDistribution: tt.dist,
				PossibleCards:      tt.possible,
			}
			eligible := make(map[string]bool)
			for _, c := range Eligible(catalog, tt.possible) {
				eligible[c.ID] = true
			}

			rng := NewSeededRNG(3)
			for i := 0; i < 50; i++ {
				result := Open(catalog, spec, rng)
				assert.Len(t, result, tt.expected)
				for _, c := range result {
					assert.True(t, eligible[c.ID], "card %s is not eligible", c.ID)
				}
			}
		})
	}
}

func TestOpen_DegeneratePool(t *testing.T) {
	catalog := concat(
		makeCards("c", domain.RarityCommon, 1),
		makeCards("h", domain.RarityHoloRare, 1),
		makeCards("extra", domain.RarityCommon, 5),
	)
	spec := domain.PackSpec{
		ID:                 "tiny",
		CardsPerPack:       10,
		RarityDistribution: domain.RarityDistribution{Common: 6, Uncommon: 3, RareSlot: 1},
		PossibleCards:      []string{"c-1", "h-1"},
	}

	result := Open(catalog, spec, NewSeededRNG(1))
	require.Len(t, result, 2)
	assert.ElementsMatch(t, []string{"c-1", "h-1"}, cardIDs(result))
}

func TestOpen_EmptyPool(t *testing.T) {
	catalog := makeCards("c", domain.RarityCommon, 3)

	t.Run("no eligible cards", func(t *testing.T) {
		spec := domain.PackSpec{
			CardsPerPack:       5,
			RarityDistribution: domain.RarityDistribution{Common: 5},
			PossibleCards:      []string{"nope"},
		}
		assert.Empty(t, Open(catalog, spec, DefaultRNG()))
	})

	t.Run("empty catalog", func(t *testing.T) {
		spec := packFor(catalog, domain.RarityDistribution{Common: 1}, 1)
		assert.Empty(t, Open(nil, spec, DefaultRNG()))
	})
}

func TestFill_CommonFallback(t *testing.T) {
	catalog := concat(
		makeCards("u", domain.RarityUncommon, 2),
		makeCards("r", domain.RarityRare, 2),
		makeCards("h", domain.RarityHoloRare, 2),
	)
	spec := packFor(catalog, domain.RarityDistribution{Common: 3}, 3)

	picks := Fill(catalog, spec, NewSeededRNG(5))
	require.Len(t, picks, 3)
	for _, p := range picks {
		assert.Equal(t, SlotCommon, p.Slot)
		assert.Equal(t, StrategyAnyRemaining, p.Strategy)
		assert.NotEqual(t, domain.RarityCommon, p.Card.Rarity)
	}
}

func TestFill_UncommonFallback(t *testing.T) {
	t.Run("falls back to non-common", func(t *testing.T) {
		catalog := concat(
			makeCards("c", domain.RarityCommon, 3),
			makeCards("r", domain.RarityRare, 1),
		)
		spec := packFor(catalog, domain.RarityDistribution{Uncommon: 1}, 1)

		picks := Fill(catalog, spec, &scriptedRNG{})
		require.Len(t, picks, 1)
		assert.Equal(t, "r-1", picks[0].Card.ID)
		assert.Equal(t, SlotUncommon, picks[0].Slot)
		assert.Equal(t, StrategyNonCommon, picks[0].Strategy)
	})

	t.Run("skips when only commons remain", func(t *testing.T) {
		catalog := makeCards("c", domain.RarityCommon, 3)
		spec := packFor(catalog, domain.RarityDistribution{Uncommon: 1}, 1)

		picks := Fill(catalog, spec, &scriptedRNG{})
		require.Len(t, picks, 1)
		assert.Equal(t, SlotTopUp, picks[0].Slot)
		assert.Equal(t, domain.RarityCommon, picks[0].Card.Rarity)
	})
}

func TestFill_RareSlot(t *testing.T) {
	rares := makeCards("r", domain.RarityRare, 2)
	holos := makeCards("h", domain.RarityHoloRare, 2)
	ultras := makeCards("ur", domain.RarityUltraRare, 2)

	tests := []struct {
		name             string
		roll             float64
		pool             []domain.Card
		expectedSlot     string
		expectedStrategy string
		expectedRarity   domain.Rarity
	}{
		{"holo roll picks holo", 0.1, concat(rares, holos), SlotRare, StrategyHoloRare, domain.RarityHoloRare},
		{"holo roll falls back to rare", 0.1, rares, SlotRare, StrategyRare, domain.RarityRare},
		{"rare roll picks rare", 0.9, concat(rares, holos), SlotRare, StrategyRare, domain.RarityRare},
		{"rare roll falls back to holo", 0.9, holos, SlotRare, StrategyHoloRare, domain.RarityHoloRare},
		{"roll at threshold targets rare", HoloRareChance, concat(rares, holos), SlotRare, StrategyRare, domain.RarityRare},
		{"no rares skips to top-up", 0.1, ultras, SlotTopUp, StrategyAnyRemaining, domain.RarityUltraRare},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := packFor(tt.pool, domain.RarityDistribution{RareSlot: 1}, 1)
			picks := Fill(tt.pool, spec, &scriptedRNG{floats: []float64{tt.roll}})

			require.Len(t, picks, 1)
			assert.Equal(t, tt.expectedSlot, picks[0].Slot)
			assert.Equal(t, tt.expectedStrategy, picks[0].Strategy)
			assert.Equal(t, tt.expectedRarity, picks[0].Card.Rarity)
		})
	}
}

func TestFill_ExtraTiersOnlyViaFallbacks(t *testing.T) {
	catalog := concat(
		makeCards("hr", domain.RarityHyperRare, 2),
		makeCards("sir", domain.RaritySpecialIllustrationRare, 2),
	)
	spec := packFor(catalog, domain.RarityDistribution{Uncommon: 1, RareSlot: 1}, 3)

	picks := Fill(catalog, spec, NewSeededRNG(11))
	require.Len(t, picks, 3)
	assert.Equal(t, SlotUncommon, picks[0].Slot)
	assert.Equal(t, StrategyNonCommon, picks[0].Strategy)
	// the rare slot finds neither Rare nor Holo Rare
	assert.Equal(t, SlotTopUp, picks[1].Slot)
	assert.Equal(t, SlotTopUp, picks[2].Slot)
}

func TestFill_SlotOrder(t *testing.T) {
	catalog := concat(
		makeCards("c", domain.RarityCommon, 4),
		makeCards("u", domain.RarityUncommon, 4),
		makeCards("r", domain.RarityRare, 4),
	)
	spec := packFor(catalog, domain.RarityDistribution{Common: 2, Uncommon: 1, RareSlot: 1}, 6)

	picks := Fill(catalog, spec, NewSeededRNG(21))
	require.Len(t, picks, 6)

	slots := make([]string, len(picks))
	for i, p := range picks {
		slots[i] = p.Slot
	}
	assert.Equal(t, []string{SlotCommon, SlotCommon, SlotUncommon, SlotRare, SlotTopUp, SlotTopUp}, slots)
}

func TestShuffle_OrderOnly(t *testing.T) {
	catalog := concat(
		makeCards("c", domain.RarityCommon, 5),
		makeCards("u", domain.RarityUncommon, 3),
		makeCards("r", domain.RarityRare, 2),
	)
	spec := packFor(catalog, domain.RarityDistribution{Common: 4, Uncommon: 2, RareSlot: 1}, 8)

	rng := &scriptedRNG{floats: []float64{0.5}, ints: []int{3, 1, 4, 1, 5, 9, 2, 6}}
	picks := Fill(catalog, spec, rng)

	before := make([]domain.Card, len(picks))
	for i, p := range picks {
		before[i] = p.Card
	}
	after := append([]domain.Card(nil), before...)
	Shuffle(after, &scriptedRNG{ints: []int{2, 7, 1, 8, 2, 8}})

	assert.ElementsMatch(t, cardIDs(before), cardIDs(after))
}

func TestShuffle_FisherYates(t *testing.T) {
	items := []string{"a", "b", "c"}
	// j is always 0: swap(2,0) then swap(1,0)
	Shuffle(items, &scriptedRNG{ints: []int{0}})
	assert.Equal(t, []string{"b", "c", "a"}, items)

	single := []string{"only"}
	Shuffle(single, &scriptedRNG{})
	assert.Equal(t, []string{"only"}, single)

	var empty []string
	Shuffle(empty, &scriptedRNG{})
	assert.Empty(t, empty)
}

func TestRareSlot_HoloRatio(t *testing.T) {
	catalog := concat(
		makeCards("r", domain.RarityRare, 50),
		makeCards("h", domain.RarityHoloRare, 50),
	)
	spec := packFor(catalog, domain.RarityDistribution{RareSlot: 1}, 1)

	const draws = 10000
	rng := NewSeededRNG(2024)
	holo := 0
	for i := 0; i < draws; i++ {
		result := Open(catalog, spec, rng)
		require.Len(t, result, 1)
		if result[0].Rarity == domain.RarityHoloRare {
			holo++
		}
	}

	assert.InDelta(t, HoloRareChance, float64(holo)/draws, 0.02)
}

func TestEligible(t *testing.T) {
	catalog := concat(
		makeCards("c", domain.RarityCommon, 3),
		makeCards("r", domain.RarityRare, 2),
	)

	got := Eligible(catalog, []string{"r-2", "c-1", "c-1", "ghost"})
	assert.Equal(t, []string{"c-1", "r-2"}, cardIDs(got))

	assert.Empty(t, Eligible(catalog, nil))
}

func TestNewSeededRNG_Reproducible(t *testing.T) {
	catalog := concat(
		makeCards("c", domain.RarityCommon, 20),
		makeCards("u", domain.RarityUncommon, 10),
		makeCards("r", domain.RarityRare, 5),
		makeCards("h", domain.RarityHoloRare, 5),
	)
	spec := packFor(catalog, domain.RarityDistribution{Common: 5, Uncommon: 3, RareSlot: 1}, 10)

	a := Open(catalog, spec, NewSeededRNG(123))
	b := Open(catalog, spec, NewSeededRNG(123))
	assert.Equal(t, cardIDs(a), cardIDs(b))
}
