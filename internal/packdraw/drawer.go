package packdraw

import "github.com/osse101/PackOpener_Go/internal/domain"

// Pick is one card chosen during slot filling, tagged with the slot and
// strategy that produced it.
type Pick struct {
	Card     domain.Card
	Slot     string
	Strategy string
}

// Eligible returns the catalog cards whose id is listed in possible, in catalog order.
// Ids missing from the catalog are ignored.
func Eligible(catalog []domain.Card, possible []string) []domain.Card {
	wanted := make(map[string]struct{}, len(possible))
	for _, id := range possible {
		wanted[id] = struct{}{}
	}

	out := make([]domain.Card, 0, min(len(wanted), len(catalog)))
	for _, c := range catalog {
		if _, ok := wanted[c.ID]; !ok {
			continue
		}
		out = append(out, c)
		delete(wanted, c.ID)
	}
	return out
}

// Open draws one pack from catalog and returns it in reveal order.
// The result never repeats a card and holds min(CardsPerPack, eligible) cards.
func Open(catalog []domain.Card, spec domain.PackSpec, rng RandomSource) []domain.Card {
	return OpenEligible(Eligible(catalog, spec.PossibleCards), spec, rng)
}

// OpenEligible is Open for callers that already resolved the eligible pool
func OpenEligible(eligible []domain.Card, spec domain.PackSpec, rng RandomSource) []domain.Card {
	picks := Fill(eligible, spec, rng)

	cards := make([]domain.Card, len(picks))
	for i, p := range picks {
		cards[i] = p.Card
	}
	Shuffle(cards, rng)
	return cards
}

// Fill runs the slot policy then tops up to CardsPerPack. Picks are returned
// in the order they were made.
func Fill(eligible []domain.Card, spec domain.PackSpec, rng RandomSource) []Pick {
	st := newDrawState(eligible, rng)
	target := spec.CardsPerPack

	for _, slot := range Slots() {
		count := slot.Count(spec.RarityDistribution)
		for i := 0; i < count && len(st.picks) < target; i++ {
			// Skipped when every strategy in the chain comes up empty
			st.pick(slot.Name, slot.Chain(rng))
		}
	}

	topUp := []Strategy{anyRemaining}
	for len(st.picks) < target && st.remaining() > 0 {
		st.pick(SlotTopUp, topUp)
	}

	return st.picks
}

// Shuffle is an in-place Fisher-Yates permutation
func Shuffle[T any](items []T, rng RandomSource) {
	for i := len(items) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}

// drawState is the scratch space of a single opening
type drawState struct {
	eligible   []domain.Card
	rng        RandomSource
	drawn      map[string]struct{}
	distinct   int
	picks      []Pick
	candidates []int
}

func newDrawState(eligible []domain.Card, rng RandomSource) *drawState {
	ids := make(map[string]struct{}, len(eligible))
	for _, c := range eligible {
		ids[c.ID] = struct{}{}
	}
	return &drawState{
		eligible:   eligible,
		rng:        rng,
		drawn:      make(map[string]struct{}, len(ids)),
		distinct:   len(ids),
		candidates: make([]int, 0, len(eligible)),
	}
}

func (s *drawState) remaining() int {
	return s.distinct - len(s.drawn)
}

// pick takes a uniformly random undrawn card from the first strategy with any
// candidates. It reports false when the whole chain is exhausted.
func (s *drawState) pick(slot string, chain []Strategy) bool {
	for _, strategy := range chain {
		s.candidates = s.candidates[:0]
		for i, c := range s.eligible {
			if _, taken := s.drawn[c.ID]; taken || !strategy.Accept(c) {
				continue
			}
			s.candidates = append(s.candidates, i)
		}
		if len(s.candidates) == 0 {
			continue
		}

		card := s.eligible[s.candidates[s.rng.IntN(len(s.candidates))]]
		s.drawn[card.ID] = struct{}{}
		s.picks = append(s.picks, Pick{Card: card, Slot: slot, Strategy: strategy.Name})
		return true
	}
	return false
}
