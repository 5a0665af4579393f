// Package reveal schedules when each drawn card is turned face up
package reveal

import (
	"time"

	"github.com/osse101/PackOpener_Go/internal/domain"
)

// DefaultInterval is the pause between consecutive cards
const DefaultInterval = 600 * time.Millisecond

// Schedule assigns each card an offset of index * interval. Non-positive intervals use DefaultInterval.
func Schedule(cards []domain.Card, interval time.Duration) []domain.RevealStep {
	if interval <= 0 {
		interval = DefaultInterval
	}

	steps := make([]domain.RevealStep, len(cards))
	for i, card := range cards {
		steps[i] = domain.RevealStep{
			Index:  i,
			CardID: card.ID,
			Offset: time.Duration(i) * interval,
		}
	}
	return steps
}

// TotalDuration is the time from the first card until the last one has been on screen for a full interval
func TotalDuration(steps []domain.RevealStep, interval time.Duration) time.Duration {
	if len(steps) == 0 {
		return 0
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return steps[len(steps)-1].Offset + interval
}
