package metrics

import (
	"context"

	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/logger"
)

// RecordOpening updates the pack counters for one completed opening
func RecordOpening(ctx context.Context, opening *domain.PackOpening) {
	PacksOpened.WithLabelValues(opening.PackID).Inc()

	for _, card := range opening.Cards {
		CardsDrawn.WithLabelValues(string(card.Rarity)).Inc()
	}

	if opening.Shortfall > 0 {
		PackShortfall.WithLabelValues(opening.PackID).Inc()
	}

	logger.FromContext(ctx).Debug(LogMsgOpeningMetricsRecorded,
		"pack_id", opening.PackID,
		"cards", len(opening.Cards),
		"shortfall", opening.Shortfall)
}
