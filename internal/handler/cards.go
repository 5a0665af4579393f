package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PackOpener_Go/internal/catalog"
	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/logger"
)

// CardListResponse is the current catalog, optionally narrowed to one series
type CardListResponse struct {
	CatalogVersion uint64        `json:"catalog_version"`
	Series         []string      `json:"series"`
	Cards          []domain.Card `json:"cards"`
}

// HandleListCards lists catalog cards in catalog order
// @Summary List cards
// @Tags cards
// @Produce json
// @Param series query string false "Only cards of this series"
// @Success 200 {object} CardListResponse
// @Router /api/v1/cards [get]
func HandleListCards(catalogs catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cat := catalogs.Current()

		cards := cat.All()
		if series := GetOptionalQueryParam(r, QuerySeries, ""); series != "" {
			cards = cat.BySeries(series)
		}
		if cards == nil {
			cards = []domain.Card{}
		}

		logger.FromContext(r.Context()).Debug(LogMsgCardsListed, "count", len(cards))
		respondJSON(w, http.StatusOK, CardListResponse{
			CatalogVersion: cat.Version(),
			Series:         cat.Series(),
			Cards:          cards,
		})
	}
}

// HandleGetCard looks a card up in the current catalog
// @Summary Get card
// @Tags cards
// @Produce json
// @Param cardID path string true "Card id"
// @Success 200 {object} domain.Card
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/cards/{cardID} [get]
func HandleGetCard(catalogs catalog.Provider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		card, err := catalogs.Current().Get(chi.URLParam(r, ParamCardID))
		if err != nil {
			respondServiceError(w, r, ActionGetCard, err)
			return
		}
		respondJSON(w, http.StatusOK, card)
	}
}
