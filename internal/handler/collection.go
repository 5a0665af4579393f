package handler

import (
	"net/http"

	"github.com/osse101/PackOpener_Go/internal/collection"
	"github.com/osse101/PackOpener_Go/internal/domain"
)

// CollectionResponse lists what a user owns
type CollectionResponse struct {
	UserID  string                   `json:"user_id"`
	Entries []domain.CollectionEntry `json:"entries"`
}

// HistoryResponse lists a user's recent openings, newest first
type HistoryResponse struct {
	UserID   string                 `json:"user_id"`
	Openings []domain.OpeningRecord `json:"openings"`
}

// CollectionHandler serves the collection routes
type CollectionHandler struct {
	svc collection.Service
}

// NewCollectionHandler creates a new CollectionHandler
func NewCollectionHandler(svc collection.Service) *CollectionHandler {
	return &CollectionHandler{svc: svc}
}

// HandleGetCollection returns every card a user owns with counts
// @Summary Get collection
// @Tags collection
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} CollectionResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/collection [get]
func (h *CollectionHandler) HandleGetCollection(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, QueryUserID)
	if !ok {
		return
	}

	entries, err := h.svc.GetCollection(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ActionGetCollection, err)
		return
	}
	if entries == nil {
		entries = []domain.CollectionEntry{}
	}
	respondJSON(w, http.StatusOK, CollectionResponse{UserID: userID, Entries: entries})
}

// HandleGetSummary returns collection progress against the catalog
// @Summary Collection summary
// @Tags collection
// @Produce json
// @Param user_id query string true "User id"
// @Success 200 {object} domain.CollectionSummary
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/collection/summary [get]
func (h *CollectionHandler) HandleGetSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, QueryUserID)
	if !ok {
		return
	}

	summary, err := h.svc.Summary(r.Context(), userID)
	if err != nil {
		respondServiceError(w, r, ActionGetSummary, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// HandleGetHistory returns the user's most recent openings
// @Summary Opening history
// @Tags collection
// @Produce json
// @Param user_id query string true "User id"
// @Param limit query int false "Max openings (default 20, max 100)"
// @Success 200 {object} HistoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/collection/history [get]
func (h *CollectionHandler) HandleGetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, QueryUserID)
	if !ok {
		return
	}
	limit, ok := GetIntQueryParam(r, w, QueryLimit, collection.DefaultHistoryLimit)
	if !ok {
		return
	}

	openings, err := h.svc.History(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, ActionGetHistory, err)
		return
	}
	if openings == nil {
		openings = []domain.OpeningRecord{}
	}
	respondJSON(w, http.StatusOK, HistoryResponse{UserID: userID, Openings: openings})
}
