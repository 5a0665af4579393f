package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/PackOpener_Go/internal/catalog"
	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/logger"
	"github.com/osse101/PackOpener_Go/internal/opening"
	"github.com/osse101/PackOpener_Go/internal/pack"
)

// OpenPackRequest is the body of POST /packs/{packID}/open
type OpenPackRequest struct {
	UserID string `json:"user_id" validate:"required,userid"`
	Count  int    `json:"count,omitempty" validate:"omitempty,min=1,max=10"`
}

// OpenPackResponse carries every opening made by one request.
// Error is set when a later opening failed after earlier ones were recorded.
type OpenPackResponse struct {
	Openings   []*domain.PackOpening `json:"openings"`
	TotalCards int                   `json:"total_cards"`
	Error      string                `json:"error,omitempty"`
}

// PackListResponse lists the configured packs
type PackListResponse struct {
	Packs []domain.PackSpec `json:"packs"`
}

// PackDetailResponse is a pack plus how much of it the current catalog covers
type PackDetailResponse struct {
	domain.PackSpec
	EligibleCards int      `json:"eligible_cards"`
	MissingCards  []string `json:"missing_cards,omitempty"`
}

// PackHandler serves the pack routes
type PackHandler struct {
	packs    pack.Registry
	catalogs catalog.Provider
	openings opening.Service
}

// NewPackHandler creates a new PackHandler
func NewPackHandler(packs pack.Registry, catalogs catalog.Provider, openings opening.Service) *PackHandler {
	return &PackHandler{
		packs:    packs,
		catalogs: catalogs,
		openings: openings,
	}
}

// HandleListPacks lists every configured pack
// @Summary List packs
// @Tags packs
// @Produce json
// @Success 200 {object} PackListResponse
// @Router /api/v1/packs [get]
func (h *PackHandler) HandleListPacks(w http.ResponseWriter, r *http.Request) {
	packs := h.packs.List()
	if packs == nil {
		packs = []domain.PackSpec{}
	}
	respondJSON(w, http.StatusOK, PackListResponse{Packs: packs})
}

// HandleGetPack returns one pack and its coverage in the current catalog
// @Summary Get pack
// @Tags packs
// @Produce json
// @Param packID path string true "Pack id"
// @Success 200 {object} PackDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/packs/{packID} [get]
func (h *PackHandler) HandleGetPack(w http.ResponseWriter, r *http.Request) {
	spec, err := h.packs.Get(chi.URLParam(r, ParamPackID))
	if err != nil {
		respondServiceError(w, r, ActionGetPack, err)
		return
	}

	cat := h.catalogs.Current()
	respondJSON(w, http.StatusOK, PackDetailResponse{
		PackSpec:      spec,
		EligibleCards: len(h.packs.Pool(cat, spec)),
		MissingCards:  cat.Missing(spec.PossibleCards),
	})
}

// HandleOpenPack opens one or more packs for a user
// @Summary Open packs
// @Description Draws count packs (default 1, max 10), records the cards and returns the reveal schedule
// @Tags packs
// @Accept json
// @Produce json
// @Param packID path string true "Pack id"
// @Param request body OpenPackRequest true "Opening request"
// @Success 201 {object} OpenPackResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/packs/{packID}/open [post]
func (h *PackHandler) HandleOpenPack(w http.ResponseWriter, r *http.Request) {
	var req OpenPackRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionOpenPack); err != nil {
		return
	}

	packID := chi.URLParam(r, ParamPackID)
	var (
		openings []*domain.PackOpening
		err      error
	)
	if req.Count <= 1 {
		var o *domain.PackOpening
		if o, err = h.openings.OpenPack(r.Context(), req.UserID, packID); err == nil {
			openings = []*domain.PackOpening{o}
		}
	} else {
		openings, err = h.openings.OpenPacks(r.Context(), req.UserID, packID, req.Count)
	}

	if err != nil && len(openings) == 0 {
		respondServiceError(w, r, ActionOpenPack, err)
		return
	}

	resp := OpenPackResponse{Openings: openings}
	for _, o := range openings {
		resp.TotalCards += len(o.Cards)
	}
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgOpenPackFailed, "error", err, "completed", len(openings))
		_, resp.Error = mapServiceErrorToUserMessage(err)
	}

	logger.FromContext(r.Context()).Debug(LogMsgPacksOpened,
		"pack_id", packID,
		"user_id", req.UserID,
		"openings", len(openings))
	respondJSON(w, http.StatusCreated, resp)
}

// HandlePackOdds runs a Monte Carlo simulation over a pack
// @Summary Simulated pack odds
// @Tags packs
// @Produce json
// @Param packID path string true "Pack id"
// @Param trials query int false "Number of simulated openings (default 10000, max 100000)"
// @Success 200 {object} domain.PackOdds
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/packs/{packID}/odds [get]
func (h *PackHandler) HandlePackOdds(w http.ResponseWriter, r *http.Request) {
	trials, ok := GetIntQueryParam(r, w, QueryTrials, opening.DefaultSimulationTrials)
	if !ok {
		return
	}

	odds, err := h.openings.Simulate(r.Context(), chi.URLParam(r, ParamPackID), trials)
	if err != nil {
		respondServiceError(w, r, ActionSimulate, err)
		return
	}
	respondJSON(w, http.StatusOK, odds)
}
