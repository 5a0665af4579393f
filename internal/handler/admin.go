package handler

import (
	"net/http"

	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/logger"
	"github.com/osse101/PackOpener_Go/internal/opening"
)

// ReloadResponse reports the state after an admin reload
type ReloadResponse struct {
	Message string               `json:"message"`
	Report  *domain.ReloadReport `json:"report"`
}

// HandleReload re-reads the card catalog and pack definitions (admin only)
// @Summary Reload catalog and packs
// @Description Re-reads catalog and pack files and reports pack cards missing from the catalog
// @Tags admin
// @Produce json
// @Success 200 {object} ReloadResponse
// @Failure 401 {string} string "Unauthorized"
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/reload [post]
// @Security ApiKeyAuth
func HandleReload(svc opening.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		report, err := svc.Reload(r.Context())
		if err != nil {
			respondServiceError(w, r, ActionReload, err)
			return
		}

		for packID, missing := range report.UnknownCards {
			log.Warn("Pack references cards missing from catalog", "pack_id", packID, "missing", missing)
		}
		log.Info(LogMsgReloadComplete, "cards", report.Cards, "packs", report.Packs)

		respondJSON(w, http.StatusOK, ReloadResponse{Message: MsgReloadSuccess, Report: report})
	}
}
