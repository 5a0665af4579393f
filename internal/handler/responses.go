package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/PackOpener_Go/internal/domain"
	"github.com/osse101/PackOpener_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// bufferPool holds encode buffers so large pack responses don't allocate per request
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, 1024))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so a failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it to a user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, action string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(action+" failed", "error", err)
	} else {
		log.Warn(action+" rejected", "error", err, "status", status)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgPackNotFoundError   = "Pack not found"
	ErrMsgCardNotFoundError   = "Card not found"
	ErrMsgInvalidUserIDError  = "Invalid user id"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgInvalidPackError    = "Pack definition is invalid"
	ErrMsgCatalogInvalidError = "Card catalog is invalid"
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."
)

// mapServiceErrorToUserMessage maps domain errors to an HTTP status and a message
// that never exposes internal details. errors.Is walks wrapped chains.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrPackNotFound):
		return http.StatusNotFound, ErrMsgPackNotFoundError
	case errors.Is(err, domain.ErrCardNotFound):
		return http.StatusNotFound, ErrMsgCardNotFoundError
	case errors.Is(err, domain.ErrInvalidUserID):
		return http.StatusBadRequest, ErrMsgInvalidUserIDError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidPackSpec):
		return http.StatusUnprocessableEntity, ErrMsgInvalidPackError
	case errors.Is(err, domain.ErrInvalidCatalog), errors.Is(err, domain.ErrUnknownRarity):
		return http.StatusUnprocessableEntity, ErrMsgCatalogInvalidError
	case errors.Is(err, domain.ErrConnectionTimeout):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
