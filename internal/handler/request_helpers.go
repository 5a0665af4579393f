package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/osse101/PackOpener_Go/internal/logger"
)

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// When it returns an error the response has already been written and the handler should return.
//
// An empty body decodes as the zero value, so optional-only requests may omit it.
//
//	var req OpenPackRequest
//	if err := DecodeAndValidateRequest(r, w, &req, ActionOpenPack); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil && !errors.Is(err, io.EOF) {
		log.Warn(LogMsgDecodeFailed, "action", actionName, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// GetQueryParam retrieves a required query parameter.
// If ok is false the response has already been written.
func GetQueryParam(r *http.Request, w http.ResponseWriter, paramName string) (string, bool) {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Missing %s query parameter", paramName))
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, paramName))
		return "", false
	}
	return value, true
}

// GetOptionalQueryParam returns the query parameter or defaultValue when absent
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetIntQueryParam parses an optional integer query parameter.
// Absent returns defaultValue; malformed writes a 400 and returns ok=false.
func GetIntQueryParam(r *http.Request, w http.ResponseWriter, paramName string, defaultValue int) (int, bool) {
	raw := r.URL.Query().Get(paramName)
	if raw == "" {
		return defaultValue, true
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.FromContext(r.Context()).Warn(fmt.Sprintf("Invalid %s query parameter", paramName), "value", raw)
		respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgInvalidQueryParam, paramName))
		return 0, false
	}
	return value, true
}
