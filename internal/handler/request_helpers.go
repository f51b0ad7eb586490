package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/logger"
	"github.com/osse101/craftbench/internal/middleware"
)

// DecodeAndValidateRequest decodes and validates a JSON body. If it returns an
// error the response has already been written.
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req any, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Error(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		validationErrs := FormatValidationError(err)
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: validationErrs,
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// GetOptionalQueryParam retrieves an optional query parameter from the request.
func GetOptionalQueryParam(r *http.Request, paramName string, defaultValue string) string {
	value := r.URL.Query().Get(paramName)
	if value == "" {
		return defaultValue
	}
	return value
}

// requireUser returns the caller placed in the context by middleware.Identity.
// If ok is false, the HTTP response has already been written.
func requireUser(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		logger.FromContext(r.Context()).Warn("Request without caller identity", "path", r.URL.Path)
		respondError(w, http.StatusUnauthorized, ErrMsgMissingUser)
		return domain.User{}, false
	}
	return user, true
}

// decodeItem parses an item document from a request field. If ok is false,
// the HTTP response has already been written.
func decodeItem(w http.ResponseWriter, raw json.RawMessage) (domain.Item, bool) {
	doc, err := domain.NewItem(raw)
	if err != nil || doc.IsZero() {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidItem)
		return domain.Item{}, false
	}
	return doc, true
}
