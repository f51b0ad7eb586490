package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/logger"
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

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	buf := getBuffer()
	defer putBuffer(buf)

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and sends the mapped status and message.
func respondServiceError(w http.ResponseWriter, r *http.Request, op string, err error) {
	status, message := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(op+" failed", "error", err)
	} else {
		log.Warn(op+" rejected", "error", err, "status", status)
	}
	respondError(w, status, message)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgRecipeNotFoundError     = "Recipe not found"
	ErrMsgIngredientNotFoundError = "Ingredient not found"
	ErrMsgTargetNotFoundError     = "Target not found"
	ErrMsgTagNotFoundError        = "Tag not found"
	ErrMsgActorNotFoundError      = "Actor not found"
	ErrMsgItemNotFoundError       = "Item not found"
	ErrMsgSessionNotFoundError    = "Crafting session not found"
	ErrMsgFileNotFoundError       = "Recipe file not found"

	ErrMsgInvalidTagNameError     = "Tag names may not contain special symbols"
	ErrMsgInvalidQuantityError    = "Quantity must be a number"
	ErrMsgInvalidRecipeTypeError  = "Recipe type must be text, items or tags"
	ErrMsgNoTargetError           = "Recipe has no target"
	ErrMsgInvalidRequestError     = "Invalid request. Please check your inputs."
	ErrMsgTagExistsError          = "Tag already exists"
	ErrMsgDuplicateTagError       = "Tag names must be unique"
	ErrMsgCancelledError          = "Action was not confirmed"
	ErrMsgInvalidStateError       = "Action is not possible in the current crafting state"
	ErrMsgNoEditRightsError       = "You are not allowed to edit recipes"
	ErrMsgNoOwnedActorError       = "You do not own a character that can craft"
	ErrMsgInsufficientError       = "Not enough materials"
	ErrMsgActorHasNoItemsError    = "Your character has no items"
	ErrMsgPersistenceFailureError = "Recipes could not be saved"
	ErrMsgNotResponsibleError     = "No game master is connected to save recipes"
	ErrMsgWriteTimeoutError       = "Saving recipes timed out"
)

type errorMapping struct {
	err     error
	status  int
	message string
}

// errorMappings is checked in order; the first sentinel found in the chain wins.
var errorMappings = []errorMapping{
	{domain.ErrRecipeNotFound, http.StatusNotFound, ErrMsgRecipeNotFoundError},
	{domain.ErrIngredientNotFound, http.StatusNotFound, ErrMsgIngredientNotFoundError},
	{domain.ErrTargetNotFound, http.StatusNotFound, ErrMsgTargetNotFoundError},
	{domain.ErrTagNotFound, http.StatusNotFound, ErrMsgTagNotFoundError},
	{domain.ErrActorNotFound, http.StatusNotFound, ErrMsgActorNotFoundError},
	{domain.ErrItemNotFound, http.StatusNotFound, ErrMsgItemNotFoundError},
	{domain.ErrSessionNotFound, http.StatusNotFound, ErrMsgSessionNotFoundError},
	{domain.ErrFileNotFound, http.StatusNotFound, ErrMsgFileNotFoundError},

	{domain.ErrInvalidTagName, http.StatusBadRequest, ErrMsgInvalidTagNameError},
	{domain.ErrInvalidQuantity, http.StatusBadRequest, ErrMsgInvalidQuantityError},
	{domain.ErrInvalidRecipeType, http.StatusBadRequest, ErrMsgInvalidRecipeTypeError},
	{domain.ErrNoTarget, http.StatusBadRequest, ErrMsgNoTargetError},
	{domain.ErrInvalidInput, http.StatusBadRequest, ErrMsgInvalidRequestError},
	{domain.ErrValidation, http.StatusBadRequest, ErrMsgInvalidRequestError},

	{domain.ErrNoEditRights, http.StatusForbidden, ErrMsgNoEditRightsError},
	{domain.ErrNoOwnedActor, http.StatusForbidden, ErrMsgNoOwnedActorError},

	{domain.ErrTagExists, http.StatusConflict, ErrMsgTagExistsError},
	{domain.ErrDuplicateTag, http.StatusConflict, ErrMsgDuplicateTagError},
	{domain.ErrCancelled, http.StatusConflict, ErrMsgCancelledError},
	{domain.ErrInvalidState, http.StatusConflict, ErrMsgInvalidStateError},

	{domain.ErrInsufficientQuantity, http.StatusUnprocessableEntity, ErrMsgInsufficientError},
	{domain.ErrInsufficientItemQuantity, http.StatusUnprocessableEntity, ErrMsgInsufficientError},
	{domain.ErrActorHasNoItems, http.StatusUnprocessableEntity, ErrMsgActorHasNoItemsError},

	{domain.ErrNotResponsible, http.StatusBadGateway, ErrMsgNotResponsibleError},
	{domain.ErrWriteTimeout, http.StatusBadGateway, ErrMsgWriteTimeoutError},
	{domain.ErrPersistenceFailure, http.StatusBadGateway, ErrMsgPersistenceFailureError},
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
