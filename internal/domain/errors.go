package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	// Recipe errors
	ErrMsgRecipeNotFound     = "recipe not found"
	ErrMsgIngredientNotFound = "ingredient not found"
	ErrMsgTargetNotFound     = "target not found"
	ErrMsgNoTarget           = "recipe has no target"
	ErrMsgInvalidRecipeType  = "invalid recipe type"

	// Tag errors
	ErrMsgInvalidTagName = "invalid tag name"
	ErrMsgTagExists      = "tag already exists"
	ErrMsgTagNotFound    = "tag not found"
	ErrMsgDuplicateTag   = "duplicate tag"

	// Crafting errors
	ErrMsgInsufficientQuantity     = "insufficient quantity"
	ErrMsgInsufficientItemQuantity = "not enough items of this kind"
	ErrMsgNoOwnedActor             = "user owns no actor"
	ErrMsgActorHasNoItems          = "actor has no items"
	ErrMsgActorNotFound            = "actor not found"
	ErrMsgItemNotFound             = "item not found"
	ErrMsgSessionNotFound          = "crafting session not found"
	ErrMsgInvalidState             = "invalid crafting state"

	// Persistence errors
	ErrMsgPersistenceFailure = "persistence failure"
	ErrMsgFileNotFound       = "file not found"
	ErrMsgNotResponsible     = "no responsible session available"
	ErrMsgWriteTimeout       = "write request timed out"

	// Access errors
	ErrMsgNoEditRights = "no edit rights"
	ErrMsgCancelled    = "cancelled by user"

	// Validation errors (used for partial matches)
	ErrMsgInvalidQuantity = "quantity"
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgValidation      = "validation failed"
)

// Common domain errors.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Recipe errors
	ErrRecipeNotFound     = errors.New(ErrMsgRecipeNotFound)
	ErrIngredientNotFound = errors.New(ErrMsgIngredientNotFound)
	ErrTargetNotFound     = errors.New(ErrMsgTargetNotFound)
	ErrNoTarget           = errors.New(ErrMsgNoTarget)
	ErrInvalidRecipeType  = errors.New(ErrMsgInvalidRecipeType)

	// Tag errors
	ErrInvalidTagName = errors.New(ErrMsgInvalidTagName)
	ErrTagExists      = errors.New(ErrMsgTagExists)
	ErrTagNotFound    = errors.New(ErrMsgTagNotFound)
	ErrDuplicateTag   = errors.New(ErrMsgDuplicateTag)

	// Crafting errors
	ErrInsufficientQuantity     = errors.New(ErrMsgInsufficientQuantity)
	ErrInsufficientItemQuantity = errors.New(ErrMsgInsufficientItemQuantity)
	ErrNoOwnedActor             = errors.New(ErrMsgNoOwnedActor)
	ErrActorHasNoItems          = errors.New(ErrMsgActorHasNoItems)
	ErrActorNotFound            = errors.New(ErrMsgActorNotFound)
	ErrItemNotFound             = errors.New(ErrMsgItemNotFound)
	ErrSessionNotFound          = errors.New(ErrMsgSessionNotFound)
	ErrInvalidState             = errors.New(ErrMsgInvalidState)

	// Persistence errors
	ErrPersistenceFailure = errors.New(ErrMsgPersistenceFailure)
	ErrFileNotFound       = errors.New(ErrMsgFileNotFound)
	ErrNotResponsible     = errors.New(ErrMsgNotResponsible)
	ErrWriteTimeout       = errors.New(ErrMsgWriteTimeout)

	// Access errors
	ErrNoEditRights = errors.New(ErrMsgNoEditRights)
	ErrCancelled    = errors.New(ErrMsgCancelled)

	// Validation errors
	ErrInvalidQuantity = errors.New("invalid " + ErrMsgInvalidQuantity)
	ErrInvalidInput    = errors.New(ErrMsgInvalidInput)
	ErrValidation      = errors.New(ErrMsgValidation)
)
