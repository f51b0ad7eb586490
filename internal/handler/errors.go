package handler

// Generic HTTP error messages for client responses.
// They never include internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgInvalidItem           = "Invalid item document"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingUser       = "Missing caller identity"
)

// Success messages for API responses
const (
	MsgRecipeDeleted       = "Recipe deleted"
	MsgRecipesUpdated      = "Recipes updated"
	MsgFileCleared         = "Recipe file cleared"
	MsgSessionClosed       = "Crafting session closed"
	MsgQuantityPathsStored = "Quantity paths updated"
)
