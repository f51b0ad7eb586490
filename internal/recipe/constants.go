package recipe

// IDLength is the length of generated recipe ids.
const IDLength = 16

// Log messages
const (
	LogMsgRecipeCreated  = "Recipe created"
	LogMsgRecipeUpdated  = "Recipe updated"
	LogMsgRecipeDeleted  = "Recipe deleted"
	LogMsgRecipeMissing  = "Recipe not found"
	LogMsgEditStateReset = "Recipe edit state reset"
	LogMsgUpdateFailed   = "Recipe update failed"
)
