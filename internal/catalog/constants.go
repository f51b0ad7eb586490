package catalog

// Prompt texts
const (
	PromptTitleDeleteRecipe   = "Delete recipe"
	PromptTitleClearFile      = "Clear file"
	PromptTitleIngredientSame = "Ingredient equals target"
	PromptTitleSaveOnClose    = "Save progress"

	PromptTextClearFile      = "This will delete all recipes from the current file. Are you sure?"
	PromptTextIngredientSame = "The dropped item is also a target of this recipe. Add it as an ingredient anyway?"
	PromptTextSaveOnClose    = "Save your changes before closing?"
)

// Log Messages
const (
	LogMsgInitialized      = "Catalog initialized"
	LogMsgFileMissing      = "Recipe file not found, starting empty"
	LogMsgSaveCalled       = "Save called"
	LogMsgSelectFileCalled = "SelectFile called"
	LogMsgCreateFileCalled = "CreateFile called"
	LogMsgClearCalled      = "Clear called"
	LogMsgDeleteCalled     = "DeleteRecipe called"
	LogMsgCloseCalled      = "Close called"
	LogMsgCancelled        = "Action cancelled by user"
	LogMsgPublishFailed    = "Failed to publish event"
)
