package postgres

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - Recipe Files
const (
	ErrMsgFailedToReadRecipeFile  = "failed to read recipe file"
	ErrMsgFailedToWriteRecipeFile = "failed to write recipe file"
	ErrMsgFailedToListRecipeFiles = "failed to list recipe files"
)

// Error Messages - Settings
const (
	ErrMsgFailedToGetSetting = "failed to get setting"
	ErrMsgFailedToSetSetting = "failed to set setting"
)

// Error Messages - Inventory
const (
	ErrMsgFailedToGetActors     = "failed to get actors"
	ErrMsgFailedToGetItems      = "failed to get items"
	ErrMsgFailedToSaveActor     = "failed to save actor"
	ErrMsgFailedToApplyMutation = "failed to apply inventory mutation"
)
