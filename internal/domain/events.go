package domain

// Event type constants used for event bus subscriptions and metrics.
//
// Event types follow the pattern: <entity>.<action>
const (
	// EventTypeRecipeSaved is published after the recipe collection is written to storage
	EventTypeRecipeSaved = "recipe.saved"

	// EventTypeFileSelected is published when the active recipe file changes
	EventTypeFileSelected = "file.selected"

	// EventTypeItemCrafted is published after a craft has been applied to an inventory
	EventTypeItemCrafted = "item.crafted"

	// EventTypeSearchNoResults is published when a search matches no recipe
	EventTypeSearchNoResults = "search.no_results"

	// EventTypeNotificationSent is published when a write outcome is reported to a session
	EventTypeNotificationSent = "notification.sent"
)
