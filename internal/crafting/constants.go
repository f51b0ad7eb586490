package crafting

// State is the position of a craft session in its lifecycle.
type State string

const (
	StateIdle          State = "idle"
	StateActorSelected State = "actor_selected"
	StateEvaluating    State = "evaluating"
	StateReadyToCraft  State = "ready_to_craft"
	StateInsufficient  State = "insufficient"
	StateCrafted       State = "crafted"
)

// FullPercent is the completion percentage a craft needs without force.
const FullPercent = 100.0

// Log messages
const (
	LogMsgSessionOpened  = "Craft session opened"
	LogMsgActorSelected  = "Craft actor selected"
	LogMsgEvaluated      = "Recipe evaluated"
	LogMsgCraftApplied   = "Craft applied"
	LogMsgCraftRejected  = "Craft rejected"
	LogMsgApplyFailed    = "Failed to apply craft mutations"
	LogMsgPublishFailed  = "Failed to publish craft event"
	LogMsgSessionClosed  = "Craft session closed"
	LogMsgSessionExpired = "Craft session expired"
)
