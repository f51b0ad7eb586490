package middleware

// HTTP Header Names
const (
	// HeaderUserID names the calling user
	HeaderUserID = "X-User-ID"

	// HeaderUserName is the caller's display name
	HeaderUserName = "X-User-Name"

	// HeaderUserRole is the caller's host role, gm or player
	HeaderUserRole = "X-User-Role"

	// HeaderCharacterID is the caller's active character
	HeaderCharacterID = "X-Character-ID"

	// HeaderSessionID names the calling peer session
	HeaderSessionID = "X-Session-ID"

	// HeaderConfirm answers confirmation prompts for the request
	HeaderConfirm = "X-Confirm"
)

// HTTP Request Parameter Names
const (
	// QueryParamConfirm answers confirmation prompts for the request
	QueryParamConfirm = "confirm"
)

// Error Messages
const (
	ErrMsgMissingUser = "Missing X-User-ID header"
	ErrMsgInvalidRole = "Invalid X-User-Role header"
)

// Log Messages
const (
	LogMsgIdentityRejected = "Request identity rejected"
)
