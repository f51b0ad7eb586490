package coordinator

import (
	"github.com/osse101/craftbench/internal/domain"
	"github.com/osse101/craftbench/internal/storage"
)

// Message actions
const (
	ActionSaveJSON     = "saveJSON"
	ActionNotifyClient = "notifyClient"
	ActionHello        = "hello"
	ActionGoodbye      = "goodbye"
)

// Notification levels
const (
	LevelInfo  = "info"
	LevelError = "error"
)

// Message is the envelope sent on the channel. Point-to-point messages
// carry ToSession or ToUser; broadcasts carry neither.
type Message struct {
	Action       string        `json:"action"`
	From         string        `json:"from"`
	ToSession    string        `json:"toSession,omitempty"`
	ToUser       string        `json:"toUser,omitempty"`
	RequestID    string        `json:"requestId,omitempty"`
	Reply        bool          `json:"reply,omitempty"`
	Peer         *Peer         `json:"peer,omitempty"`
	Save         *SaveRequest  `json:"save,omitempty"`
	Notification *Notification `json:"notification,omitempty"`
}

// SaveRequest asks the responsible session to write a recipe file.
type SaveRequest struct {
	ID      string                  `json:"id"`
	UserID  string                  `json:"userId"`
	Folder  string                  `json:"folder"`
	File    string                  `json:"file"`
	Recipes domain.RecipeCollection `json:"recipes"`
	Info    storage.FileInfo        `json:"fileInfo"`
}

// Notification is a user-facing message pushed to one session or user.
type Notification struct {
	Level     string `json:"level"`
	Message   string `json:"message"`
	Path      string `json:"path,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}
