package coordinator

import "time"

const (
	// DefaultBufferSize is the per-subscriber message buffer
	DefaultBufferSize = 256

	// DefaultWriteTimeout bounds how long a follower waits for the leader's ack
	DefaultWriteTimeout = 10 * time.Second

	// TopicPrefix is prepended to the world id to name the channel
	TopicPrefix = "craftbench:"

	goodbyeTimeout = 2 * time.Second
)

// Log Messages
const (
	LogMsgCoordinatorStarted = "Coordinator started"
	LogMsgCoordinatorStopped = "Coordinator stopped"
	LogMsgPeerJoined         = "Peer joined"
	LogMsgPeerLeft           = "Peer left"
	LogMsgSaveForwarded      = "Save request forwarded to responsible session"
	LogMsgSavePerformed      = "Save request performed"
	LogMsgSaveFailed         = "Save request failed"
	LogMsgBadMessage         = "Ignoring malformed coordinator message"
	LogMsgPublishFailed      = "Failed to publish coordinator message"
)
