package entity

import "time"

// Conversation is one inbound chat message and the reply generated for it.
type Conversation struct {
	Id              uint
	ChatRoomId      uint
	Query           string
	ResponseMessage string
	GenerationMeta  map[string]interface{}
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// Message annotates a finalized Conversation with its sender and an optional rating.
type Message struct {
	Id             uint
	ConversationId uint
	SenderUsername string
	Rating         *int
	CreatedAt      time.Time
}

// Keys stored in Conversation.GenerationMeta
const (
	GenerationMetaBackend   = "backend"
	GenerationMetaModel     = "model"
	GenerationMetaLatencyMs = "latency_ms"
	GenerationMetaFailed    = "failed"
)
