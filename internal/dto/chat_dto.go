package dto

import (
	"time"
)

type CreateRoomRequest struct {
	Owner    string `json:"owner" validate:"required,max=100"`
	RoomName string `json:"room_name" validate:"required,max=255"`
}

type ConversationItem struct {
	Id             uint      `json:"id"`
	Query          string    `json:"query"`
	Response       string    `json:"response"`
	SenderUsername string    `json:"sender_username,omitempty"`
	Rating         *int      `json:"rating"`
	CreatedAt      time.Time `json:"created_at"`
}

type ConversationHistoryResponse struct {
	RoomId        uint                `json:"room_id"`
	Conversations []*ConversationItem `json:"conversations"`
}

// ExchangeCompletedEvent is published after a reply has been sent to the client.
type ExchangeCompletedEvent struct {
	RoomId         uint      `json:"room_id"`
	ConversationId uint      `json:"conversation_id"`
	MessageId      uint      `json:"message_id"`
	SenderUsername string    `json:"sender_username"`
	Backend        string    `json:"backend"`
	Model          string    `json:"model,omitempty"`
	Failed         bool      `json:"failed"`
	LatencyMs      int64     `json:"latency_ms"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type HealthResponse struct {
	Status          string `json:"status"`
	LiveSessions    int    `json:"live_sessions"`
	ClusterSessions int64  `json:"cluster_sessions"`
}
