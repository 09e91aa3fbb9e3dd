package store

import "time"

// Session is the in-memory state of one open chat connection.
type Session struct {
	ID           string    `json:"id"`
	RoomID       uint      `json:"room_id"`
	Username     string    `json:"username"`
	ConnectedAt  time.Time `json:"connected_at"`
	LastActivity time.Time `json:"last_activity"`
	Exchanges    int       `json:"exchanges"`
}
