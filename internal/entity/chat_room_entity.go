package entity

import "time"

// Room is a chat room. RoomName is unique per owning Username, not globally.
type Room struct {
	Id        uint
	RoomName  string
	Username  string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
