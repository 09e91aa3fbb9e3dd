package specification

import (
	"gorm.io/gorm"
)

type ByChatRoomID struct {
	ChatRoomID uint
}

func (s ByChatRoomID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_room_id = ?", s.ChatRoomID)
}

type ByRoomName struct {
	RoomName string
}

func (s ByRoomName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("room_name = ?", s.RoomName)
}

type ByConversationIDs struct {
	ConversationIDs []uint
}

func (s ByConversationIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id IN ?", s.ConversationIDs)
}
