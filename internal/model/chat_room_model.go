package model

import "time"

type ChatRoom struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	RoomName  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_chat_rooms_owner_name"`
	Username  string    `gorm:"type:varchar(100);not null;index;uniqueIndex:idx_chat_rooms_owner_name"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Owner *UserAccount `gorm:"foreignKey:Username;references:Username;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (ChatRoom) TableName() string {
	return "chat_rooms"
}
