package model

import (
	"time"

	"gorm.io/datatypes"
)

type Conversation struct {
	Id              uint              `gorm:"primaryKey;autoIncrement"`
	ChatRoomId      uint              `gorm:"not null;index"`
	Query           string            `gorm:"type:text;not null"`
	ResponseMessage string            `gorm:"type:text;not null"`
	GenerationMeta  datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt       time.Time         `gorm:"autoCreateTime"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime"`

	ChatRoom *ChatRoom `gorm:"foreignKey:ChatRoomId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Conversation) TableName() string {
	return "conversations"
}

type Message struct {
	Id             uint      `gorm:"primaryKey;autoIncrement"`
	ConversationId uint      `gorm:"not null;uniqueIndex"`
	SenderUsername string    `gorm:"type:varchar(100);not null;index"`
	Rating         *int      `gorm:"type:smallint"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`

	Conversation *Conversation `gorm:"foreignKey:ConversationId;references:Id;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

func (Message) TableName() string {
	return "messages"
}
