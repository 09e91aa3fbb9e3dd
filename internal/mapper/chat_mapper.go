package mapper

import (
	"time"

	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/model"

	"gorm.io/datatypes"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// User Mappers

func (m *ChatMapper) UserToEntity(u *model.UserAccount) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:        u.Id,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

func (m *ChatMapper) UserToModel(u *entity.User) *model.UserAccount {
	if u == nil {
		return nil
	}
	return &model.UserAccount{
		Id:        u.Id,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}

// Room Mappers

func (m *ChatMapper) RoomToEntity(r *model.ChatRoom) *entity.Room {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.Room{
		Id:        r.Id,
		RoomName:  r.RoomName,
		Username:  r.Username,
		CreatedAt: r.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ChatMapper) RoomToModel(r *entity.Room) *model.ChatRoom {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.ChatRoom{
		Id:        r.Id,
		RoomName:  r.RoomName,
		Username:  r.Username,
		CreatedAt: r.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

// Conversation Mappers

func (m *ChatMapper) ConversationToEntity(c *model.Conversation) *entity.Conversation {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Conversation{
		Id:              c.Id,
		ChatRoomId:      c.ChatRoomId,
		Query:           c.Query,
		ResponseMessage: c.ResponseMessage,
		GenerationMeta:  map[string]interface{}(c.GenerationMeta),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

func (m *ChatMapper) ConversationToModel(c *entity.Conversation) *model.Conversation {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Conversation{
		Id:              c.Id,
		ChatRoomId:      c.ChatRoomId,
		Query:           c.Query,
		ResponseMessage: c.ResponseMessage,
		GenerationMeta:  datatypes.JSONMap(c.GenerationMeta),
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       updatedAt,
	}
}

// Message Mappers

func (m *ChatMapper) MessageToEntity(msg *model.Message) *entity.Message {
	if msg == nil {
		return nil
	}
	return &entity.Message{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		SenderUsername: msg.SenderUsername,
		Rating:         msg.Rating,
		CreatedAt:      msg.CreatedAt,
	}
}

func (m *ChatMapper) MessageToModel(msg *entity.Message) *model.Message {
	if msg == nil {
		return nil
	}
	return &model.Message{
		Id:             msg.Id,
		ConversationId: msg.ConversationId,
		SenderUsername: msg.SenderUsername,
		Rating:         msg.Rating,
		CreatedAt:      msg.CreatedAt,
	}
}

func (m *ChatMapper) MessagesToEntities(msgs []*model.Message) []*entity.Message {
	entities := make([]*entity.Message, len(msgs))
	for i, msg := range msgs {
		entities[i] = m.MessageToEntity(msg)
	}
	return entities
}
