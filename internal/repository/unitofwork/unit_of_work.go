package unitofwork

import (
	"context"

	"ai-chatroom-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ChatRoomRepository() contract.ChatRoomRepository
	ConversationRepository() contract.ConversationRepository
	MessageRepository() contract.MessageRepository
	SettingsRepository() contract.SettingsRepository
}
