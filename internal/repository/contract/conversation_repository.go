package contract

import (
	"context"

	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/repository/specification"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	// UpdateResponse writes only the response columns and refreshes conversation from the row.
	UpdateResponse(ctx context.Context, conversation *entity.Conversation) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error)
}
