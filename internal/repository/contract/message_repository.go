package contract

import (
	"context"

	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/repository/specification"
)

type MessageRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error)
}
