package contract

import (
	"context"

	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
}
