package contract

import (
	"context"

	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/repository/specification"
)

type ChatRoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Room, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
