package implementation

import (
	"context"
	"errors"

	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/mapper"
	"ai-chatroom-be/internal/model"
	"ai-chatroom-be/internal/repository/contract"
	"ai-chatroom-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ChatRoomRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewChatRoomRepository(db *gorm.DB) contract.ChatRoomRepository {
	return &ChatRoomRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ChatRoomRepositoryImpl) Create(ctx context.Context, room *entity.Room) error {
	m := r.mapper.RoomToModel(room)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*room = *r.mapper.RoomToEntity(m)
	return nil
}

func (r *ChatRoomRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Room, error) {
	var m model.ChatRoom
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.RoomToEntity(&m), nil
}

func (r *ChatRoomRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ChatRoom{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
