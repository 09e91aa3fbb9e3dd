package implementation

import (
	"context"

	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/mapper"
	"ai-chatroom-be/internal/model"
	"ai-chatroom-be/internal/repository/contract"
	"ai-chatroom-be/internal/repository/scope"
	"ai-chatroom-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ConversationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatMapper
}

func NewConversationRepository(db *gorm.DB) contract.ConversationRepository {
	return &ConversationRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatMapper(),
	}
}

func (r *ConversationRepositoryImpl) Create(ctx context.Context, conversation *entity.Conversation) error {
	m := r.mapper.ConversationToModel(conversation)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*conversation = *r.mapper.ConversationToEntity(m)
	return nil
}

func (r *ConversationRepositoryImpl) UpdateResponse(ctx context.Context, conversation *entity.Conversation) error {
	m := r.mapper.ConversationToModel(conversation)
	res := r.db.WithContext(ctx).
		Model(&model.Conversation{Id: m.Id}).
		Select("response_message", "generation_meta", "updated_at").
		Updates(m)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	var fresh model.Conversation
	if err := r.db.WithContext(ctx).First(&fresh, m.Id).Error; err != nil {
		return err
	}
	*conversation = *r.mapper.ConversationToEntity(&fresh)
	return nil
}

// FindAll returns conversations in receipt order unless a spec overrides the ordering.
func (r *ConversationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	var models []*model.Conversation
	query := applySpecifications(r.db.WithContext(ctx), specs...).Scopes(scope.OrderByIdAsc)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Conversation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ConversationToEntity(m)
	}
	return entities, nil
}
