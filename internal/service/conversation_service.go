package service

import (
	"context"
	"fmt"
	"time"

	"ai-chatroom-be/internal/dto"
	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/repository/specification"
	"ai-chatroom-be/internal/repository/unitofwork"
)

const (
	DefaultHistoryLimit = 50
	MaxHistoryLimit     = 200
)

// IConversationService is the conversation log. Each write is visible to reads
// that follow it on the same service.
type IConversationService interface {
	CreateConversation(ctx context.Context, roomID uint, query string) (*entity.Conversation, error)
	// CompleteExchange stores the reply on conversation, refreshes it from the stored
	// row, then records the sender's Message. Both writes commit together or not at all.
	CompleteExchange(ctx context.Context, conversation *entity.Conversation, reply Reply, sender string) (*entity.Message, error)
	History(ctx context.Context, roomID uint, owner string, limit, offset int) (*dto.ConversationHistoryResponse, error)
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewConversationService(uowFactory unitofwork.RepositoryFactory) IConversationService {
	return &conversationService{
		uowFactory: uowFactory,
	}
}

func (s *conversationService) CreateConversation(ctx context.Context, roomID uint, query string) (*entity.Conversation, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	now := time.Now()
	conversation := &entity.Conversation{
		ChatRoomId: roomID,
		Query:      query,
		CreatedAt:  now,
		UpdatedAt:  &now,
	}
	if err := uow.ConversationRepository().Create(ctx, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

func (s *conversationService) CompleteExchange(ctx context.Context, conversation *entity.Conversation, reply Reply, sender string) (message *entity.Message, err error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin exchange transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = uow.Rollback()
		}
	}()

	if err = finalizeConversation(ctx, uow, conversation, reply); err != nil {
		return nil, fmt.Errorf("finalize conversation %d: %w", conversation.Id, err)
	}

	message, err = createMessage(ctx, uow, conversation.Id, sender)
	if err != nil {
		return nil, fmt.Errorf("create message for conversation %d: %w", conversation.Id, err)
	}

	if err = uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit exchange: %w", err)
	}
	return message, nil
}

func finalizeConversation(ctx context.Context, uow unitofwork.UnitOfWork, conversation *entity.Conversation, reply Reply) error {
	now := time.Now()
	conversation.ResponseMessage = reply.Text
	conversation.GenerationMeta = reply.Meta()
	conversation.UpdatedAt = &now

	return uow.ConversationRepository().UpdateResponse(ctx, conversation)
}

func createMessage(ctx context.Context, uow unitofwork.UnitOfWork, conversationID uint, sender string) (*entity.Message, error) {
	message := &entity.Message{
		ConversationId: conversationID,
		SenderUsername: sender,
		CreatedAt:      time.Now(),
	}
	if err := uow.MessageRepository().Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}

func (s *conversationService) History(ctx context.Context, roomID uint, owner string, limit, offset int) (*dto.ConversationHistoryResponse, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	room, err := uow.ChatRoomRepository().FindOne(ctx,
		specification.ByID{ID: roomID},
		specification.OwnedBy{Username: owner},
	)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}

	conversations, err := uow.ConversationRepository().FindAll(ctx,
		specification.ByChatRoomID{ChatRoomID: room.Id},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	result := &dto.ConversationHistoryResponse{
		RoomId:        room.Id,
		Conversations: make([]*dto.ConversationItem, 0, len(conversations)),
	}
	if len(conversations) == 0 {
		return result, nil
	}

	ids := make([]uint, 0, len(conversations))
	for _, c := range conversations {
		ids = append(ids, c.Id)
	}

	messages, err := uow.MessageRepository().FindAll(ctx, specification.ByConversationIDs{ConversationIDs: ids})
	if err != nil {
		return nil, err
	}
	byConversation := make(map[uint]*entity.Message, len(messages))
	for _, m := range messages {
		byConversation[m.ConversationId] = m
	}

	for _, c := range conversations {
		item := &dto.ConversationItem{
			Id:        c.Id,
			Query:     c.Query,
			Response:  c.ResponseMessage,
			CreatedAt: c.CreatedAt,
		}
		if m, ok := byConversation[c.Id]; ok {
			item.SenderUsername = m.SenderUsername
			item.Rating = m.Rating
		}
		result.Conversations = append(result.Conversations, item)
	}

	return result, nil
}
