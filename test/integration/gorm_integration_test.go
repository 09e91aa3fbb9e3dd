package integration

import (
	"context"
	"testing"
	"time"

	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/repository/specification"
	"ai-chatroom-be/internal/repository/unitofwork"
	"ai-chatroom-be/internal/service"
	"ai-chatroom-be/pkg/database"
	"ai-chatroom-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormRepositories(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	uow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)

	user := &entity.User{Username: uniqueName("alice"), CreatedAt: time.Now()}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	assert.NotZero(t, user.Id)

	t.Run("duplicate username is a unique violation", func(t *testing.T) {
		err := uow.UserRepository().Create(ctx, &entity.User{Username: user.Username})
		require.Error(t, err)
		assert.True(t, database.IsUniqueViolation(err))
	})

	room := &entity.Room{RoomName: "general", Username: user.Username, CreatedAt: time.Now()}
	require.NoError(t, uow.ChatRoomRepository().Create(ctx, room))

	t.Run("room lookup is scoped to its owner", func(t *testing.T) {
		found, err := uow.ChatRoomRepository().FindOne(ctx,
			specification.ByID{ID: room.Id},
			specification.OwnedBy{Username: user.Username},
		)
		require.NoError(t, err)
		require.NotNil(t, found)

		missing, err := uow.ChatRoomRepository().FindOne(ctx,
			specification.ByID{ID: room.Id},
			specification.OwnedBy{Username: "someone-else"},
		)
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("conversation response is written and read back", func(t *testing.T) {
		conversation := &entity.Conversation{ChatRoomId: room.Id, Query: "hello", CreatedAt: time.Now()}
		require.NoError(t, uow.ConversationRepository().Create(ctx, conversation))
		assert.Equal(t, "", conversation.ResponseMessage)

		conversation.ResponseMessage = "Local model response to: hello"
		conversation.GenerationMeta = map[string]interface{}{entity.GenerationMetaBackend: "local"}
		require.NoError(t, uow.ConversationRepository().UpdateResponse(ctx, conversation))

		found, err := uow.ConversationRepository().FindAll(ctx, specification.ByID{ID: conversation.Id})
		require.NoError(t, err)
		require.Len(t, found, 1)
		stored := found[0]
		assert.Equal(t, "hello", stored.Query)
		assert.Equal(t, "Local model response to: hello", stored.ResponseMessage)
		assert.Equal(t, "local", stored.GenerationMeta[entity.GenerationMetaBackend])

		message := &entity.Message{ConversationId: conversation.Id, SenderUsername: user.Username, CreatedAt: time.Now()}
		require.NoError(t, uow.MessageRepository().Create(ctx, message))

		messages, err := uow.MessageRepository().FindAll(ctx, specification.ByConversationIDs{ConversationIDs: []uint{conversation.Id}})
		require.NoError(t, err)
		require.Len(t, messages, 1)
		assert.Nil(t, messages[0].Rating)
	})

	t.Run("transaction rollback discards writes", func(t *testing.T) {
		txUow := unitofwork.NewRepositoryFactory(db).NewUnitOfWork(ctx)
		require.NoError(t, txUow.Begin(ctx))

		name := uniqueName("rolled-back")
		require.NoError(t, txUow.UserRepository().Create(ctx, &entity.User{Username: name, CreatedAt: time.Now()}))
		require.NoError(t, txUow.Rollback())

		found, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: name})
		require.NoError(t, err)
		assert.Nil(t, found)
	})

	t.Run("failed message insert keeps the earlier reply", func(t *testing.T) {
		conversations := service.NewConversationService(unitofwork.NewRepositoryFactory(db))

		conversation, err := conversations.CreateConversation(ctx, room.Id, "again")
		require.NoError(t, err)
		_, err = conversations.CompleteExchange(ctx, conversation, service.Reply{Text: "first reply", Backend: llm.KindLocal}, user.Username)
		require.NoError(t, err)

		// messages.conversation_id is unique, so a second exchange on the same row fails at the insert
		_, err = conversations.CompleteExchange(ctx, conversation, service.Reply{Text: "second reply", Backend: llm.KindLocal}, user.Username)
		require.Error(t, err)
		assert.True(t, database.IsUniqueViolation(err))

		found, err := uow.ConversationRepository().FindAll(ctx, specification.ByID{ID: conversation.Id})
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "first reply", found[0].ResponseMessage)
	})
}
