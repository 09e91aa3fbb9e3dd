package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ai-chatroom-be/internal/constant"
	"ai-chatroom-be/internal/dto"
	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/pkg/logger"
	"ai-chatroom-be/internal/service"

	"github.com/gofiber/websocket/v2"
)

// ChatSession drives one websocket connection: validate the user and room once,
// then answer every text frame in arrival order.
type ChatSession struct {
	roomService         service.IRoomService
	conversationService service.IConversationService
	responseService     service.IResponseService
	publisherService    service.IPublisherService
	hub                 *Hub
	logger              logger.ILogger
	maxMessageSize      int64
}

// NewChatSession accepts a nil publisherService; exchanges are then not announced.
func NewChatSession(
	roomService service.IRoomService,
	conversationService service.IConversationService,
	responseService service.IResponseService,
	publisherService service.IPublisherService,
	hub *Hub,
	logger logger.ILogger,
	maxMessageSize int64,
) *ChatSession {
	return &ChatSession{
		roomService:         roomService,
		conversationService: conversationService,
		responseService:     responseService,
		publisherService:    publisherService,
		hub:                 hub,
		logger:              logger,
		maxMessageSize:      maxMessageSize,
	}
}

// encodeEvent is swapped in tests.
var encodeEvent = json.Marshal

type exchange struct {
	conversation *entity.Conversation
	message      *entity.Message
	reply        service.Reply
}

// Run blocks until the client disconnects or the session fails, and always
// closes conn. It returns nil on a client disconnect, the lookup error when
// validation rejects the connection, and the storage error otherwise.
func (s *ChatSession) Run(ctx context.Context, conn Conn, roomID uint, username string) error {
	defer conn.Close()

	details := map[string]interface{}{
		"room_id":  roomID,
		"username": username,
	}

	user, err := s.roomService.FindUser(ctx, username)
	if err != nil {
		return s.reject(conn, constant.WsErrUserNotFound, service.ErrUserNotFound, err, details)
	}

	room, err := s.roomService.FindRoom(ctx, roomID, user.Username)
	if err != nil {
		return s.reject(conn, constant.WsErrRoomNotFound, service.ErrRoomNotFound, err, details)
	}

	if limiter, ok := conn.(readLimiter); ok && s.maxMessageSize > 0 {
		limiter.SetReadLimit(s.maxMessageSize)
	}

	session := s.hub.Register(room.Id, user.Username)
	defer s.hub.Unregister(session.ID)
	details["session_id"] = session.ID

	for {
		messageType, data, err := conn.ReadMessage()
		if err != nil {
			s.logDisconnect(err, details)
			return nil
		}
		if messageType != websocket.TextMessage {
			continue
		}

		result, err := s.exchange(ctx, room.Id, user.Username, string(data))
		if err != nil {
			s.logger.Error(constant.ModuleChatSession, "Failed to store conversation", withError(details, err))
			s.send(conn, constant.WsErrStorage, details)
			return err
		}

		if err := conn.WriteMessage(websocket.TextMessage, []byte(result.conversation.ResponseMessage)); err != nil {
			s.logger.Warn(constant.ModuleChatSession, "Failed to send reply, client gone", withError(details, err))
			return nil
		}

		s.hub.Touch(session.ID)
		s.announce(ctx, room.Id, result)
	}
}

// exchange persists the query, generates the reply, stores it and records the sender, in that order.
func (s *ChatSession) exchange(ctx context.Context, roomID uint, username, query string) (*exchange, error) {
	conversation, err := s.conversationService.CreateConversation(ctx, roomID, query)
	if err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}

	reply := s.responseService.Generate(ctx, query)

	message, err := s.conversationService.CompleteExchange(ctx, conversation, reply, username)
	if err != nil {
		return nil, err
	}

	return &exchange{
		conversation: conversation,
		message:      message,
		reply:        reply,
	}, nil
}

func (s *ChatSession) reject(conn Conn, text string, notFound, err error, details map[string]interface{}) error {
	if !errors.Is(err, notFound) {
		s.logger.Error(constant.ModuleChatSession, "Validation lookup failed", withError(details, err))
		s.send(conn, constant.WsErrStorage, details)
		return err
	}

	s.logger.Warn(constant.ModuleChatSession, "Connection rejected", withError(details, err))
	s.send(conn, text, details)
	return err
}

func (s *ChatSession) send(conn Conn, text string, details map[string]interface{}) {
	if err := conn.WriteMessage(websocket.TextMessage, []byte(text)); err != nil {
		s.logger.Warn(constant.ModuleChatSession, "Failed to send frame", withError(details, err))
		return
	}
	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

func (s *ChatSession) announce(ctx context.Context, roomID uint, result *exchange) {
	if s.publisherService == nil {
		return
	}

	payload, err := encodeEvent(dto.ExchangeCompletedEvent{
		RoomId:         roomID,
		ConversationId: result.conversation.Id,
		MessageId:      result.message.Id,
		SenderUsername: result.message.SenderUsername,
		Backend:        string(result.reply.Backend),
		Model:          result.reply.Model,
		Failed:         result.reply.Failed,
		LatencyMs:      result.reply.Latency.Milliseconds(),
		OccurredAt:     time.Now(),
	})
	if err != nil {
		s.logger.Warn(constant.ModuleChatSession, "Failed to encode exchange event", map[string]interface{}{
			"conversation_id": result.conversation.Id,
			"error":           err.Error(),
		})
		return
	}

	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn(constant.ModuleChatSession, "Failed to publish exchange event", map[string]interface{}{
			"conversation_id": result.conversation.Id,
			"error":           err.Error(),
		})
	}
}

func (s *ChatSession) logDisconnect(err error, details map[string]interface{}) {
	if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseNoStatusReceived) {
		s.logger.Warn(constant.ModuleChatSession, "Connection closed unexpectedly", withError(details, err))
		return
	}
	s.logger.Info(constant.ModuleChatSession, "Client disconnected", details)
}

func withError(details map[string]interface{}, err error) map[string]interface{} {
	merged := make(map[string]interface{}, len(details)+1)
	for k, v := range details {
		merged[k] = v
	}
	merged["error"] = err.Error()
	return merged
}
