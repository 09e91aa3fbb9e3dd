package service

import (
	"context"
	"encoding/json"

	"ai-chatroom-be/internal/constant"
	"ai-chatroom-be/internal/dto"
	"ai-chatroom-be/internal/pkg/logger"
	"ai-chatroom-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventPublisher forwards domain events to the external bus.
type EventPublisher interface {
	Publish(ctx context.Context, event events.Event) error
}

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub         *gochannel.GoChannel
	topicName      string
	eventPublisher EventPublisher
	logger         logger.ILogger
}

// NewConsumerService drains completed exchanges. eventPublisher may be nil,
// in which case events are only logged.
func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	eventPublisher EventPublisher,
	logger logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:         pubSub,
		topicName:      topicName,
		eventPublisher: eventPublisher,
		logger:         logger,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	// Always ack: a broken payload would otherwise be redelivered forever
	defer msg.Ack()

	var payload dto.ExchangeCompletedEvent
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error(constant.ModuleConsumer, "Failed to unmarshal exchange event", map[string]interface{}{
			"error":      err.Error(),
			"message_id": msg.UUID,
		})
		return
	}

	cs.logger.Info(constant.ModuleConsumer, "Exchange completed", map[string]interface{}{
		"room_id":         payload.RoomId,
		"conversation_id": payload.ConversationId,
		"backend":         payload.Backend,
		"failed":          payload.Failed,
		"latency_ms":      payload.LatencyMs,
	})

	if cs.eventPublisher == nil {
		return
	}

	if err := cs.eventPublisher.Publish(ctx, ExchangeEvent(payload)); err != nil {
		cs.logger.Warn(constant.ModuleConsumer, "Failed to forward exchange event", map[string]interface{}{
			"error":           err.Error(),
			"conversation_id": payload.ConversationId,
		})
	}
}

// ExchangeEvent converts a completed exchange into a bus event.
func ExchangeEvent(payload dto.ExchangeCompletedEvent) events.BaseEvent {
	data := map[string]interface{}{
		"room_id":         payload.RoomId,
		"conversation_id": payload.ConversationId,
		"message_id":      payload.MessageId,
		"sender_username": payload.SenderUsername,
		"backend":         payload.Backend,
		"failed":          payload.Failed,
		"latency_ms":      payload.LatencyMs,
	}
	if payload.Model != "" {
		data["model"] = payload.Model
	}
	return events.BaseEvent{
		Type:       constant.EventExchangeCompleted,
		Data:       data,
		OccurredAt: payload.OccurredAt,
	}
}

