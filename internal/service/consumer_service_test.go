package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"ai-chatroom-be/internal/constant"
	"ai-chatroom-be/internal/dto"
	"ai-chatroom-be/internal/pkg/logger"
	"ai-chatroom-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (p *recordingPublisher) Publish(ctx context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) received() []events.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]events.Event(nil), p.events...)
}

func TestConsumerService_ForwardsExchangeEvents(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	forwarder := &recordingPublisher{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := NewConsumerService(pubSub, "exchanges", forwarder, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	publisher := NewPublisherService("exchanges", pubSub)

	// Malformed payloads are dropped
	require.NoError(t, publisher.Publish(ctx, []byte("not json")))

	payload, err := json.Marshal(dto.ExchangeCompletedEvent{
		RoomId:         7,
		ConversationId: 11,
		MessageId:      12,
		SenderUsername: "alice",
		Backend:        "local",
		LatencyMs:      3,
		OccurredAt:     time.Now(),
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(ctx, payload))

	assert.Eventually(t, func() bool {
		return len(forwarder.received()) == 1
	}, 2*time.Second, 10*time.Millisecond)

	event := forwarder.received()[0]
	assert.Equal(t, constant.EventExchangeCompleted, event.EventType())
	assert.Equal(t, uint(11), event.Payload()["conversation_id"])
	assert.Equal(t, "alice", event.Payload()["sender_username"])
	_, hasModel := event.Payload()["model"]
	assert.False(t, hasModel)
}

func TestConsumerService_NilForwarderOnlyLogs(t *testing.T) {
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	defer pubSub.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := NewConsumerService(pubSub, "exchanges", nil, logger.NewNopLogger())
	require.NoError(t, consumer.Consume(ctx))

	payload, err := json.Marshal(dto.ExchangeCompletedEvent{ConversationId: 1})
	require.NoError(t, err)
	assert.NoError(t, NewPublisherService("exchanges", pubSub).Publish(ctx, payload))
}
