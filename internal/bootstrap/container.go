package bootstrap

import (
	"context"
	"log"

	"ai-chatroom-be/internal/config"
	"ai-chatroom-be/internal/controller"
	"ai-chatroom-be/internal/handler"
	"ai-chatroom-be/internal/pkg/logger"
	"ai-chatroom-be/internal/repository/memory"
	"ai-chatroom-be/internal/repository/unitofwork"
	"ai-chatroom-be/internal/service"
	"ai-chatroom-be/internal/websocket"
	"ai-chatroom-be/pkg/llm/factory"
	pktNats "ai-chatroom-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	SettingsController controller.ISettingsController
	ChatController     controller.IChatController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	SettingsService service.ISettingsService

	// WebSockets
	ChatHandler  *handler.ChatHandler
	WebSocketHub *websocket.Hub

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.IsProduction())
	wsLogger := logger.NewIsolatedLogger(cfg.App.WsLogFilePath)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	c := &Container{}

	// 3. Infrastructure
	// NATS is optional; without it exchange events are only logged
	var eventPublisher service.EventPublisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventPublisher = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}

	// Redis is optional; without it presence is local only
	var rdb *redis.Client
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb = redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v (cluster presence disabled)", err)
		_ = rdb.Close()
		rdb = nil
	} else {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	// 4. Services
	settingsService := service.NewSettingsService(
		uowFactory,
		cfg.LLM.Endpoints(),
		cfg.LLM.DefaultDomain,
		sysLogger,
	)
	responseService := service.NewResponseService(
		settingsService,
		factory.NewProvider,
		cfg.LLM.RequestTimeout,
		sysLogger,
	)
	roomService := service.NewRoomService(uowFactory)
	conversationService := service.NewConversationService(uowFactory)

	publisherService := service.NewPublisherService(cfg.Chat.EventsTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.Chat.EventsTopic,
		eventPublisher,
		sysLogger,
	)

	// 5. WebSocket
	sessionRepo := memory.NewSessionRepository()
	wsHub := websocket.NewHub(sessionRepo, rdb, cfg.Chat.PresenceTTL, wsLogger)
	chatSession := websocket.NewChatSession(
		roomService,
		conversationService,
		responseService,
		publisherService,
		wsHub,
		wsLogger,
		cfg.Chat.MaxMessageSize,
	)

	c.closers = append(c.closers, func() { _ = sysLogger.Sync() }, func() { _ = wsLogger.Sync() })

	// 6. Controllers
	c.SettingsController = controller.NewSettingsController(settingsService)
	c.ChatController = controller.NewChatController(conversationService, wsHub)
	c.ChatHandler = handler.NewChatHandler(chatSession, wsLogger)
	c.WebSocketHub = wsHub
	c.ConsumerService = consumerService
	c.SettingsService = settingsService

	return c
}

// Close releases connections opened by NewContainer.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
}
