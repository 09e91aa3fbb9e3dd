package websocket

import (
	"context"
	"strconv"
	"time"

	"ai-chatroom-be/internal/constant"
	"ai-chatroom-be/internal/pkg/logger"
	"ai-chatroom-be/internal/repository/memory"
	"ai-chatroom-be/pkg/store"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// PresenceKey is a sorted set of session ids scored by expiry, shared by all instances.
const PresenceKey = "chat:presence"

const redisTimeout = 2 * time.Second

// Hub tracks the chat sessions open on this instance and mirrors them to redis
// so the cluster-wide count is available to every instance.
type Hub struct {
	sessions    *memory.SessionRepository
	rdb         *redis.Client
	presenceTTL time.Duration
	logger      logger.ILogger
}

// NewHub accepts a nil redis client; presence is then local only.
func NewHub(sessions *memory.SessionRepository, rdb *redis.Client, presenceTTL time.Duration, log logger.ILogger) *Hub {
	return &Hub{
		sessions:    sessions,
		rdb:         rdb,
		presenceTTL: presenceTTL,
		logger:      log,
	}
}

func (h *Hub) Register(roomID uint, username string) store.Session {
	now := time.Now()
	session := store.Session{
		ID:           uuid.NewString(),
		RoomID:       roomID,
		Username:     username,
		ConnectedAt:  now,
		LastActivity: now,
	}
	h.sessions.Save(session)
	h.markPresent(session.ID, now)

	h.logger.Info(constant.ModuleHub, "Session registered", map[string]interface{}{
		"session_id": session.ID,
		"room_id":    roomID,
		"username":   username,
	})
	return session
}

// Touch records a completed exchange.
func (h *Hub) Touch(sessionID string) {
	session, ok := h.sessions.Get(sessionID)
	if !ok {
		return
	}
	now := time.Now()
	session.LastActivity = now
	session.Exchanges++
	h.sessions.Save(session)
	h.markPresent(sessionID, now)
}

func (h *Hub) Unregister(sessionID string) {
	session, ok := h.sessions.Get(sessionID)
	h.sessions.Delete(sessionID)

	if h.rdb != nil {
		ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
		defer cancel()
		if err := h.rdb.ZRem(ctx, PresenceKey, sessionID).Err(); err != nil {
			h.logger.Warn(constant.ModuleHub, "Failed to remove presence", map[string]interface{}{
				"session_id": sessionID,
				"error":      err.Error(),
			})
		}
	}

	if ok {
		h.logger.Info(constant.ModuleHub, "Session unregistered", map[string]interface{}{
			"session_id": sessionID,
			"room_id":    session.RoomID,
			"username":   session.Username,
			"exchanges":  session.Exchanges,
		})
	}
}

func (h *Hub) Get(sessionID string) (store.Session, bool) {
	return h.sessions.Get(sessionID)
}

func (h *Hub) LocalCount() int {
	return h.sessions.Count()
}

// ClusterCount returns the number of live sessions across instances, or -1
// when redis is not configured or unreachable.
func (h *Hub) ClusterCount(ctx context.Context) int64 {
	if h.rdb == nil {
		return -1
	}

	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	now := strconv.FormatInt(time.Now().Unix(), 10)
	pipe := h.rdb.TxPipeline()
	pipe.ZRemRangeByScore(ctx, PresenceKey, "-inf", "("+now)
	card := pipe.ZCard(ctx, PresenceKey)
	if _, err := pipe.Exec(ctx); err != nil {
		h.logger.Warn(constant.ModuleHub, "Failed to read cluster presence", map[string]interface{}{
			"error": err.Error(),
		})
		return -1
	}
	return card.Val()
}

// KeepPresence re-marks every local session in redis at half the presence TTL,
// so idle connections stay in the cluster count. It returns when ctx is done.
func (h *Hub) KeepPresence(ctx context.Context) {
	if h.rdb == nil || h.presenceTTL <= 0 {
		return
	}

	ticker := time.NewTicker(h.presenceTTL / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			h.refreshPresence(now)
		}
	}
}

func (h *Hub) refreshPresence(now time.Time) {
	for _, session := range h.sessions.List() {
		h.markPresent(session.ID, now)
	}
}

func (h *Hub) markPresent(sessionID string, at time.Time) {
	if h.rdb == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisTimeout)
	defer cancel()

	expiry := float64(at.Add(h.presenceTTL).Unix())
	if err := h.rdb.ZAdd(ctx, PresenceKey, redis.Z{Score: expiry, Member: sessionID}).Err(); err != nil {
		h.logger.Warn(constant.ModuleHub, "Failed to mark presence", map[string]interface{}{
			"session_id": sessionID,
			"error":      err.Error(),
		})
	}
}
