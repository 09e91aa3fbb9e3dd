package handler

import (
	"context"
	"net/url"
	"strconv"

	"ai-chatroom-be/internal/pkg/logger"
	internalWS "ai-chatroom-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

type ChatHandler struct {
	session *internalWS.ChatSession
	logger  logger.ILogger
}

func NewChatHandler(session *internalWS.ChatSession, log logger.ILogger) *ChatHandler {
	return &ChatHandler{
		session: session,
		logger:  log,
	}
}

func (h *ChatHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/ws/chat/:roomId/:username", h.ServeChat)
}

// ServeChat upgrades unconditionally. Unknown users and rooms are reported
// over the socket, never as an HTTP rejection.
func (h *ChatHandler) ServeChat(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	return websocket.New(func(conn *websocket.Conn) {
		// Params on conn are copies; fiber's own are reused once the handler returns.
		roomID, username := sessionTarget(conn.Params("roomId"), conn.Params("username"))
		details := map[string]interface{}{"room_id": roomID, "username": username}
		h.logger.Info("ChatHandler", "Starting WebSocket session", details)

		if err := h.session.Run(context.Background(), conn, roomID, username); err != nil {
			details["error"] = err.Error()
			h.logger.Warn("ChatHandler", "WebSocket session ended with error", details)
			return
		}
		h.logger.Info("ChatHandler", "WebSocket session ended", details)
	})(c)
}

func sessionTarget(rawRoomID, rawUsername string) (uint, string) {
	username := rawUsername
	if unescaped, err := url.PathUnescape(rawUsername); err == nil {
		username = unescaped
	}
	return ParseRoomID(rawRoomID), username
}

// ParseRoomID maps anything that is not a positive integer to 0, which never names a room.
func ParseRoomID(raw string) uint {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0
	}
	return uint(id)
}
