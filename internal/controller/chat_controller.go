package controller

import (
	"errors"

	"ai-chatroom-be/internal/dto"
	"ai-chatroom-be/internal/pkg/serverutils"
	"ai-chatroom-be/internal/service"
	internalWS "ai-chatroom-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	History(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IConversationService
	hub     *internalWS.Hub
}

func NewChatController(service service.IConversationService, hub *internalWS.Hub) IChatController {
	return &chatController{
		service: service,
		hub:     hub,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)

	h := r.Group("/chat/v1")
	h.Get("rooms/:roomId/conversations", c.History)
}

func (c *chatController) History(ctx *fiber.Ctx) error {
	roomID, err := ctx.ParamsInt("roomId")
	if err != nil || roomID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "invalid room id")
	}

	username := ctx.Query("username")
	if username == "" {
		return fiber.NewError(fiber.StatusBadRequest, "username is required")
	}

	res, err := c.service.History(
		ctx.Context(),
		uint(roomID),
		username,
		ctx.QueryInt("limit", service.DefaultHistoryLimit),
		ctx.QueryInt("offset", 0),
	)
	if errors.Is(err, service.ErrRoomNotFound) {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get conversations", res))
}

func (c *chatController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("OK", dto.HealthResponse{
		Status:          "ok",
		LiveSessions:    c.hub.LocalCount(),
		ClusterSessions: c.hub.ClusterCount(ctx.Context()),
	}))
}
