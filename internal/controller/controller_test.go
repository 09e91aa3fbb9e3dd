package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ai-chatroom-be/internal/dto"
	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/pkg/logger"
	"ai-chatroom-be/internal/pkg/serverutils"
	"ai-chatroom-be/internal/repository/memory"
	"ai-chatroom-be/internal/service"
	internalWS "ai-chatroom-be/internal/websocket"
	"ai-chatroom-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSettingsService struct {
	updated *dto.UpdateSettingsRequest
}

func (s *stubSettingsService) LoadSettings(ctx context.Context) (*entity.Settings, error) {
	return &entity.Settings{}, nil
}
func (s *stubSettingsService) ResolveBackend(ctx context.Context) (llm.Backend, error) {
	return llm.LocalBackend{}, nil
}
func (s *stubSettingsService) EnsureDefaults(ctx context.Context) (*entity.Settings, error) {
	return &entity.Settings{}, nil
}
func (s *stubSettingsService) Show(ctx context.Context) (*dto.SettingsResponse, error) {
	return &dto.SettingsResponse{DomainName: "togetherai", Backend: "unconfigured", ApiKey: "****abcd"}, nil
}
func (s *stubSettingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	s.updated = req
	return &dto.SettingsResponse{IsLocal: req.IsLocal, Backend: "local"}, nil
}

type stubConversationService struct{}

func (stubConversationService) CreateConversation(ctx context.Context, roomID uint, query string) (*entity.Conversation, error) {
	return nil, nil
}
func (stubConversationService) CompleteExchange(ctx context.Context, c *entity.Conversation, reply service.Reply, sender string) (*entity.Message, error) {
	return nil, nil
}
func (stubConversationService) History(ctx context.Context, roomID uint, owner string, limit, offset int) (*dto.ConversationHistoryResponse, error) {
	if owner != "alice" {
		return nil, service.ErrRoomNotFound
	}
	return &dto.ConversationHistoryResponse{
		RoomId:        roomID,
		Conversations: []*dto.ConversationItem{{Id: 1, Query: "hello", Response: "hi", CreatedAt: time.Now()}},
	}, nil
}

func newTestApp(settings service.ISettingsService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")

	hub := internalWS.NewHub(memory.NewSessionRepository(), nil, time.Hour, logger.NewNopLogger())
	hub.Register(7, "alice")

	NewSettingsController(settings).RegisterRoutes(api)
	NewChatController(stubConversationService{}, hub).RegisterRoutes(api)
	return app
}

func decode(t *testing.T, body io.Reader) map[string]interface{} {
	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestSettingsController_Show(t *testing.T) {
	app := newTestApp(&stubSettingsService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/settings/v1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decode(t, resp.Body)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, "****abcd", data["apiKey"])
}

func TestSettingsController_Update(t *testing.T) {
	settings := &stubSettingsService{}
	app := newTestApp(settings)

	req := httptest.NewRequest("PUT", "/api/settings/v1", strings.NewReader(`{"isLocal":true,"temperature":0.5}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotNil(t, settings.updated)
	assert.True(t, settings.updated.IsLocal)
	assert.Equal(t, 0.5, *settings.updated.Temperature)
}

func TestSettingsController_UpdateRejectsInvalidInput(t *testing.T) {
	settings := &stubSettingsService{}
	app := newTestApp(settings)

	req := httptest.NewRequest("PUT", "/api/settings/v1", strings.NewReader(`{"isApi":true,"domainName":"example","temperature":5}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Nil(t, settings.updated)
	body := decode(t, resp.Body)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "DomainName")
}

func TestChatController_History(t *testing.T) {
	app := newTestApp(&stubSettingsService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/chat/v1/rooms/7/conversations?username=alice", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/chat/v1/rooms/7/conversations?username=bob", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/chat/v1/rooms/7/conversations", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/chat/v1/rooms/abc/conversations?username=alice", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestChatController_Health(t *testing.T) {
	app := newTestApp(&stubSettingsService{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	data := decode(t, resp.Body)["data"].(map[string]interface{})
	assert.Equal(t, "ok", data["status"])
	assert.Equal(t, float64(1), data["live_sessions"])
	assert.Equal(t, float64(-1), data["cluster_sessions"])
}
