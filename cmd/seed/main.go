package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"ai-chatroom-be/internal/config"
	"ai-chatroom-be/internal/dto"
	"ai-chatroom-be/internal/pkg/logger"
	"ai-chatroom-be/internal/repository/unitofwork"
	"ai-chatroom-be/internal/service"
	"ai-chatroom-be/pkg/database"

	"github.com/fatih/color"
)

// Seeds a user, one of their rooms and the response settings for local testing.
func main() {
	username := flag.String("user", "alice", "username to create")
	roomName := flag.String("room", "general", "room to create for the user")
	mode := flag.String("mode", "local", "response mode: local, api or none")
	domain := flag.String("domain", "", "API domain when mode=api (togetherai, openai)")
	model := flag.String("model", "", "model name when mode=api")
	apiKey := flag.String("api-key", "", "API key when mode=api")
	flag.Parse()

	cfg := config.Load()
	ctx := context.Background()

	db, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	roomService := service.NewRoomService(uowFactory)
	settingsService := service.NewSettingsService(uowFactory, cfg.LLM.Endpoints(), cfg.LLM.DefaultDomain, logger.NewNopLogger())

	color.Cyan("Seeding chat fixtures\n")

	user, err := roomService.EnsureUser(ctx, *username)
	if err != nil {
		color.Red("Failed to create user: %v", err)
		return
	}
	color.Green("User: %s (id %d)", user.Username, user.Id)

	room, err := roomService.CreateRoom(ctx, &dto.CreateRoomRequest{Owner: user.Username, RoomName: *roomName})
	if err != nil {
		color.Red("Failed to create room: %v", err)
		return
	}
	color.Green("Room: %s (id %d)", room.RoomName, room.Id)

	req := &dto.UpdateSettingsRequest{DomainName: *domain, ModelName: *model}
	switch strings.ToLower(*mode) {
	case "local":
		req.IsLocal = true
	case "api":
		req.IsApi = true
		if *apiKey != "" {
			req.ApiKey = apiKey
		}
	case "none":
	default:
		color.Red("Unknown mode %q", *mode)
		return
	}

	settings, err := settingsService.Update(ctx, req)
	if err != nil {
		color.Red("Failed to update settings: %v", err)
		return
	}
	color.Green("Settings: backend=%s domain=%s model=%s", settings.Backend, settings.DomainName, settings.ModelName)

	color.Yellow("\nConnect with: ws://localhost:%s/ws/chat/%d/%s", cfg.App.Port, room.Id, user.Username)
}
