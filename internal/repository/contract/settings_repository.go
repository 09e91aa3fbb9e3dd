package contract

import (
	"context"

	"ai-chatroom-be/internal/entity"
)

// SettingsRepository treats the settings table as a singleton: the row with the lowest id.
type SettingsRepository interface {
	FindActive(ctx context.Context) (*entity.Settings, error)
	Create(ctx context.Context, settings *entity.Settings) error
	Save(ctx context.Context, settings *entity.Settings) error
}
