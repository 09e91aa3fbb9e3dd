package implementation

import (
	"context"
	"errors"

	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/mapper"
	"ai-chatroom-be/internal/model"
	"ai-chatroom-be/internal/repository/contract"
	"ai-chatroom-be/internal/repository/scope"

	"gorm.io/gorm"
)

type settingsRepository struct {
	db     *gorm.DB
	mapper *mapper.SettingsMapper
}

func NewSettingsRepository(db *gorm.DB) contract.SettingsRepository {
	return &settingsRepository{
		db:     db,
		mapper: mapper.NewSettingsMapper(),
	}
}

func (r *settingsRepository) FindActive(ctx context.Context) (*entity.Settings, error) {
	var m model.Setting
	if err := r.db.WithContext(ctx).Scopes(scope.OrderByIdAsc).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *settingsRepository) Create(ctx context.Context, settings *entity.Settings) error {
	m := r.mapper.ToModel(settings)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*settings = *r.mapper.ToEntity(m)
	return nil
}

func (r *settingsRepository) Save(ctx context.Context, settings *entity.Settings) error {
	m := r.mapper.ToModel(settings)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*settings = *r.mapper.ToEntity(m)
	return nil
}
