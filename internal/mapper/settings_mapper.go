package mapper

import (
	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/model"
)

type SettingsMapper struct{}

func NewSettingsMapper() *SettingsMapper {
	return &SettingsMapper{}
}

func (m *SettingsMapper) ToEntity(s *model.Setting) *entity.Settings {
	if s == nil {
		return nil
	}
	return &entity.Settings{
		Id:           s.Id,
		IsLocal:      s.IsLocal,
		IsApi:        s.IsApi,
		DomainName:   s.DomainName,
		ModelName:    s.ModelName,
		ApiKey:       s.ApiKey,
		Temperature:  s.Temperature,
		SystemPrompt: s.SystemPrompt,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (m *SettingsMapper) ToModel(s *entity.Settings) *model.Setting {
	if s == nil {
		return nil
	}
	return &model.Setting{
		Id:           s.Id,
		IsLocal:      s.IsLocal,
		IsApi:        s.IsApi,
		DomainName:   s.DomainName,
		ModelName:    s.ModelName,
		ApiKey:       s.ApiKey,
		Temperature:  s.Temperature,
		SystemPrompt: s.SystemPrompt,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
