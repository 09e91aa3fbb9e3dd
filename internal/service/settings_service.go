package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"ai-chatroom-be/internal/constant"
	"ai-chatroom-be/internal/dto"
	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/pkg/logger"
	"ai-chatroom-be/internal/repository/unitofwork"
	"ai-chatroom-be/pkg/llm"
)

type ISettingsService interface {
	// LoadSettings returns the singleton settings, creating the defaults on first use.
	LoadSettings(ctx context.Context) (*entity.Settings, error)
	ResolveBackend(ctx context.Context) (llm.Backend, error)
	EnsureDefaults(ctx context.Context) (*entity.Settings, error)
	Show(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type settingsService struct {
	uowFactory    unitofwork.RepositoryFactory
	endpoints     map[string]string
	defaultDomain string
	logger        logger.ILogger
}

func NewSettingsService(
	uowFactory unitofwork.RepositoryFactory,
	endpoints map[string]string,
	defaultDomain string,
	logger logger.ILogger,
) ISettingsService {
	return &settingsService{
		uowFactory:    uowFactory,
		endpoints:     endpoints,
		defaultDomain: defaultDomain,
		logger:        logger,
	}
}

// BackendFromSettings maps stored settings onto a backend variant.
// Local mode wins over API mode. API mode needs a domain with a known endpoint.
func BackendFromSettings(s *entity.Settings, endpoints map[string]string) llm.Backend {
	if s == nil {
		return llm.UnconfiguredBackend{}
	}
	if s.IsLocal {
		return llm.LocalBackend{}
	}
	if !s.IsApi {
		return llm.UnconfiguredBackend{}
	}

	domain := strings.ToLower(strings.TrimSpace(s.DomainName))
	endpoint, ok := endpoints[domain]
	if !ok || endpoint == "" {
		return llm.UnconfiguredBackend{}
	}

	return llm.RemoteBackend{
		Domain:       domain,
		Endpoint:     endpoint,
		APIKey:       s.ApiKey,
		Model:        s.ModelName,
		Temperature:  s.EffectiveTemperature(),
		SystemPrompt: s.SystemPrompt,
	}
}

func (s *settingsService) LoadSettings(ctx context.Context) (*entity.Settings, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	settings, err := uow.SettingsRepository().FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	return s.EnsureDefaults(ctx)
}

func (s *settingsService) ResolveBackend(ctx context.Context) (llm.Backend, error) {
	settings, err := s.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}
	return BackendFromSettings(settings, s.endpoints), nil
}

func (s *settingsService) EnsureDefaults(ctx context.Context) (*entity.Settings, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.SettingsRepository().FindActive(ctx)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	temperature := llm.DefaultTemperature
	now := time.Now()
	settings := &entity.Settings{
		IsLocal:     false,
		IsApi:       false,
		DomainName:  s.defaultDomain,
		Temperature: &temperature,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uow.SettingsRepository().Create(ctx, settings); err != nil {
		return nil, err
	}

	s.logger.Info(constant.ModuleSettings, "Default settings created", map[string]interface{}{
		"id":     settings.Id,
		"domain": settings.DomainName,
	})

	return settings, nil
}

func (s *settingsService) Show(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := s.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}
	return s.toResponse(settings), nil
}

func (s *settingsService) Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	if req == nil {
		return nil, errors.New("empty settings request")
	}

	settings, err := s.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}

	settings.IsLocal = req.IsLocal
	settings.IsApi = req.IsApi
	if req.DomainName != "" {
		settings.DomainName = req.DomainName
	}
	settings.ModelName = req.ModelName
	if req.ApiKey != nil {
		settings.ApiKey = *req.ApiKey
	}
	if req.Temperature != nil {
		t := *req.Temperature
		settings.Temperature = &t
	}
	if req.SystemPrompt != nil {
		settings.SystemPrompt = *req.SystemPrompt
	}
	settings.UpdatedAt = time.Now()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.SettingsRepository().Save(ctx, settings); err != nil {
		return nil, err
	}

	backend := BackendFromSettings(settings, s.endpoints)
	s.logger.Info(constant.ModuleSettings, "Settings updated", map[string]interface{}{
		"backend": string(backend.Kind()),
		"domain":  settings.DomainName,
		"model":   settings.ModelName,
	})

	return s.toResponse(settings), nil
}

func (s *settingsService) toResponse(settings *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		IsLocal:      settings.IsLocal,
		IsApi:        settings.IsApi,
		DomainName:   settings.DomainName,
		ModelName:    settings.ModelName,
		ApiKey:       MaskAPIKey(settings.ApiKey),
		Temperature:  settings.EffectiveTemperature(),
		SystemPrompt: settings.SystemPrompt,
		Backend:      string(BackendFromSettings(settings, s.endpoints).Kind()),
		UpdatedAt:    settings.UpdatedAt,
	}
}

// MaskAPIKey keeps the last four characters of keys longer than eight.
func MaskAPIKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
