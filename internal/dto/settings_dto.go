package dto

import "time"

type UpdateSettingsRequest struct {
	IsLocal      bool     `json:"isLocal"`
	IsApi        bool     `json:"isApi"`
	DomainName   string   `json:"domainName" validate:"omitempty,oneof=togetherai openai anthropic google"`
	ModelName    string   `json:"modelName" validate:"max=255"`
	ApiKey       *string  `json:"apiKey"`
	Temperature  *float64 `json:"temperature" validate:"omitempty,gte=0,lte=2"`
	SystemPrompt *string  `json:"systemPrompt"`
}

type SettingsResponse struct {
	IsLocal      bool      `json:"isLocal"`
	IsApi        bool      `json:"isApi"`
	DomainName   string    `json:"domainName"`
	ModelName    string    `json:"modelName"`
	ApiKey       string    `json:"apiKey"` // masked
	Temperature  float64   `json:"temperature"`
	SystemPrompt string    `json:"systemPrompt"`
	Backend      string    `json:"backend"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
