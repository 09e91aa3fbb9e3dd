package entity

import (
	"time"

	"ai-chatroom-be/pkg/llm"
)

// Settings is the singleton response-generation configuration.
type Settings struct {
	Id           uint
	IsLocal      bool
	IsApi        bool
	DomainName   string
	ModelName    string
	ApiKey       string
	Temperature  *float64
	SystemPrompt string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// EffectiveTemperature falls back to llm.DefaultTemperature when no temperature is stored.
func (s *Settings) EffectiveTemperature() float64 {
	if s.Temperature == nil {
		return llm.DefaultTemperature
	}
	return *s.Temperature
}
