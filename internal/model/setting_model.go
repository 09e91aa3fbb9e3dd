package model

import "time"

type Setting struct {
	Id           uint      `gorm:"primaryKey;autoIncrement"`
	IsLocal      bool      `gorm:"not null"`
	IsApi        bool      `gorm:"not null"`
	DomainName   string    `gorm:"type:varchar(50);not null"`
	ModelName    string    `gorm:"type:varchar(255);not null"`
	ApiKey       string    `gorm:"type:text;not null"`
	Temperature  *float64  `gorm:"type:double precision"`
	SystemPrompt string    `gorm:"type:text;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Setting) TableName() string {
	return "settings"
}

// All lists every table owned by this service, in dependency order.
func All() []interface{} {
	return []interface{}{
		&UserAccount{},
		&ChatRoom{},
		&Conversation{},
		&Message{},
		&Setting{},
	}
}
