package model

import "time"

type UserAccount struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (UserAccount) TableName() string {
	return "users"
}
