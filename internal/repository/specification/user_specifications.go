package specification

import (
	"gorm.io/gorm"
)

type ByUsername struct {
	Username string
}

func (s ByUsername) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}

// OwnedBy restricts rooms to the owning username.
type OwnedBy struct {
	Username string
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("username = ?", s.Username)
}
