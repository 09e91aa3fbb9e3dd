package entity

import "time"

type User struct {
	Id        uint
	Username  string
	CreatedAt time.Time
}
