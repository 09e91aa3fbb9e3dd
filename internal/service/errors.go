package service

import "errors"

var (
	ErrUserNotFound      = errors.New("user does not exist")
	ErrRoomNotFound      = errors.New("room does not exist or does not belong to this user")
	ErrDuplicateRoomName = errors.New("room with this name already exists for this user")
)
