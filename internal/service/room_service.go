package service

import (
	"context"
	"errors"
	"time"

	"ai-chatroom-be/internal/dto"
	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/pkg/serverutils"
	"ai-chatroom-be/internal/repository/specification"
	"ai-chatroom-be/internal/repository/unitofwork"
	"ai-chatroom-be/pkg/database"
)

type IRoomService interface {
	FindUser(ctx context.Context, username string) (*entity.User, error)
	// FindRoom only returns rooms owned by owner.
	FindRoom(ctx context.Context, id uint, owner string) (*entity.Room, error)
	EnsureUser(ctx context.Context, username string) (*entity.User, error)
	CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*entity.Room, error)
}

type roomService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewRoomService(uowFactory unitofwork.RepositoryFactory) IRoomService {
	return &roomService{
		uowFactory: uowFactory,
	}
}

func (s *roomService) FindUser(ctx context.Context, username string) (*entity.User, error) {
	if username == "" {
		return nil, ErrUserNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *roomService) FindRoom(ctx context.Context, id uint, owner string) (*entity.Room, error) {
	if id == 0 {
		return nil, ErrRoomNotFound
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	room, err := uow.ChatRoomRepository().FindOne(ctx,
		specification.ByID{ID: id},
		specification.OwnedBy{Username: owner},
	)
	if err != nil {
		return nil, err
	}
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

func (s *roomService) EnsureUser(ctx context.Context, username string) (*entity.User, error) {
	user, err := s.FindUser(ctx, username)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrUserNotFound) || username == "" {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user = &entity.User{
		Username:  username,
		CreatedAt: time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		if database.IsUniqueViolation(err) {
			return s.FindUser(ctx, username)
		}
		return nil, err
	}
	return user, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *dto.CreateRoomRequest) (*entity.Room, error) {
	if err := serverutils.ValidateRequest(req); err != nil {
		return nil, err
	}

	if _, err := s.FindUser(ctx, req.Owner); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, err := uow.ChatRoomRepository().Count(ctx,
		specification.OwnedBy{Username: req.Owner},
		specification.ByRoomName{RoomName: req.RoomName},
	)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, ErrDuplicateRoomName
	}

	now := time.Now()
	room := &entity.Room{
		RoomName:  req.RoomName,
		Username:  req.Owner,
		CreatedAt: now,
		UpdatedAt: &now,
	}
	if err := uow.ChatRoomRepository().Create(ctx, room); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrDuplicateRoomName
		}
		return nil, err
	}
	return room, nil
}
