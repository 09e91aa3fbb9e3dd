package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"ai-chatroom-be/internal/entity"
	"ai-chatroom-be/internal/repository/contract"
	"ai-chatroom-be/internal/repository/specification"
	"ai-chatroom-be/internal/repository/unitofwork"
)

var errStoreDown = errors.New("store unavailable")

// memoryStore backs every fake repository. Only the specifications used by the
// services are understood.
type memoryStore struct {
	mu     sync.Mutex
	nextID uint

	users         []*entity.User
	rooms         []*entity.Room
	conversations []*entity.Conversation
	messages      []*entity.Message
	settings      []*entity.Settings

	failUsers    error
	failSettings error
	failMessages error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{}
}

func (s *memoryStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *memoryStore) factory() unitofwork.RepositoryFactory {
	return fakeFactory{s: s}
}

func (s *memoryStore) addUser(username string) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := &entity.User{Id: s.id(), Username: username}
	s.users = append(s.users, u)
	return u
}

func (s *memoryStore) addRoom(owner, name string) *entity.Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := &entity.Room{Id: s.id(), Username: owner, RoomName: name}
	s.rooms = append(s.rooms, r)
	return r
}

type fakeFactory struct{ s *memoryStore }

func (f fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{s: f.s}
}

// fakeUow snapshots conversations and messages on Begin and restores them on Rollback.
type fakeUow struct {
	s        *memoryStore
	snapshot *memorySnapshot
}

type memorySnapshot struct {
	conversations []entity.Conversation
	messages      []*entity.Message
}

func (u *fakeUow) Begin(ctx context.Context) error {
	if u.snapshot != nil {
		return errors.New("transaction already started")
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	snap := &memorySnapshot{messages: append([]*entity.Message(nil), u.s.messages...)}
	for _, c := range u.s.conversations {
		snap.conversations = append(snap.conversations, *c)
	}
	u.snapshot = snap
	return nil
}

func (u *fakeUow) Commit() error {
	if u.snapshot == nil {
		return errors.New("no transaction to commit")
	}
	u.snapshot = nil
	return nil
}

func (u *fakeUow) Rollback() error {
	if u.snapshot == nil {
		return errors.New("no transaction to rollback")
	}
	u.s.mu.Lock()
	defer u.s.mu.Unlock()
	u.s.conversations = u.s.conversations[:0]
	for i := range u.snapshot.conversations {
		c := u.snapshot.conversations[i]
		u.s.conversations = append(u.s.conversations, &c)
	}
	u.s.messages = u.snapshot.messages
	u.snapshot = nil
	return nil
}

func (u *fakeUow) UserRepository() contract.UserRepository {
	return fakeUserRepo{s: u.s}
}
func (u *fakeUow) ChatRoomRepository() contract.ChatRoomRepository {
	return fakeRoomRepo{s: u.s}
}
func (u *fakeUow) ConversationRepository() contract.ConversationRepository {
	return fakeConversationRepo{s: u.s}
}
func (u *fakeUow) MessageRepository() contract.MessageRepository {
	return fakeMessageRepo{s: u.s}
}
func (u *fakeUow) SettingsRepository() contract.SettingsRepository {
	return fakeSettingsRepo{s: u.s}
}

type fakeUserRepo struct{ s *memoryStore }

func (r fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failUsers != nil {
		return r.s.failUsers
	}
	user.Id = r.s.id()
	r.s.users = append(r.s.users, user)
	return nil
}

func (r fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failUsers != nil {
		return nil, r.s.failUsers
	}
	for _, u := range r.s.users {
		if matchUser(u, specs) {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch v := spec.(type) {
		case specification.ByID:
			if u.Id != v.ID {
				return false
			}
		case specification.ByUsername:
			if u.Username != v.Username {
				return false
			}
		}
	}
	return true
}

type fakeRoomRepo struct{ s *memoryStore }

func (r fakeRoomRepo) Create(ctx context.Context, room *entity.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	room.Id = r.s.id()
	r.s.rooms = append(r.s.rooms, room)
	return nil
}

func (r fakeRoomRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, room := range r.s.rooms {
		if matchRoom(room, specs) {
			copied := *room
			return &copied, nil
		}
	}
	return nil, nil
}

func (r fakeRoomRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, room := range r.s.rooms {
		if matchRoom(room, specs) {
			n++
		}
	}
	return n, nil
}

func matchRoom(room *entity.Room, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch v := spec.(type) {
		case specification.ByID:
			if room.Id != v.ID {
				return false
			}
		case specification.OwnedBy:
			if room.Username != v.Username {
				return false
			}
		case specification.ByRoomName:
			if room.RoomName != v.RoomName {
				return false
			}
		}
	}
	return true
}

type fakeConversationRepo struct{ s *memoryStore }

func (r fakeConversationRepo) Create(ctx context.Context, c *entity.Conversation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.Id = r.s.id()
	copied := *c
	r.s.conversations = append(r.s.conversations, &copied)
	return nil
}

func (r fakeConversationRepo) UpdateResponse(ctx context.Context, c *entity.Conversation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, stored := range r.s.conversations {
		if stored.Id == c.Id {
			stored.ResponseMessage = c.ResponseMessage
			stored.GenerationMeta = c.GenerationMeta
			stored.UpdatedAt = c.UpdatedAt
			*c = *stored
			return nil
		}
	}
	return errors.New("record not found")
}

func (r fakeConversationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Conversation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*entity.Conversation, 0)
	var page *specification.Pagination
	for _, c := range r.s.conversations {
		ok := true
		for _, spec := range specs {
			switch v := spec.(type) {
			case specification.ByID:
				ok = ok && c.Id == v.ID
			case specification.ByChatRoomID:
				ok = ok && c.ChatRoomId == v.ChatRoomID
			case specification.Pagination:
				p := v
				page = &p
			}
		}
		if ok {
			copied := *c
			result = append(result, &copied)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Id < result[j].Id })

	if page != nil {
		if page.Offset >= len(result) {
			return []*entity.Conversation{}, nil
		}
		result = result[page.Offset:]
		if page.Limit > 0 && page.Limit < len(result) {
			result = result[:page.Limit]
		}
	}
	return result, nil
}

type fakeMessageRepo struct{ s *memoryStore }

func (r fakeMessageRepo) Create(ctx context.Context, m *entity.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failMessages != nil {
		return r.s.failMessages
	}
	m.Id = r.s.id()
	copied := *m
	r.s.messages = append(r.s.messages, &copied)
	return nil
}

func (r fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	result := make([]*entity.Message, 0)
	for _, m := range r.s.messages {
		ok := true
		for _, spec := range specs {
			if v, isIDs := spec.(specification.ByConversationIDs); isIDs {
				found := false
				for _, id := range v.ConversationIDs {
					if id == m.ConversationId {
						found = true
					}
				}
				ok = ok && found
			}
		}
		if ok {
			copied := *m
			result = append(result, &copied)
		}
	}
	return result, nil
}


type fakeSettingsRepo struct{ s *memoryStore }

func (r fakeSettingsRepo) FindActive(ctx context.Context) (*entity.Settings, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.failSettings != nil {
		return nil, r.s.failSettings
	}
	if len(r.s.settings) == 0 {
		return nil, nil
	}
	copied := *r.s.settings[0]
	return &copied, nil
}

func (r fakeSettingsRepo) Create(ctx context.Context, settings *entity.Settings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	settings.Id = r.s.id()
	copied := *settings
	r.s.settings = append(r.s.settings, &copied)
	return nil
}

func (r fakeSettingsRepo) Save(ctx context.Context, settings *entity.Settings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, stored := range r.s.settings {
		if stored.Id == settings.Id {
			copied := *settings
			r.s.settings[i] = &copied
			return nil
		}
	}
	return errors.New("record not found")
}
