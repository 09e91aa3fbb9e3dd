package memory

import (
	"ai-chatroom-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

// SessionRepository holds live chat sessions. Entries never expire: a session
// stays until its connection unregisters it, however long it sits idle.
type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

// Save stores a copy of session.
func (r *SessionRepository) Save(session store.Session) {
	r.cache.Set(session.ID, session, cache.NoExpiration)
}

func (r *SessionRepository) Get(sessionID string) (store.Session, bool) {
	if x, found := r.cache.Get(sessionID); found {
		return x.(store.Session), true
	}
	return store.Session{}, false
}

func (r *SessionRepository) Delete(sessionID string) {
	r.cache.Delete(sessionID)
}

func (r *SessionRepository) Count() int {
	return r.cache.ItemCount()
}

// List returns sessions in no particular order.
func (r *SessionRepository) List() []store.Session {
	items := r.cache.Items()
	sessions := make([]store.Session, 0, len(items))
	for _, item := range items {
		sessions = append(sessions, item.Object.(store.Session))
	}
	return sessions
}
