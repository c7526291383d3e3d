package repository

import (
	"time"

	"github.com/bluele/gcache"

	"github.com/worldwidesim/esim-store/internal/model"
)

const sessionCacheSize = 4096

// SessionStore holds per-user purchase-flow state in memory. Entries
// evict after the TTL so abandoned flows do not accumulate; sessions do
// not survive a process restart.
type SessionStore struct {
	cache gcache.Cache
	ttl   time.Duration
}

func NewSessionStore(ttl time.Duration) *SessionStore {
	return &SessionStore{
		cache: gcache.New(sessionCacheSize).LRU().Build(),
		ttl:   ttl,
	}
}

func (s *SessionStore) Get(userID int64) (model.SessionState, bool) {
	v, err := s.cache.Get(userID)
	if err != nil {
		return nil, false
	}
	state, ok := v.(model.SessionState)
	return state, ok
}

func (s *SessionStore) Set(userID int64, state model.SessionState) {
	// Set on a bounded LRU cannot fail in a way we can act on.
	_ = s.cache.SetWithExpire(userID, state, s.ttl)
}

func (s *SessionStore) Clear(userID int64) {
	s.cache.Remove(userID)
}
