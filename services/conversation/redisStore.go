// File: services/conversation/redisStore.go
package conversation

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"tripgenius/models"
	"tripgenius/utils"

	"github.com/go-redis/redis/v8"
)

const sessionKeyPrefix = "session:"

// redisStore persists sessions as JSON blobs with a TTL. Per-session mutual
// exclusion is provided by in-process keyed mutexes; each session is pinned
// to one node by the transport layer, so no distributed lock is needed.
type redisStore struct {
	client *redis.Client
	ttl    time.Duration

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewRedisStore returns a Redis-backed SessionStore with the given idle TTL.
func NewRedisStore(ttl time.Duration) SessionStore {
	return &redisStore{
		client: utils.GetSessionCacheClient(),
		ttl:    ttl,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (s *redisStore) lockFor(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.locks[sessionID]; ok {
		return l
	}
	l := &sync.Mutex{}
	s.locks[sessionID] = l
	return l
}

func (s *redisStore) dropLock(sessionID string) {
	s.mu.Lock()
	delete(s.locks, sessionID)
	s.mu.Unlock()
}

func (s *redisStore) Create(ctx context.Context, sess *models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+sess.SessionID, raw, s.ttl).Err()
}

func (s *redisStore) WithSession(ctx context.Context, sessionID string, fn func(*models.Session) error) error {
	lock := s.lockFor(sessionID)
	lock.Lock()
	defer lock.Unlock()

	key := sessionKeyPrefix + sessionID
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		// Unknown or TTL-expired ID: release the keyed mutex as well, or
		// lookups for dead sessions would grow the lock map forever.
		s.dropLock(sessionID)
		return &SessionNotFoundError{SessionID: sessionID}
	}
	if err != nil {
		return err
	}

	var sess models.Session
	if err := json.Unmarshal([]byte(raw), &sess); err != nil {
		utils.GetLogger().Error("corrupt session blob, dropping session")
		s.client.Del(ctx, key)
		s.dropLock(sessionID)
		return &SessionNotFoundError{SessionID: sessionID}
	}

	if err := fn(&sess); err != nil {
		return err
	}
	sess.UpdatedAt = time.Now()

	if sess.Terminal {
		if err := s.client.Del(ctx, key).Err(); err != nil {
			return err
		}
		s.dropLock(sessionID)
		return nil
	}

	updated, err := json.Marshal(&sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key, updated, s.ttl).Err()
}
