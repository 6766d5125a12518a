// Package session keeps the server-side registry of live sessions, keyed by
// JWT jti. A token whose jti is no longer registered is rejected even if it
// has not expired, which is what makes logout effective.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

type Store interface {
	Save(ctx context.Context, jti, userID string, ttl time.Duration) error
	// UserID reports the session's user and whether the session is live.
	UserID(ctx context.Context, jti string) (string, bool, error)
	Revoke(ctx context.Context, jti string) error
}

const keyPrefix = "session:"

type RedisStore struct{ rdb *redis.Client }

func NewRedisStore(rdb *redis.Client) *RedisStore { return &RedisStore{rdb: rdb} }

func (s *RedisStore) Save(ctx context.Context, jti, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, keyPrefix+jti, userID, ttl).Err()
}

func (s *RedisStore) UserID(ctx context.Context, jti string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, keyPrefix+jti).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStore) Revoke(ctx context.Context, jti string) error {
	return s.rdb.Del(ctx, keyPrefix+jti).Err()
}

type memoryEntry struct {
	userID  string
	expires time.Time
}

// MemoryStore is an in-process Store used by tests.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Save(_ context.Context, jti, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[jti] = memoryEntry{userID: userID, expires: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) UserID(_ context.Context, jti string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[jti]
	if !ok {
		return "", false, nil
	}
	if time.Now().After(e.expires) {
		delete(s.entries, jti)
		return "", false, nil
	}
	return e.userID, true, nil
}

func (s *MemoryStore) Revoke(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, jti)
	return nil
}
