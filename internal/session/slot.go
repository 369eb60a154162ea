package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"eduvault/internal/domain"
)

// DefaultKey is the fixed slot key holding the serialized current session.
const DefaultKey = "eduvault:currentUser"

// Slot is the durable key-value slot for the current session: one fixed key,
// overwritten wholesale on every save and removed wholesale on clear.
type Slot interface {
	Save(id domain.Identity) error
	Load() (domain.Identity, bool, error)
	Clear() error
}

// RedisSlot keeps the session under a single Redis key.
type RedisSlot struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisSlot builds a Redis-backed slot. A zero TTL means the session never
// expires on its own.
func NewRedisSlot(addr, password, key string, ttl time.Duration) *RedisSlot {
	if key == "" {
		key = DefaultKey
	}
	return &RedisSlot{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		key: key,
		ttl: ttl,
	}
}

// Save overwrites the slot with the serialized identity.
func (s *RedisSlot) Save(id domain.Identity) error {
	data, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.client.Set(ctx, s.key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Load reads the slot; the second return is false when the slot is empty.
func (s *RedisSlot) Load() (domain.Identity, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err == redis.Nil {
		return domain.Identity{}, false, nil
	}
	if err != nil {
		return domain.Identity{}, false, fmt.Errorf("load session: %w", err)
	}
	var id domain.Identity
	if err := json.Unmarshal(data, &id); err != nil {
		return domain.Identity{}, false, fmt.Errorf("decode session: %w", err)
	}
	return id, true, nil
}

// Clear removes the slot.
func (s *RedisSlot) Clear() error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.client.Del(ctx, s.key).Err(); err != nil && err != redis.Nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
