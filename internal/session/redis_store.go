package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed session store. Records are keyed
// by token and carry a TTL derived from ExpiresAt, so Redis reclaims
// expired sessions on its own.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:token:",
	}
}

func (r *RedisStore) key(token string) string {
	return r.prefix + token
}

func (r *RedisStore) Put(ctx context.Context, s Session) error {
	if s.ID == "" || s.UserID == "" || s.Token == "" {
		return fmt.Errorf("session: missing id, user_id or token")
	}

	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		// Overwriting with an already-expired record must not extend
		// its life; dropping it has the same observable effect.
		return r.client.Del(ctx, r.key(s.Token)).Err()
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("session: failed to marshal: %w", err)
	}

	return r.client.Set(ctx, r.key(s.Token), data, ttl).Err()
}

func (r *RedisStore) GetByToken(ctx context.Context, token string) (*Session, error) {
	val, err := r.client.Get(ctx, r.key(token)).Result()
	if err == redis.Nil {
		return nil, nil // not found
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal: %w", err)
	}

	// Redis TTL already bounds the record's life, but clock skew between
	// writer and Redis can leave a briefly stale record. Expiry is
	// decided here, at read time.
	if !s.Active(time.Now()) {
		return nil, nil
	}

	return &s, nil
}

func (r *RedisStore) DeleteByToken(ctx context.Context, token string) error {
	return r.client.Del(ctx, r.key(token)).Err()
}
