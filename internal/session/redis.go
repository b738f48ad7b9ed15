package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"example.com/fittrack/internal/observability"
)

// RedisStore keeps sessions in Redis under a key prefix. Redis evicts keys
// at their TTL on its own; Resolve still treats a past-expiry value as
// absent and deletes it, so the lazy-expiry contract holds regardless of
// which side notices first.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore constructs a Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "session:",
		ttl:    ttl,
	}
}

func (r *RedisStore) key(token string) string {
	return r.prefix + token
}

// Issue implements Store.
func (r *RedisStore) Issue(ctx context.Context, userID int64) (Session, error) {
	token, err := GenerateToken()
	if err != nil {
		return Session{}, err
	}

	s := Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(r.ttl),
	}

	data, err := json.Marshal(s)
	if err != nil {
		return Session{}, fmt.Errorf("session: failed to marshal: %w", err)
	}

	if err := r.client.Set(ctx, r.key(token), data, r.ttl).Err(); err != nil {
		return Session{}, err
	}

	observability.RecordSessionIssued()
	return s, nil
}

// Resolve implements Store.
func (r *RedisStore) Resolve(ctx context.Context, token string) (*Session, error) {
	val, err := r.client.Get(ctx, r.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var s Session
	if err := json.Unmarshal([]byte(val), &s); err != nil {
		return nil, fmt.Errorf("session: failed to unmarshal: %w", err)
	}

	if !s.ExpiresAt.After(time.Now()) {
		if err := r.client.Del(ctx, r.key(token)).Err(); err != nil {
			return nil, err
		}
		observability.RecordSessionExpired()
		return nil, nil
	}
	return &s, nil
}

// Revoke implements Store.
func (r *RedisStore) Revoke(ctx context.Context, token string) error {
	deleted, err := r.client.Del(ctx, r.key(token)).Result()
	if err != nil {
		return err
	}
	if deleted > 0 {
		observability.RecordSessionRevoked()
	}
	return nil
}
