package redisrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jrsteele09/tollway-portal/sessions"
	"github.com/redis/go-redis/v9"
)

var _ sessions.Repo = (*SessionRepo)(nil)

// SessionRepo stores session entries in redis as <prefix>:<sessionID>:<key>.
// A zero ttl keeps entries until they are deleted.
type SessionRepo struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

func NewSessionRepo(client redis.UniversalClient, prefix string, ttl time.Duration) *SessionRepo {
	if prefix == "" {
		prefix = "portal:session"
	}
	return &SessionRepo{client: client, prefix: prefix, ttl: ttl}
}

func (r *SessionRepo) key(sessionID, key string) string {
	return r.prefix + ":" + sessionID + ":" + key
}

func (r *SessionRepo) Get(ctx context.Context, sessionID, key string) (string, bool, error) {
	if sessionID == "" || key == "" {
		return "", false, errors.New("sessionID and key are required")
	}

	result, err := r.client.Get(ctx, r.key(sessionID, key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get: %w", err)
	}
	return result, true, nil
}

func (r *SessionRepo) Set(ctx context.Context, sessionID, key, value string) error {
	if sessionID == "" || key == "" {
		return errors.New("sessionID and key are required")
	}
	if err := r.client.Set(ctx, r.key(sessionID, key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (r *SessionRepo) Delete(ctx context.Context, sessionID string, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	redisKeys := make([]string, 0, len(keys))
	for _, k := range keys {
		redisKeys = append(redisKeys, r.key(sessionID, k))
	}
	if err := r.client.Del(ctx, redisKeys...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
