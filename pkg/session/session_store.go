package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Session lists the application keeps per anonymous session.
const (
	KeyPurchases = "purchases"
	KeyTagList   = "tag_list"
)

// Sessions idle longer than this are dropped.
const sessionTTL = 30 * 24 * time.Hour

type (
	// Store keeps ordered per-session lists with set semantics: a value
	// occurs at most once, and insertion order is preserved.
	Store interface {
		List(ctx context.Context, sessionID, key string) ([]string, error)
		// Add appends value and reports false when it was already present.
		Add(ctx context.Context, sessionID, key, value string) (bool, error)
		// Remove deletes value and reports false when it was absent.
		Remove(ctx context.Context, sessionID, key, value string) (bool, error)
		// Toggle removes a present value or appends an absent one, and
		// returns the resulting list.
		Toggle(ctx context.Context, sessionID, key, value string) ([]string, error)
	}

	redisStore struct {
		client *redis.Client
	}
)

func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func storeKey(sessionID, key string) string {
	return fmt.Sprintf("session:%s:%s", sessionID, key)
}

func (s *redisStore) List(ctx context.Context, sessionID, key string) ([]string, error) {
	values, err := s.client.LRange(ctx, storeKey(sessionID, key), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (s *redisStore) Add(ctx context.Context, sessionID, key, value string) (bool, error) {
	k := storeKey(sessionID, key)

	_, err := s.client.LPos(ctx, k, value, redis.LPosArgs{}).Result()
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, redis.Nil) {
		return false, err
	}

	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, k, value)
	pipe.Expire(ctx, k, sessionTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return true, nil
}

func (s *redisStore) Remove(ctx context.Context, sessionID, key, value string) (bool, error) {
	removed, err := s.client.LRem(ctx, storeKey(sessionID, key), 1, value).Result()
	if err != nil {
		return false, err
	}
	return removed > 0, nil
}

func (s *redisStore) Toggle(ctx context.Context, sessionID, key, value string) ([]string, error) {
	removed, err := s.Remove(ctx, sessionID, key, value)
	if err != nil {
		return nil, err
	}
	if !removed {
		if _, err := s.Add(ctx, sessionID, key, value); err != nil {
			return nil, err
		}
	}
	return s.List(ctx, sessionID, key)
}
