package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shopify-sync/internal/domain"
	"shopify-sync/internal/ports"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "shopify-sync:session:"

// redisClient is the part of the Redis API used by the store
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// RedisStore implements SessionStore using Redis.
// This is suitable for deployments where several instances share sessions.
type RedisStore struct {
	client    redisClient
	keyPrefix string
	ttl       time.Duration
}

// NewRedisStore connects to Redis using a redis:// URL
func NewRedisStore(redisURL string, ttl time.Duration) (*RedisStore, *redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}
	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisStoreWithClient(client, "", ttl), client, nil
}

// NewRedisStoreWithClient creates a store with an existing Redis client.
// A ttl of zero keeps sessions until Redis evicts them.
func NewRedisStoreWithClient(client redisClient, keyPrefix string, ttl time.Duration) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Get loads the session, or nil when the key does not exist
func (s *RedisStore) Get(ctx context.Context, id string) (*domain.UserSession, error) {
	data, err := s.client.Get(ctx, s.keyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session domain.UserSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// Save writes the session and refreshes its TTL
func (s *RedisStore) Save(ctx context.Context, session *domain.UserSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	if err := s.client.Set(ctx, s.keyPrefix+session.ID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

var _ ports.SessionStore = (*RedisStore)(nil)
