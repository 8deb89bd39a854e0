package storage

import (
	"context"
	"fmt"

	"github.com/go-redis/redis"
)

const keyPrefix = "goflix:"

// RedisStore is a storage engine that writes to redis
type RedisStore struct {
	client *redis.Client
}

// NewRedisStoreFromURL connects to the redis server described by url
func NewRedisStoreFromURL(url string) (*RedisStore, error) {
	option, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(option)
	if err := client.Ping().Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return NewRedisStore(client), nil
}

// NewRedisStore creates a store on an existing client
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get loads the value stored under key
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.WithContext(ctx).Get(keyPrefix + key).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Put writes the value under key with no expiry
func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	return s.client.WithContext(ctx).Set(keyPrefix+key, value, 0).Err()
}

// Ping will check if the connection works right
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.WithContext(ctx).Ping().Err()
}

// Close closes the client
func (s *RedisStore) Close() error {
	return s.client.Close()
}
