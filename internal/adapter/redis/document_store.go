package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sm8ta/webike_fleet_dashboard/internal/core/ports"
)

const documentPrefix = "doc:"

// DocumentStore keeps dashboard documents as plain redis strings without expiry.
type DocumentStore struct {
	client *redis.Client
}

func NewDocumentStore(client *redis.Client) *DocumentStore {
	return &DocumentStore{client: client}
}

func (s *DocumentStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, documentPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrKeyNotFound
	}
	return data, err
}

func (s *DocumentStore) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, documentPrefix+key, value, 0).Err()
}

func (s *DocumentStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = documentPrefix + k
	}
	return s.client.Del(ctx, prefixed...).Err()
}
