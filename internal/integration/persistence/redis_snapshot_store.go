// Package persistence implements snapshot store drivers.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/finance-ledger/backend/internal/application/adapter"
	"github.com/finance-ledger/backend/internal/domain/entity"
	domainerror "github.com/finance-ledger/backend/internal/domain/error"
)

// redisSnapshotStore implements the adapter.SnapshotStore interface on Redis.
// The whole ledger state lives as one JSON value under the namespace key,
// mirroring a browser localStorage entry.
type redisSnapshotStore struct {
	client    *redis.Client
	namespace string
}

// NewRedisSnapshotStore creates a Redis-backed snapshot store.
func NewRedisSnapshotStore(client *redis.Client, namespace string) adapter.SnapshotStore {
	return &redisSnapshotStore{
		client:    client,
		namespace: namespace,
	}
}

// Load retrieves and decodes the snapshot stored under the namespace key.
func (s *redisSnapshotStore) Load(ctx context.Context) (*entity.Snapshot, error) {
	data, err := s.client.Get(ctx, s.namespace).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domainerror.ErrSnapshotNotFound
		}
		return nil, fmt.Errorf("failed to read snapshot key: %w", err)
	}

	var snapshot entity.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	return &snapshot, nil
}

// Save encodes the snapshot and replaces the namespace key.
func (s *redisSnapshotStore) Save(ctx context.Context, snapshot *entity.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := s.client.Set(ctx, s.namespace, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write snapshot key: %w", err)
	}
	return nil
}

// Clear deletes the namespace key.
func (s *redisSnapshotStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.namespace).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot key: %w", err)
	}
	return nil
}
