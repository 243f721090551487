package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"nextin/internal/model"
)

// DefaultRedisKey is the key holding the board document.
const DefaultRedisKey = "nextin:board"

type redisDocument struct {
	Version int64        `json:"version"`
	Board   *model.Board `json:"board"`
}

// RedisSnapshotStore keeps the board document under a single Redis key.
// SET replaces the value atomically.
type RedisSnapshotStore struct {
	client *redis.Client
	key    string
}

func NewRedisSnapshotStore(client *redis.Client, key string) *RedisSnapshotStore {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisSnapshotStore{client: client, key: key}
}

func (s *RedisSnapshotStore) Load(ctx context.Context) (*model.Board, int64, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, 0, ErrNoSnapshot
		}
		return nil, 0, err
	}

	var doc redisDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, 0, fmt.Errorf("decode %s: %w", s.key, err)
	}
	if doc.Board == nil {
		return nil, 0, fmt.Errorf("decode %s: empty board", s.key)
	}
	return doc.Board, doc.Version, nil
}

func (s *RedisSnapshotStore) Save(ctx context.Context, board *model.Board, version int64) error {
	data, err := json.Marshal(redisDocument{Version: version, Board: board})
	if err != nil {
		return fmt.Errorf("encode board: %w", err)
	}
	return s.client.Set(ctx, s.key, data, 0).Err()
}
