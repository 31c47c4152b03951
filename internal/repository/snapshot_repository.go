package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"quiz_portal_backend/internal/model"

	"github.com/go-redis/redis/v8"
)

// ErrSnapshotMiss is returned when no frozen question set exists for an
// attempt (never written, or expired). Callers fall back to the database.
var ErrSnapshotMiss = errors.New("attempt snapshot not found")

// SnapshotStore freezes the question set of an attempt at start time so
// display and grading see the same questions even if an admin edits the
// quiz set mid-attempt.
type SnapshotStore interface {
	Save(ctx context.Context, attemptID string, questions []model.Question) error
	Get(ctx context.Context, attemptID string) ([]model.Question, error)
	Delete(ctx context.Context, attemptID string) error
}

type RedisSnapshotStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSnapshotStore(rdb *redis.Client, ttl time.Duration) *RedisSnapshotStore {
	return &RedisSnapshotStore{rdb: rdb, ttl: ttl}
}

func snapshotKey(attemptID string) string {
	return fmt.Sprintf("attempt:questions:%s", attemptID)
}

func (s *RedisSnapshotStore) Save(ctx context.Context, attemptID string, questions []model.Question) error {
	payload, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, snapshotKey(attemptID), payload, s.ttl).Err()
}

func (s *RedisSnapshotStore) Get(ctx context.Context, attemptID string) ([]model.Question, error) {
	payload, err := s.rdb.Get(ctx, snapshotKey(attemptID)).Bytes()
	if err == redis.Nil {
		return nil, ErrSnapshotMiss
	}
	if err != nil {
		return nil, err
	}

	var questions []model.Question
	if err := json.Unmarshal(payload, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *RedisSnapshotStore) Delete(ctx context.Context, attemptID string) error {
	return s.rdb.Del(ctx, snapshotKey(attemptID)).Err()
}
