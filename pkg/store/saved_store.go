package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SavedMovieStore keeps each user's saved-movie set in Redis under
// one key per entry: saved:{userID}:{movieID}. Values carry the save
// timestamp; membership lives in the key itself.
type SavedMovieStore struct {
	rdb *redis.Client
}

func NewSavedMovieStore(rdb *redis.Client) *SavedMovieStore {
	return &SavedMovieStore{rdb: rdb}
}

func savedKey(userId uuid.UUID, movieId int64) string {
	return fmt.Sprintf("saved:%s:%d", userId, movieId)
}

func (s *SavedMovieStore) Save(ctx context.Context, userId uuid.UUID, movieId int64) error {
	return s.rdb.Set(ctx, savedKey(userId, movieId), time.Now().UTC().Format(time.RFC3339), 0).Err()
}

func (s *SavedMovieStore) Remove(ctx context.Context, userId uuid.UUID, movieId int64) error {
	return s.rdb.Del(ctx, savedKey(userId, movieId)).Err()
}

func (s *SavedMovieStore) IsSaved(ctx context.Context, userId uuid.UUID, movieId int64) (bool, error) {
	n, err := s.rdb.Exists(ctx, savedKey(userId, movieId)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List returns the movie ids the user has saved, in no particular order.
func (s *SavedMovieStore) List(ctx context.Context, userId uuid.UUID) ([]int64, error) {
	prefix := fmt.Sprintf("saved:%s:", userId)
	var (
		ids    []int64
		cursor uint64
	)
	for {
		keys, next, err := s.rdb.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			id, err := strconv.ParseInt(strings.TrimPrefix(key, prefix), 10, 64)
			if err != nil {
				continue
			}
			ids = append(ids, id)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	return ids, nil
}
