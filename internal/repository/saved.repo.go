package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// SavedProjectRepository keeps each user's bookmarked project ids in a
// redis set. Bookmarks are per-user scratch state, not platform records,
// so they live next to the sessions rather than in Postgres.
type SavedProjectRepository struct {
	rdb *redis.Client
}

func NewSavedProjectRepository(rdb *redis.Client) *SavedProjectRepository {
	return &SavedProjectRepository{rdb: rdb}
}

func savedKey(userID string) string {
	return "saved-projects:" + userID
}

func (r *SavedProjectRepository) Save(ctx context.Context, userID, projectID string) error {
	if err := r.rdb.SAdd(ctx, savedKey(userID), projectID).Err(); err != nil {
		return fmt.Errorf("save project: %w", err)
	}
	return nil
}

func (r *SavedProjectRepository) Unsave(ctx context.Context, userID, projectID string) error {
	if err := r.rdb.SRem(ctx, savedKey(userID), projectID).Err(); err != nil {
		return fmt.Errorf("unsave project: %w", err)
	}
	return nil
}

func (r *SavedProjectRepository) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.rdb.SMembers(ctx, savedKey(userID)).Result()
	if err != nil {
		return nil, fmt.Errorf("list saved projects: %w", err)
	}
	return ids, nil
}

func (r *SavedProjectRepository) IsSaved(ctx context.Context, userID, projectID string) (bool, error) {
	ok, err := r.rdb.SIsMember(ctx, savedKey(userID), projectID).Result()
	if err != nil {
		return false, fmt.Errorf("check saved project: %w", err)
	}
	return ok, nil
}
