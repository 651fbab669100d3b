package redisstore

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/ArowuTest/brandhub-admin-backend/internal/models"
	"github.com/ArowuTest/brandhub-admin-backend/internal/repositories"
	"github.com/redis/go-redis/v9"
)

var _ repositories.StagedMediaRepository = (*StagedMediaRepository)(nil)

// stagedKey is a sorted set scored by the unix time an asset was staged.
// Members are "<resourceType>:<publicId>".
const stagedKey = "media:staged"

// StagedMediaRepository is the Redis ledger of uploaded but uncommitted media
type StagedMediaRepository struct {
	client *redis.Client
}

// NewStagedMediaRepository creates a new StagedMediaRepository
func NewStagedMediaRepository(client *redis.Client) *StagedMediaRepository {
	return &StagedMediaRepository{client: client}
}

// Stage records an uploaded asset
func (r *StagedMediaRepository) Stage(ctx context.Context, asset models.StagedAsset) error {
	return r.client.ZAdd(ctx, stagedKey, redis.Z{
		Score:  float64(asset.StagedAt.Unix()),
		Member: member(asset.ResourceType, asset.PublicID),
	}).Err()
}

// Promote drops assets from the ledger once a committed document references them
func (r *StagedMediaRepository) Promote(ctx context.Context, resourceType string, publicIDs ...string) error {
	if len(publicIDs) == 0 {
		return nil
	}
	members := make([]interface{}, len(publicIDs))
	for i, id := range publicIDs {
		members[i] = member(resourceType, id)
	}
	return r.client.ZRem(ctx, stagedKey, members...).Err()
}

// Expired lists assets staged before the cutoff, oldest first
func (r *StagedMediaRepository) Expired(ctx context.Context, before time.Time, limit int64) ([]models.StagedAsset, error) {
	entries, err := r.client.ZRangeByScoreWithScores(ctx, stagedKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   "(" + strconv.FormatInt(before.Unix(), 10),
		Count: limit,
	}).Result()
	if err != nil {
		return nil, err
	}

	assets := make([]models.StagedAsset, 0, len(entries))
	for _, z := range entries {
		m, _ := z.Member.(string)
		resourceType, publicID, ok := strings.Cut(m, ":")
		if !ok {
			continue
		}
		assets = append(assets, models.StagedAsset{
			ResourceType: resourceType,
			PublicID:     publicID,
			StagedAt:     time.Unix(int64(z.Score), 0),
		})
	}
	return assets, nil
}

// Remove drops an asset from the ledger
func (r *StagedMediaRepository) Remove(ctx context.Context, asset models.StagedAsset) error {
	return r.client.ZRem(ctx, stagedKey, member(asset.ResourceType, asset.PublicID)).Err()
}

func member(resourceType, publicID string) string {
	return resourceType + ":" + publicID
}
