package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/logger"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// AnalyticsCacheRepository caches analytics snapshots in Redis. The cache
// carries a TTL and is deleted on every approval commit, so a stale
// projection is never served after a wallet mutation.
type AnalyticsCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached snapshots
}

// NewAnalyticsCacheRepository creates a new repository instance with the given TTL.
func NewAnalyticsCacheRepository(client *redis.Client, expiration time.Duration) *AnalyticsCacheRepository {
	return &AnalyticsCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func analyticsKey(pharmacyID uuid.UUID) string {
	return fmt.Sprintf("analytics:%s", pharmacyID)
}

// Get fetches a cached analytics snapshot. Returns redis.Nil when absent.
func (r *AnalyticsCacheRepository) Get(ctx context.Context, pharmacyID uuid.UUID) (*models.WalletAnalytics, error) {
	key := analyticsKey(pharmacyID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		return nil, err
	}

	var analytics models.WalletAnalytics
	if err := json.Unmarshal([]byte(val), &analytics); err != nil {
		logger.Log.Errorw("failed to decode cached analytics", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", "hit",
		"error", nil,
	)

	return &analytics, nil
}

// Set stores an analytics snapshot with the configured TTL.
func (r *AnalyticsCacheRepository) Set(ctx context.Context, pharmacyID uuid.UUID, analytics *models.WalletAnalytics) error {
	key := analyticsKey(pharmacyID)

	data, err := json.Marshal(analytics)
	if err != nil {
		logger.Log.Errorw("failed to encode analytics", "key", key, "error", err)
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"ttl", r.exp,
		"error", err,
	)

	return err
}

// Invalidate drops the pharmacy's cached snapshot. Called after every
// approval-engine commit.
func (r *AnalyticsCacheRepository) Invalidate(ctx context.Context, pharmacyID uuid.UUID) error {
	key := analyticsKey(pharmacyID)

	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"op", "del",
		"error", err,
	)

	return err
}
