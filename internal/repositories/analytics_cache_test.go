package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCacheRepo(t *testing.T, exp time.Duration) (*AnalyticsCacheRepository, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewAnalyticsCacheRepository(client, exp), srv
}

func TestAnalyticsCacheRepository_SetGet(t *testing.T) {
	ctx := context.Background()
	pharmacyID := uuid.New()

	repo, srv := newCacheRepo(t, time.Minute)

	analytics := &models.WalletAnalytics{
		PharmacyID:       pharmacyID,
		TransactionCount: 7,
		FundSuccessRate:  0.75,
	}

	require.NoError(t, repo.Set(ctx, pharmacyID, analytics))

	got, err := repo.Get(ctx, pharmacyID)
	assert.NoError(t, err)
	assert.Equal(t, pharmacyID, got.PharmacyID)
	assert.Equal(t, int64(7), got.TransactionCount)
	assert.InDelta(t, 0.75, got.FundSuccessRate, 1e-9)

	// TTL is attached to the key.
	srv.FastForward(2 * time.Minute)
	_, err = repo.Get(ctx, pharmacyID)
	assert.ErrorIs(t, err, redis.Nil)
}

func TestAnalyticsCacheRepository_GetMissing(t *testing.T) {
	ctx := context.Background()

	repo, _ := newCacheRepo(t, time.Minute)

	_, err := repo.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, redis.Nil)
}

func TestAnalyticsCacheRepository_Invalidate(t *testing.T) {
	ctx := context.Background()
	pharmacyID := uuid.New()

	repo, _ := newCacheRepo(t, time.Minute)

	require.NoError(t, repo.Set(ctx, pharmacyID, &models.WalletAnalytics{PharmacyID: pharmacyID}))
	require.NoError(t, repo.Invalidate(ctx, pharmacyID))

	_, err := repo.Get(ctx, pharmacyID)
	assert.ErrorIs(t, err, redis.Nil)
}
