package services

import (
	"context"
	"time"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/logger"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/google/uuid"
)

// LedgerStatsReader reads ledger aggregates.
type LedgerStatsReader interface {
	Stats(ctx context.Context, pharmacyID uuid.UUID, month time.Time) (models.LedgerStats, error)
	SumByCategory(ctx context.Context, pharmacyID uuid.UUID, month time.Time) ([]models.CategoryTotal, error)
}

// RequestCounter groups a pharmacy's requests by status.
type RequestCounter interface {
	CountByStatus(ctx context.Context, pharmacyID uuid.UUID) (map[string]int64, error)
}

// AnalyticsCache stores computed snapshots.
type AnalyticsCache interface {
	Get(ctx context.Context, pharmacyID uuid.UUID) (*models.WalletAnalytics, error)
	Set(ctx context.Context, pharmacyID uuid.UUID, analytics *models.WalletAnalytics) error
}

// AnalyticsService is the read-side projector over the ledger and the
// request trackers. Every figure is recomputed from source tables on a
// cache miss; the cache is invalidated on every approval commit, so no
// derived state can drift.
type AnalyticsService struct {
	ledger      LedgerStatsReader
	funds       RequestCounter
	withdrawals RequestCounter
	cache       AnalyticsCache
	now         func() time.Time
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(
	ledger LedgerStatsReader,
	funds RequestCounter,
	withdrawals RequestCounter,
	cache AnalyticsCache,
) *AnalyticsService {
	return &AnalyticsService{
		ledger:      ledger,
		funds:       funds,
		withdrawals: withdrawals,
		cache:       cache,
		now:         time.Now,
	}
}

// GetAnalytics returns the pharmacy's aggregated wallet metrics, serving a
// cached snapshot when one is present.
func (s *AnalyticsService) GetAnalytics(ctx context.Context, pharmacyID uuid.UUID) (*models.WalletAnalytics, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, pharmacyID); err == nil {
			return cached, nil
		}
	}

	month := s.now().UTC()

	stats, err := s.ledger.Stats(ctx, pharmacyID, month)
	if err != nil {
		logger.Log.Errorw("failed to read ledger stats", "pharmacy_id", pharmacyID, "error", err)
		return nil, err
	}

	totals, err := s.ledger.SumByCategory(ctx, pharmacyID, month)
	if err != nil {
		logger.Log.Errorw("failed to read category totals", "pharmacy_id", pharmacyID, "error", err)
		return nil, err
	}

	fundCounts, err := s.funds.CountByStatus(ctx, pharmacyID)
	if err != nil {
		logger.Log.Errorw("failed to count fund requests", "pharmacy_id", pharmacyID, "error", err)
		return nil, err
	}

	withdrawalCounts, err := s.withdrawals.CountByStatus(ctx, pharmacyID)
	if err != nil {
		logger.Log.Errorw("failed to count withdrawal requests", "pharmacy_id", pharmacyID, "error", err)
		return nil, err
	}

	analytics := &models.WalletAnalytics{
		PharmacyID:            pharmacyID,
		TransactionCount:      stats.TransactionCount,
		AverageTransaction:    stats.AverageAmount,
		LargestTransaction:    stats.LargestAmount,
		MonthEarned:           stats.MonthEarned,
		MonthSpent:            stats.MonthSpent,
		CategoryTotals:        totals,
		FundSuccessRate:       models.SuccessRate(fundCounts),
		WithdrawalSuccessRate: models.SuccessRate(withdrawalCounts),
		GeneratedAt:           s.now().UTC(),
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, pharmacyID, analytics); err != nil {
			logger.Log.Errorw("failed to cache analytics", "pharmacy_id", pharmacyID, "error", err)
		}
	}

	return analytics, nil
}
