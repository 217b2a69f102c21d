package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/logger"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// LedgerRepository stores the append-only wallet transaction log. Entries
// are never updated or deleted once written.
type LedgerRepository struct {
	db *sqlx.DB
}

func NewLedgerRepository(db *sqlx.DB) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Append writes one immutable ledger entry. Callers run it inside the same
// transaction as the balance mutation that produced balance_before/after.
func (r *LedgerRepository) Append(ctx context.Context, entry *models.WalletTransaction) error {
	const query = `
		INSERT INTO wallet_transactions
			(transaction_id, pharmacy_id, type, amount, balance_before, balance_after,
			 category, reference_number, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query,
		entry.TransactionID, entry.PharmacyID, entry.Type, entry.Amount,
		entry.BalanceBefore, entry.BalanceAfter, entry.Category,
		entry.ReferenceNumber, entry.Status, entry.CreatedAt,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{entry.PharmacyID, entry.Type, entry.Amount, entry.ReferenceNumber},
		"error", err,
	)

	return err
}

// History returns the pharmacy's ledger entries newest first, paginated.
// Ordering is stable: created_at descending with transaction_id as tiebreak.
func (r *LedgerRepository) History(ctx context.Context, pharmacyID uuid.UUID, limit, offset int) ([]models.WalletTransaction, error) {
	const query = `
		SELECT transaction_id, pharmacy_id, type, amount, balance_before, balance_after,
		       category, reference_number, status, created_at
		FROM wallet_transactions
		WHERE pharmacy_id = $1
		ORDER BY created_at DESC, transaction_id DESC
		LIMIT $2 OFFSET $3
	`

	var entries []models.WalletTransaction
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &entries, query, pharmacyID, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pharmacyID, limit, offset},
		"result_count", len(entries),
		"error", err,
	)

	return entries, err
}

// SumByCategory aggregates the pharmacy's ledger for the month containing
// the given timestamp, grouped by category and type.
func (r *LedgerRepository) SumByCategory(ctx context.Context, pharmacyID uuid.UUID, month time.Time) ([]models.CategoryTotal, error) {
	const query = `
		SELECT category, type, SUM(amount) AS total, COUNT(*) AS count
		FROM wallet_transactions
		WHERE pharmacy_id = $1
		  AND date_trunc('month', created_at) = date_trunc('month', $2::timestamptz)
		GROUP BY category, type
		ORDER BY category, type
	`

	var totals []models.CategoryTotal
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &totals, query, pharmacyID, month)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pharmacyID, month},
		"result_count", len(totals),
		"error", err,
	)

	return totals, err
}

// Stats computes the ledger-side aggregates for the analytics projector:
// total count, average and largest amount, and the month's earned/spent.
func (r *LedgerRepository) Stats(ctx context.Context, pharmacyID uuid.UUID, month time.Time) (models.LedgerStats, error) {
	const query = `
		SELECT COUNT(*) AS transaction_count,
		       COALESCE(AVG(amount), 0) AS average_amount,
		       COALESCE(MAX(amount), 0) AS largest_amount,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'credit'
		           AND date_trunc('month', created_at) = date_trunc('month', $2::timestamptz)), 0) AS month_earned,
		       COALESCE(SUM(amount) FILTER (WHERE type = 'debit'
		           AND date_trunc('month', created_at) = date_trunc('month', $2::timestamptz)), 0) AS month_spent
		FROM wallet_transactions
		WHERE pharmacy_id = $1
	`

	var stats models.LedgerStats
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &stats, query, pharmacyID, month)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{pharmacyID, month},
		"error", err,
	)

	return stats, err
}
