package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/logger"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// FundRequestRepository stores pharmacy fund requests. Rows are mutated
// exactly once: the pending -> approved/rejected transition.
type FundRequestRepository struct {
	db *sqlx.DB
}

func NewFundRequestRepository(db *sqlx.DB) *FundRequestRepository {
	return &FundRequestRepository{db: db}
}

const fundRequestColumns = `
	request_id, pharmacy_id, amount, reason, status, admin_notes,
	reviewed_by, reference_number, created_at, processed_at
`

// Save inserts a new pending fund request.
func (r *FundRequestRepository) Save(ctx context.Context, req *models.FundRequest) error {
	const query = `
		INSERT INTO fund_requests
			(request_id, pharmacy_id, amount, reason, status, reference_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query,
		req.RequestID, req.PharmacyID, req.Amount, req.Reason,
		req.Status, req.ReferenceNumber, req.CreatedAt,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{req.PharmacyID, req.Amount, req.ReferenceNumber},
		"error", err,
	)

	return err
}

// Get retrieves one fund request by ID.
func (r *FundRequestRepository) Get(ctx context.Context, requestID uuid.UUID) (*models.FundRequest, error) {
	query := `SELECT ` + fundRequestColumns + ` FROM fund_requests WHERE request_id = $1`

	var req models.FundRequest
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &req, query, requestID)
	if err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(query), " "),
			"args", []any{requestID},
			"error", err,
		)
		return nil, err
	}
	return &req, nil
}

// GetForUpdate retrieves one fund request and takes a row lock, so the
// status check and the decision that follows cannot race with a concurrent
// decision on the same request. Must run inside a transaction.
func (r *FundRequestRepository) GetForUpdate(ctx context.Context, requestID uuid.UUID) (*models.FundRequest, error) {
	query := `SELECT ` + fundRequestColumns + ` FROM fund_requests WHERE request_id = $1 FOR UPDATE`

	var req models.FundRequest
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &req, query, requestID)
	if err != nil {
		logger.Log.Infow(
			"query", strings.Join(strings.Fields(query), " "),
			"args", []any{requestID},
			"error", err,
		)
		return nil, err
	}
	return &req, nil
}

// SetDecision applies the terminal transition. The status predicate keeps
// the transition single-shot even without the row lock.
func (r *FundRequestRepository) SetDecision(ctx context.Context, requestID uuid.UUID, status string, reviewedBy uuid.UUID, adminNotes string, processedAt time.Time) error {
	const query = `
		UPDATE fund_requests
		SET status = $2, reviewed_by = $3, admin_notes = $4, processed_at = $5
		WHERE request_id = $1 AND status = 'pending'
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, requestID, status, reviewedBy, adminNotes, processedAt)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID, status, reviewedBy},
		"error", err,
	)

	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// List returns fund requests filtered by status (all statuses when empty),
// newest first.
func (r *FundRequestRepository) List(ctx context.Context, status string, limit, offset int) ([]models.FundRequest, error) {
	query := `SELECT ` + fundRequestColumns + `
		FROM fund_requests
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, request_id DESC
		LIMIT $2 OFFSET $3`

	var reqs []models.FundRequest
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &reqs, query, status, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{status, limit, offset},
		"result_count", len(reqs),
		"error", err,
	)

	return reqs, err
}

// CountByStatus returns the pharmacy's per-status request counts, used by
// the analytics projector for success rates.
func (r *FundRequestRepository) CountByStatus(ctx context.Context, pharmacyID uuid.UUID) (map[string]int64, error) {
	return countByStatus(ctx, executor(ctx, r.db), "fund_requests", pharmacyID)
}
