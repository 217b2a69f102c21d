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

// WithdrawalRequestRepository stores pharmacy withdrawal requests. Besides
// the terminal decision, rows may pass through one optional intermediate
// transition: pending -> processing.
type WithdrawalRequestRepository struct {
	db *sqlx.DB
}

func NewWithdrawalRequestRepository(db *sqlx.DB) *WithdrawalRequestRepository {
	return &WithdrawalRequestRepository{db: db}
}

const withdrawalRequestColumns = `
	request_id, pharmacy_id, amount, bank_name, account_number, account_holder_name,
	status, admin_notes, reviewed_by, reference_number, created_at, processed_at
`

// Save inserts a new pending withdrawal request.
func (r *WithdrawalRequestRepository) Save(ctx context.Context, req *models.WithdrawalRequest) error {
	const query = `
		INSERT INTO withdrawal_requests
			(request_id, pharmacy_id, amount, bank_name, account_number,
			 account_holder_name, status, reference_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := executor(ctx, r.db).ExecContext(ctx, query,
		req.RequestID, req.PharmacyID, req.Amount, req.BankName,
		req.AccountNumber, req.AccountHolderName, req.Status,
		req.ReferenceNumber, req.CreatedAt,
	)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{req.PharmacyID, req.Amount, req.ReferenceNumber},
		"error", err,
	)

	return err
}

// Get retrieves one withdrawal request by ID.
func (r *WithdrawalRequestRepository) Get(ctx context.Context, requestID uuid.UUID) (*models.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalRequestColumns + ` FROM withdrawal_requests WHERE request_id = $1`

	var req models.WithdrawalRequest
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

// GetForUpdate retrieves one withdrawal request under a row lock. Must run
// inside a transaction.
func (r *WithdrawalRequestRepository) GetForUpdate(ctx context.Context, requestID uuid.UUID) (*models.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalRequestColumns + ` FROM withdrawal_requests WHERE request_id = $1 FOR UPDATE`

	var req models.WithdrawalRequest
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

// SetDecision applies the terminal transition from pending or processing.
func (r *WithdrawalRequestRepository) SetDecision(ctx context.Context, requestID uuid.UUID, status string, reviewedBy uuid.UUID, adminNotes string, processedAt time.Time) error {
	const query = `
		UPDATE withdrawal_requests
		SET status = $2, reviewed_by = $3, admin_notes = $4, processed_at = $5
		WHERE request_id = $1 AND status IN ('pending', 'processing')
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

// MarkProcessing moves a pending request into the optional processing state.
func (r *WithdrawalRequestRepository) MarkProcessing(ctx context.Context, requestID uuid.UUID, reviewedBy uuid.UUID) error {
	const query = `
		UPDATE withdrawal_requests
		SET status = 'processing', reviewed_by = $2
		WHERE request_id = $1 AND status = 'pending'
	`

	res, err := executor(ctx, r.db).ExecContext(ctx, query, requestID, reviewedBy)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{requestID, reviewedBy},
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

// List returns withdrawal requests filtered by status (all statuses when
// empty), newest first.
func (r *WithdrawalRequestRepository) List(ctx context.Context, status string, limit, offset int) ([]models.WithdrawalRequest, error) {
	query := `SELECT ` + withdrawalRequestColumns + `
		FROM withdrawal_requests
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC, request_id DESC
		LIMIT $2 OFFSET $3`

	var reqs []models.WithdrawalRequest
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &reqs, query, status, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{status, limit, offset},
		"result_count", len(reqs),
		"error", err,
	)

	return reqs, err
}

// CountByStatus returns the pharmacy's per-status request counts.
func (r *WithdrawalRequestRepository) CountByStatus(ctx context.Context, pharmacyID uuid.UUID) (map[string]int64, error) {
	return countByStatus(ctx, executor(ctx, r.db), "withdrawal_requests", pharmacyID)
}
