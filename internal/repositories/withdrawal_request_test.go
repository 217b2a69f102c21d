package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func withdrawalRequestRow(req *models.WithdrawalRequest) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"request_id", "pharmacy_id", "amount", "bank_name", "account_number",
		"account_holder_name", "status", "admin_notes", "reviewed_by",
		"reference_number", "created_at", "processed_at",
	}).AddRow(req.RequestID, req.PharmacyID, req.Amount.String(), req.BankName,
		req.AccountNumber, req.AccountHolderName, req.Status, req.AdminNotes,
		nil, req.ReferenceNumber, req.CreatedAt, nil)
}

func TestWithdrawalRequestRepository_SaveAndGetForUpdate(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	repo := NewWithdrawalRequestRepository(db)

	req := &models.WithdrawalRequest{
		RequestID:         uuid.New(),
		PharmacyID:        uuid.New(),
		Amount:            decimal.NewFromInt(300),
		BankName:          "Banque Misr",
		AccountNumber:     "1234567890123456",
		AccountHolderName: "Al Shifa Pharmacy",
		Status:            models.RequestPending,
		ReferenceNumber:   "WD-PH-3F2A1B-7E20AC",
		CreatedAt:         time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO withdrawal_requests")).
		WithArgs(req.RequestID, req.PharmacyID, req.Amount, req.BankName,
			req.AccountNumber, req.AccountHolderName, req.Status,
			req.ReferenceNumber, req.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(ctx, req))

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(req.RequestID).
		WillReturnRows(withdrawalRequestRow(req))

	got, err := repo.GetForUpdate(ctx, req.RequestID)
	assert.NoError(t, err)
	assert.Equal(t, req.AccountNumber, got.AccountNumber)
	assert.True(t, got.Amount.Equal(req.Amount))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRequestRepository_SetDecision(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	reviewedBy := uuid.New()
	now := time.Now().UTC()

	db, mock := newMockDB(t)
	repo := NewWithdrawalRequestRepository(db)

	// Decidable from pending or processing.
	mock.ExpectExec(regexp.QuoteMeta("status IN ('pending', 'processing')")).
		WithArgs(requestID, models.RequestApproved, reviewedBy, "", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetDecision(ctx, requestID, models.RequestApproved, reviewedBy, "", now))

	// Terminal rows match nothing.
	mock.ExpectExec(regexp.QuoteMeta("status IN ('pending', 'processing')")).
		WithArgs(requestID, models.RequestRejected, reviewedBy, "", now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetDecision(ctx, requestID, models.RequestRejected, reviewedBy, "", now)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRequestRepository_MarkProcessing(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	reviewedBy := uuid.New()

	db, mock := newMockDB(t)
	repo := NewWithdrawalRequestRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("SET status = 'processing'")).
		WithArgs(requestID, reviewedBy).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkProcessing(ctx, requestID, reviewedBy))

	// Only pending rows can move to processing.
	mock.ExpectExec(regexp.QuoteMeta("SET status = 'processing'")).
		WithArgs(requestID, reviewedBy).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkProcessing(ctx, requestID, reviewedBy)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithdrawalRequestRepository_List(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	repo := NewWithdrawalRequestRepository(db)

	req := &models.WithdrawalRequest{
		RequestID:       uuid.New(),
		PharmacyID:      uuid.New(),
		Amount:          decimal.NewFromInt(300),
		Status:          models.RequestPending,
		ReferenceNumber: "WD-PH-3F2A1B-7E20AC",
		CreatedAt:       time.Now().UTC(),
	}

	mock.ExpectQuery(regexp.QuoteMeta("FROM withdrawal_requests")).
		WithArgs("", 50, 0).
		WillReturnRows(withdrawalRequestRow(req))

	got, err := repo.List(ctx, "", 50, 0)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}
