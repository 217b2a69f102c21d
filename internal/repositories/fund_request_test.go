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

func fundRequestRow(req *models.FundRequest) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"request_id", "pharmacy_id", "amount", "reason", "status",
		"admin_notes", "reviewed_by", "reference_number", "created_at", "processed_at",
	}).AddRow(req.RequestID, req.PharmacyID, req.Amount.String(), req.Reason,
		req.Status, req.AdminNotes, nil, req.ReferenceNumber, req.CreatedAt, nil)
}

func TestFundRequestRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	repo := NewFundRequestRepository(db)

	req := &models.FundRequest{
		RequestID:       uuid.New(),
		PharmacyID:      uuid.New(),
		Amount:          decimal.NewFromInt(500),
		Reason:          "monthly top-up",
		Status:          models.RequestPending,
		ReferenceNumber: "PH-3F2A1B-FUND-9C41D2",
		CreatedAt:       time.Now().UTC(),
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO fund_requests")).
		WithArgs(req.RequestID, req.PharmacyID, req.Amount, req.Reason, req.Status, req.ReferenceNumber, req.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(ctx, req))

	mock.ExpectQuery(regexp.QuoteMeta("FROM fund_requests WHERE request_id = $1")).
		WithArgs(req.RequestID).
		WillReturnRows(fundRequestRow(req))

	got, err := repo.Get(ctx, req.RequestID)
	assert.NoError(t, err)
	assert.Equal(t, req.RequestID, got.RequestID)
	assert.Equal(t, models.RequestPending, got.Status)
	assert.True(t, got.Amount.Equal(req.Amount))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFundRequestRepository_GetForUpdate(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	repo := NewFundRequestRepository(db)

	req := &models.FundRequest{
		RequestID:  uuid.New(),
		PharmacyID: uuid.New(),
		Amount:     decimal.NewFromInt(100),
		Status:     models.RequestPending,
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE")).
		WithArgs(req.RequestID).
		WillReturnRows(fundRequestRow(req))

	got, err := repo.GetForUpdate(ctx, req.RequestID)
	assert.NoError(t, err)
	assert.Equal(t, req.RequestID, got.RequestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFundRequestRepository_SetDecision(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	reviewedBy := uuid.New()
	now := time.Now().UTC()

	db, mock := newMockDB(t)
	repo := NewFundRequestRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("status = 'pending'")).
		WithArgs(requestID, models.RequestApproved, reviewedBy, "ok", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.SetDecision(ctx, requestID, models.RequestApproved, reviewedBy, "ok", now))

	// A request no longer pending matches no row.
	mock.ExpectExec(regexp.QuoteMeta("status = 'pending'")).
		WithArgs(requestID, models.RequestApproved, reviewedBy, "ok", now).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetDecision(ctx, requestID, models.RequestApproved, reviewedBy, "ok", now)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFundRequestRepository_List(t *testing.T) {
	ctx := context.Background()

	db, mock := newMockDB(t)
	repo := NewFundRequestRepository(db)

	req := &models.FundRequest{
		RequestID:  uuid.New(),
		PharmacyID: uuid.New(),
		Amount:     decimal.NewFromInt(500),
		Status:     models.RequestPending,
		CreatedAt:  time.Now().UTC(),
	}

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, request_id DESC")).
		WithArgs(models.RequestPending, 50, 0).
		WillReturnRows(fundRequestRow(req))

	got, err := repo.List(ctx, models.RequestPending, 50, 0)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFundRequestRepository_CountByStatus(t *testing.T) {
	ctx := context.Background()
	pharmacyID := uuid.New()

	db, mock := newMockDB(t)
	repo := NewFundRequestRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("GROUP BY status")).
		WithArgs(pharmacyID).
		WillReturnRows(sqlmock.NewRows([]string{"status", "count"}).
			AddRow(models.RequestApproved, 3).
			AddRow(models.RequestRejected, 1).
			AddRow(models.RequestPending, 2))

	counts, err := repo.CountByStatus(ctx, pharmacyID)
	assert.NoError(t, err)
	assert.Equal(t, map[string]int64{
		models.RequestApproved: 3,
		models.RequestRejected: 1,
		models.RequestPending:  2,
	}, counts)
	assert.NoError(t, mock.ExpectationsWereMet())
}
