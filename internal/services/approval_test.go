package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTxDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestApprovalService_DecideFundRequest_Approve(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	pharmacyID := uuid.New()
	adminID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock := newTxDB(t)
	wallets := NewMockWalletMutator(ctrl)
	ledger := NewMockLedgerAppender(ctrl)
	funds := NewMockFundRequestDecider(ctrl)
	withdrawals := NewMockWithdrawalRequestDecider(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)
	cache := NewMockAnalyticsInvalidator(ctrl)

	amount := decimal.NewFromInt(500)
	pending := &models.FundRequest{
		RequestID:       requestID,
		PharmacyID:      pharmacyID,
		Amount:          amount,
		Status:          models.RequestPending,
		ReferenceNumber: "PH-3F2A1B-FUND-9C41D2",
	}

	dbMock.ExpectBegin()
	funds.EXPECT().GetForUpdate(gomock.Any(), requestID).Return(pending, nil)
	wallets.EXPECT().GetOrCreate(gomock.Any(), pharmacyID).Return(&models.WalletAccount{PharmacyID: pharmacyID}, false, nil)
	wallets.EXPECT().ApplyCredit(gomock.Any(), pharmacyID, amount).
		Return(models.BalanceDelta{BalanceBefore: decimal.Zero, BalanceAfter: amount}, nil)
	var appended *models.WalletTransaction
	ledger.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.WalletTransaction) error {
			appended = entry
			return nil
		})
	funds.EXPECT().SetDecision(gomock.Any(), requestID, models.RequestApproved, adminID, "looks good", gomock.Any()).Return(nil)
	dbMock.ExpectCommit()
	cache.EXPECT().Invalidate(ctx, pharmacyID).Return(nil)
	kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

	svc := NewApprovalService(db, wallets, ledger, funds, withdrawals, kafkaWriter, cache)
	req, delta, err := svc.DecideFundRequest(ctx, requestID, models.DecisionApprove, adminID, "looks good")

	assert.NoError(t, err)
	assert.Equal(t, models.RequestApproved, req.Status)
	assert.Equal(t, adminID, *req.ReviewedBy)
	assert.NotNil(t, req.ProcessedAt)
	assert.True(t, delta.BalanceBefore.IsZero())
	assert.True(t, delta.BalanceAfter.Equal(amount))

	require.NotNil(t, appended)
	assert.Equal(t, models.TransactionCredit, appended.Type)
	assert.Equal(t, models.CategoryFundAddition, appended.Category)
	assert.Equal(t, pending.ReferenceNumber, appended.ReferenceNumber)
	assert.True(t, appended.BalanceBefore.IsZero())
	assert.True(t, appended.BalanceAfter.Equal(amount))

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestApprovalService_DecideFundRequest_Reject(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	pharmacyID := uuid.New()
	adminID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock := newTxDB(t)
	wallets := NewMockWalletMutator(ctrl)
	ledger := NewMockLedgerAppender(ctrl)
	funds := NewMockFundRequestDecider(ctrl)
	withdrawals := NewMockWithdrawalRequestDecider(ctrl)
	cache := NewMockAnalyticsInvalidator(ctrl)

	pending := &models.FundRequest{
		RequestID:  requestID,
		PharmacyID: pharmacyID,
		Amount:     decimal.NewFromInt(250),
		Status:     models.RequestPending,
	}

	// Rejection records the decision and nothing else: no credit, no entry.
	dbMock.ExpectBegin()
	funds.EXPECT().GetForUpdate(gomock.Any(), requestID).Return(pending, nil)
	funds.EXPECT().SetDecision(gomock.Any(), requestID, models.RequestRejected, adminID, "insufficient documentation", gomock.Any()).Return(nil)
	dbMock.ExpectCommit()
	cache.EXPECT().Invalidate(ctx, pharmacyID).Return(nil)

	svc := NewApprovalService(db, wallets, ledger, funds, withdrawals, nil, cache)
	req, delta, err := svc.DecideFundRequest(ctx, requestID, models.DecisionReject, adminID, "insufficient documentation")

	assert.NoError(t, err)
	assert.Equal(t, models.RequestRejected, req.Status)
	assert.Nil(t, delta)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestApprovalService_DecideFundRequest_Errors(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	adminID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock := newTxDB(t)
	wallets := NewMockWalletMutator(ctrl)
	ledger := NewMockLedgerAppender(ctrl)
	funds := NewMockFundRequestDecider(ctrl)
	withdrawals := NewMockWithdrawalRequestDecider(ctrl)

	svc := NewApprovalService(db, wallets, ledger, funds, withdrawals, nil, nil)

	// 1. Unknown decision is rejected before any transaction starts.
	_, _, err := svc.DecideFundRequest(ctx, requestID, "maybe", adminID, "")
	assert.ErrorIs(t, err, ErrInvalidDecision)

	// 2. Missing request.
	dbMock.ExpectBegin()
	funds.EXPECT().GetForUpdate(gomock.Any(), requestID).Return(nil, sql.ErrNoRows)
	dbMock.ExpectRollback()
	_, _, err = svc.DecideFundRequest(ctx, requestID, models.DecisionApprove, adminID, "")
	assert.ErrorIs(t, err, ErrRequestNotFound)

	// 3. A second decision on an approved request is a visible no-op.
	dbMock.ExpectBegin()
	funds.EXPECT().GetForUpdate(gomock.Any(), requestID).Return(&models.FundRequest{
		RequestID: requestID,
		Status:    models.RequestApproved,
	}, nil)
	dbMock.ExpectRollback()
	_, _, err = svc.DecideFundRequest(ctx, requestID, models.DecisionApprove, adminID, "")
	assert.ErrorIs(t, err, ErrAlreadyProcessed)

	// 4. Credit failure aborts the transaction; no decision is recorded.
	dbMock.ExpectBegin()
	funds.EXPECT().GetForUpdate(gomock.Any(), requestID).Return(&models.FundRequest{
		RequestID:  requestID,
		PharmacyID: uuid.New(),
		Amount:     decimal.NewFromInt(100),
		Status:     models.RequestPending,
	}, nil)
	wallets.EXPECT().GetOrCreate(gomock.Any(), gomock.Any()).Return(&models.WalletAccount{}, false, nil)
	wallets.EXPECT().ApplyCredit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.BalanceDelta{}, errors.New("connection reset"))
	dbMock.ExpectRollback()
	_, _, err = svc.DecideFundRequest(ctx, requestID, models.DecisionApprove, adminID, "")
	assert.EqualError(t, err, "connection reset")

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestApprovalService_DecideWithdrawalRequest_Approve(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	pharmacyID := uuid.New()
	adminID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock := newTxDB(t)
	wallets := NewMockWalletMutator(ctrl)
	ledger := NewMockLedgerAppender(ctrl)
	funds := NewMockFundRequestDecider(ctrl)
	withdrawals := NewMockWithdrawalRequestDecider(ctrl)
	kafkaWriter := NewMockKafkaWriter(ctrl)
	cache := NewMockAnalyticsInvalidator(ctrl)

	amount := decimal.NewFromInt(300)
	pending := &models.WithdrawalRequest{
		RequestID:       requestID,
		PharmacyID:      pharmacyID,
		Amount:          amount,
		Status:          models.RequestPending,
		ReferenceNumber: "WD-PH-3F2A1B-7E20AC",
	}

	dbMock.ExpectBegin()
	withdrawals.EXPECT().GetForUpdate(gomock.Any(), requestID).Return(pending, nil)
	wallets.EXPECT().Get(gomock.Any(), pharmacyID).Return(&models.WalletAccount{
		PharmacyID:       pharmacyID,
		AvailableBalance: decimal.NewFromInt(500),
	}, nil)
	wallets.EXPECT().ApplyDebit(gomock.Any(), pharmacyID, amount).
		Return(models.BalanceDelta{
			BalanceBefore: decimal.NewFromInt(500),
			BalanceAfter:  decimal.NewFromInt(200),
		}, nil)
	var appended *models.WalletTransaction
	ledger.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.WalletTransaction) error {
			appended = entry
			return nil
		})
	withdrawals.EXPECT().SetDecision(gomock.Any(), requestID, models.RequestApproved, adminID, "", gomock.Any()).Return(nil)
	wallets.EXPECT().ReleasePending(gomock.Any(), pharmacyID, amount).Return(nil)
	dbMock.ExpectCommit()
	cache.EXPECT().Invalidate(ctx, pharmacyID).Return(nil)
	kafkaWriter.EXPECT().WriteMessages(ctx, gomock.Any()).Return(nil)

	svc := NewApprovalService(db, wallets, ledger, funds, withdrawals, kafkaWriter, cache)
	req, delta, err := svc.DecideWithdrawalRequest(ctx, requestID, models.DecisionApprove, adminID, "")

	assert.NoError(t, err)
	assert.Equal(t, models.RequestApproved, req.Status)
	assert.True(t, delta.BalanceBefore.Equal(decimal.NewFromInt(500)))
	assert.True(t, delta.BalanceAfter.Equal(decimal.NewFromInt(200)))

	require.NotNil(t, appended)
	assert.Equal(t, models.TransactionDebit, appended.Type)
	assert.Equal(t, models.CategoryWithdrawal, appended.Category)
	assert.Equal(t, pending.ReferenceNumber, appended.ReferenceNumber)

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestApprovalService_DecideWithdrawalRequest_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	pharmacyID := uuid.New()
	adminID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock := newTxDB(t)
	wallets := NewMockWalletMutator(ctrl)
	ledger := NewMockLedgerAppender(ctrl)
	funds := NewMockFundRequestDecider(ctrl)
	withdrawals := NewMockWithdrawalRequestDecider(ctrl)

	amount := decimal.NewFromInt(600)
	pending := &models.WithdrawalRequest{
		RequestID:  requestID,
		PharmacyID: pharmacyID,
		Amount:     amount,
		Status:     models.RequestPending,
	}

	// The debit predicate fails against a balance of 500; the transaction
	// aborts and the request keeps its pending status for a later retry.
	dbMock.ExpectBegin()
	withdrawals.EXPECT().GetForUpdate(gomock.Any(), requestID).Return(pending, nil)
	wallets.EXPECT().Get(gomock.Any(), pharmacyID).Return(&models.WalletAccount{
		PharmacyID:       pharmacyID,
		AvailableBalance: decimal.NewFromInt(500),
	}, nil)
	wallets.EXPECT().ApplyDebit(gomock.Any(), pharmacyID, amount).Return(models.BalanceDelta{}, sql.ErrNoRows)
	dbMock.ExpectRollback()

	svc := NewApprovalService(db, wallets, ledger, funds, withdrawals, nil, nil)
	_, _, err := svc.DecideWithdrawalRequest(ctx, requestID, models.DecisionApprove, adminID, "")

	assert.ErrorIs(t, err, ErrInsufficientBalance)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestApprovalService_DecideWithdrawalRequest_Reject(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	pharmacyID := uuid.New()
	adminID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock := newTxDB(t)
	wallets := NewMockWalletMutator(ctrl)
	ledger := NewMockLedgerAppender(ctrl)
	funds := NewMockFundRequestDecider(ctrl)
	withdrawals := NewMockWithdrawalRequestDecider(ctrl)
	cache := NewMockAnalyticsInvalidator(ctrl)

	amount := decimal.NewFromInt(150)
	pending := &models.WithdrawalRequest{
		RequestID:  requestID,
		PharmacyID: pharmacyID,
		Amount:     amount,
		Status:     models.RequestPending,
	}

	// Rejection releases the pending exposure but never touches the balance.
	dbMock.ExpectBegin()
	withdrawals.EXPECT().GetForUpdate(gomock.Any(), requestID).Return(pending, nil)
	withdrawals.EXPECT().SetDecision(gomock.Any(), requestID, models.RequestRejected, adminID, "bank details mismatch", gomock.Any()).Return(nil)
	wallets.EXPECT().ReleasePending(gomock.Any(), pharmacyID, amount).Return(nil)
	dbMock.ExpectCommit()
	cache.EXPECT().Invalidate(ctx, pharmacyID).Return(nil)

	svc := NewApprovalService(db, wallets, ledger, funds, withdrawals, nil, cache)
	req, delta, err := svc.DecideWithdrawalRequest(ctx, requestID, models.DecisionReject, adminID, "bank details mismatch")

	assert.NoError(t, err)
	assert.Equal(t, models.RequestRejected, req.Status)
	assert.Nil(t, delta)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestApprovalService_DecideWithdrawalRequest_Errors(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	pharmacyID := uuid.New()
	adminID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock := newTxDB(t)
	wallets := NewMockWalletMutator(ctrl)
	ledger := NewMockLedgerAppender(ctrl)
	funds := NewMockFundRequestDecider(ctrl)
	withdrawals := NewMockWithdrawalRequestDecider(ctrl)

	svc := NewApprovalService(db, wallets, ledger, funds, withdrawals, nil, nil)

	// 1. A decidable request with no wallet account is a storage
	// inconsistency, not a reason to mint an account.
	dbMock.ExpectBegin()
	withdrawals.EXPECT().GetForUpdate(gomock.Any(), requestID).Return(&models.WithdrawalRequest{
		RequestID:  requestID,
		PharmacyID: pharmacyID,
		Amount:     decimal.NewFromInt(100),
		Status:     models.RequestPending,
	}, nil)
	wallets.EXPECT().Get(gomock.Any(), pharmacyID).Return(nil, sql.ErrNoRows)
	dbMock.ExpectRollback()
	_, _, err := svc.DecideWithdrawalRequest(ctx, requestID, models.DecisionApprove, adminID, "")
	assert.ErrorIs(t, err, ErrAccountNotFound)

	// 2. Terminal request.
	dbMock.ExpectBegin()
	withdrawals.EXPECT().GetForUpdate(gomock.Any(), requestID).Return(&models.WithdrawalRequest{
		RequestID: requestID,
		Status:    models.RequestRejected,
	}, nil)
	dbMock.ExpectRollback()
	_, _, err = svc.DecideWithdrawalRequest(ctx, requestID, models.DecisionApprove, adminID, "")
	assert.ErrorIs(t, err, ErrAlreadyProcessed)

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestApprovalService_DecideWithdrawalRequest_Processing(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	pharmacyID := uuid.New()
	adminID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock := newTxDB(t)
	wallets := NewMockWalletMutator(ctrl)
	ledger := NewMockLedgerAppender(ctrl)
	funds := NewMockFundRequestDecider(ctrl)
	withdrawals := NewMockWithdrawalRequestDecider(ctrl)

	amount := decimal.NewFromInt(75)

	// A request in processing is still decidable.
	dbMock.ExpectBegin()
	withdrawals.EXPECT().GetForUpdate(gomock.Any(), requestID).Return(&models.WithdrawalRequest{
		RequestID:  requestID,
		PharmacyID: pharmacyID,
		Amount:     amount,
		Status:     models.RequestProcessing,
	}, nil)
	withdrawals.EXPECT().SetDecision(gomock.Any(), requestID, models.RequestRejected, adminID, "", gomock.Any()).Return(nil)
	wallets.EXPECT().ReleasePending(gomock.Any(), pharmacyID, amount).Return(nil)
	dbMock.ExpectCommit()

	svc := NewApprovalService(db, wallets, ledger, funds, withdrawals, nil, nil)
	req, _, err := svc.DecideWithdrawalRequest(ctx, requestID, models.DecisionReject, adminID, "")

	assert.NoError(t, err)
	assert.Equal(t, models.RequestRejected, req.Status)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestApprovalService_MarkWithdrawalProcessing(t *testing.T) {
	ctx := context.Background()
	requestID := uuid.New()
	adminID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	db, dbMock := newTxDB(t)
	wallets := NewMockWalletMutator(ctrl)
	ledger := NewMockLedgerAppender(ctrl)
	funds := NewMockFundRequestDecider(ctrl)
	withdrawals := NewMockWithdrawalRequestDecider(ctrl)

	svc := NewApprovalService(db, wallets, ledger, funds, withdrawals, nil, nil)

	// Pending moves to processing.
	dbMock.ExpectBegin()
	withdrawals.EXPECT().GetForUpdate(gomock.Any(), requestID).Return(&models.WithdrawalRequest{
		RequestID: requestID,
		Status:    models.RequestPending,
	}, nil)
	withdrawals.EXPECT().MarkProcessing(gomock.Any(), requestID, adminID).Return(nil)
	dbMock.ExpectCommit()

	req, err := svc.MarkWithdrawalProcessing(ctx, requestID, adminID)
	assert.NoError(t, err)
	assert.Equal(t, models.RequestProcessing, req.Status)
	assert.Equal(t, adminID, *req.ReviewedBy)

	// Anything past pending cannot move there again.
	dbMock.ExpectBegin()
	withdrawals.EXPECT().GetForUpdate(gomock.Any(), requestID).Return(&models.WithdrawalRequest{
		RequestID: requestID,
		Status:    models.RequestProcessing,
	}, nil)
	dbMock.ExpectRollback()

	_, err = svc.MarkWithdrawalProcessing(ctx, requestID, adminID)
	assert.ErrorIs(t, err, ErrAlreadyProcessed)

	assert.NoError(t, dbMock.ExpectationsWereMet())
}
