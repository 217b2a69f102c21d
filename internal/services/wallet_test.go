package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWalletService_GetSummary(t *testing.T) {
	ctx := context.Background()
	pharmacyID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletReader(ctrl)
	ledger := NewMockLedgerHistoryReader(ctrl)

	account := &models.WalletAccount{
		PharmacyID:       pharmacyID,
		AvailableBalance: decimal.NewFromInt(1250),
		TotalEarned:      decimal.NewFromInt(5000),
		TotalSpent:       decimal.NewFromInt(3750),
	}
	wallets.EXPECT().Get(ctx, pharmacyID).Return(account, nil)

	svc := NewWalletService(wallets, ledger)
	got, err := svc.GetSummary(ctx, pharmacyID)

	assert.NoError(t, err)
	assert.Equal(t, account, got)
}

func TestWalletService_GetSummary_NoAccount(t *testing.T) {
	ctx := context.Background()
	pharmacyID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletReader(ctrl)
	ledger := NewMockLedgerHistoryReader(ctrl)

	// A pharmacy with no account row gets a zeroed summary; reads never
	// create accounts.
	wallets.EXPECT().Get(ctx, pharmacyID).Return(nil, sql.ErrNoRows)

	svc := NewWalletService(wallets, ledger)
	got, err := svc.GetSummary(ctx, pharmacyID)

	assert.NoError(t, err)
	assert.Equal(t, pharmacyID, got.PharmacyID)
	assert.True(t, got.AvailableBalance.IsZero())
	assert.True(t, got.PendingWithdrawals.IsZero())
	assert.True(t, got.TotalEarned.IsZero())
	assert.True(t, got.TotalSpent.IsZero())
}

func TestWalletService_GetHistory(t *testing.T) {
	ctx := context.Background()
	pharmacyID := uuid.New()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	wallets := NewMockWalletReader(ctrl)
	ledger := NewMockLedgerHistoryReader(ctrl)

	entries := []models.WalletTransaction{
		{TransactionID: uuid.New()},
		{TransactionID: uuid.New()},
	}

	// Page 3 translates to an offset of two pages.
	ledger.EXPECT().History(ctx, pharmacyID, HistoryPageSize, 2*HistoryPageSize).Return(entries, nil)

	svc := NewWalletService(wallets, ledger)
	got, err := svc.GetHistory(ctx, pharmacyID, 3)

	assert.NoError(t, err)
	assert.Equal(t, entries, got)

	// Page numbers below 1 clamp to the first page.
	ledger.EXPECT().History(ctx, pharmacyID, HistoryPageSize, 0).Return(nil, nil)
	_, err = svc.GetHistory(ctx, pharmacyID, 0)
	assert.NoError(t, err)

	// Reader errors propagate.
	ledger.EXPECT().History(ctx, pharmacyID, HistoryPageSize, 0).Return(nil, errors.New("query failed"))
	_, err = svc.GetHistory(ctx, pharmacyID, 1)
	assert.EqualError(t, err, "query failed")
}
