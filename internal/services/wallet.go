package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/logger"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HistoryPageSize is the transaction history page length.
const HistoryPageSize = 20

// WalletReader reads account rows.
type WalletReader interface {
	Get(ctx context.Context, pharmacyID uuid.UUID) (*models.WalletAccount, error)
}

// LedgerHistoryReader reads the paginated ledger.
type LedgerHistoryReader interface {
	History(ctx context.Context, pharmacyID uuid.UUID, limit, offset int) ([]models.WalletTransaction, error)
}

// WalletService serves the pharmacy dashboard's read side: balance summary
// and transaction history. It never mutates.
type WalletService struct {
	wallets WalletReader
	ledger  LedgerHistoryReader
}

// NewWalletService creates a new WalletService.
func NewWalletService(wallets WalletReader, ledger LedgerHistoryReader) *WalletService {
	return &WalletService{wallets: wallets, ledger: ledger}
}

// GetSummary returns the pharmacy's balance, pending withdrawals, and
// lifetime totals. A pharmacy that has never touched its wallet gets a
// zeroed summary; the read path does not create accounts.
func (s *WalletService) GetSummary(ctx context.Context, pharmacyID uuid.UUID) (*models.WalletAccount, error) {
	account, err := s.wallets.Get(ctx, pharmacyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.WalletAccount{
				PharmacyID:         pharmacyID,
				AvailableBalance:   decimal.Zero,
				PendingWithdrawals: decimal.Zero,
				TotalEarned:        decimal.Zero,
				TotalSpent:         decimal.Zero,
			}, nil
		}
		logger.Log.Errorw("failed to get wallet summary", "pharmacy_id", pharmacyID, "error", err)
		return nil, err
	}
	return account, nil
}

// GetHistory returns one page of the pharmacy's ledger, newest first.
// Pages are 1-based; out-of-range pages return an empty slice.
func (s *WalletService) GetHistory(ctx context.Context, pharmacyID uuid.UUID, page int) ([]models.WalletTransaction, error) {
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * HistoryPageSize

	entries, err := s.ledger.History(ctx, pharmacyID, HistoryPageSize, offset)
	if err != nil {
		logger.Log.Errorw("failed to get transaction history", "pharmacy_id", pharmacyID, "page", page, "error", err)
		return nil, err
	}
	return entries, nil
}
