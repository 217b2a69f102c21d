package services

import (
	"context"
	"errors"
	"time"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/logger"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/metrics"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/repositories"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when a request amount is zero, negative,
	// or carries sub-cent precision. Rejected at creation time; such a
	// request never reaches the approval engine.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidBankDetails is returned when a withdrawal request is missing
	// its payout destination.
	ErrInvalidBankDetails = errors.New("invalid bank details")
)

// WalletProvisioner creates accounts lazily and tracks withdrawal exposure.
type WalletProvisioner interface {
	GetOrCreate(ctx context.Context, pharmacyID uuid.UUID) (*models.WalletAccount, bool, error) // Returns the account and whether this call created it
	ReservePending(ctx context.Context, pharmacyID uuid.UUID, amount decimal.Decimal) error     // Adds to the pending_withdrawals counter
}

// FundRequestStore persists and lists fund requests.
type FundRequestStore interface {
	Save(ctx context.Context, req *models.FundRequest) error
	List(ctx context.Context, status string, limit, offset int) ([]models.FundRequest, error)
}

// WithdrawalRequestStore persists and lists withdrawal requests.
type WithdrawalRequestStore interface {
	Save(ctx context.Context, req *models.WithdrawalRequest) error
	List(ctx context.Context, status string, limit, offset int) ([]models.WithdrawalRequest, error)
}

// RequestService is the request tracker: it owns the creation side of the
// fund and withdrawal request lifecycle. Decisions belong to the
// ApprovalService.
type RequestService struct {
	db          *sqlx.DB
	accounts    WalletProvisioner
	funds       FundRequestStore
	withdrawals WithdrawalRequestStore
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	db *sqlx.DB,
	accounts WalletProvisioner,
	funds FundRequestStore,
	withdrawals WithdrawalRequestStore,
) *RequestService {
	return &RequestService{
		db:          db,
		accounts:    accounts,
		funds:       funds,
		withdrawals: withdrawals,
	}
}

// CreateFundRequest records a pharmacy's pending request to add funds.
// The wallet account is created lazily on first touch.
func (s *RequestService) CreateFundRequest(ctx context.Context, pharmacyID uuid.UUID, amount decimal.Decimal, reason string) (*models.FundRequest, error) {
	if !models.ValidAmount(amount) {
		logger.Log.Warnw("invalid fund request amount", "pharmacy_id", pharmacyID, "amount", amount)
		return nil, ErrInvalidAmount
	}

	req := &models.FundRequest{
		RequestID:       uuid.New(),
		PharmacyID:      pharmacyID,
		Amount:          amount,
		Reason:          reason,
		Status:          models.RequestPending,
		ReferenceNumber: models.FundReferenceNumber(pharmacyID),
		CreatedAt:       time.Now().UTC(),
	}

	err := repositories.InTx(ctx, s.db, func(ctx context.Context) error {
		if _, _, err := s.accounts.GetOrCreate(ctx, pharmacyID); err != nil {
			return err
		}
		return s.funds.Save(ctx, req)
	})
	if err != nil {
		logger.Log.Errorw("failed to create fund request", "pharmacy_id", pharmacyID, "amount", amount, "error", err)
		return nil, err
	}

	metrics.ObserveRequestCreated("fund")
	logger.Log.Infow("fund request created",
		"request_id", req.RequestID,
		"pharmacy_id", pharmacyID,
		"reference_number", req.ReferenceNumber,
	)
	return req, nil
}

// CreateWithdrawalRequest records a pharmacy's pending withdrawal request.
// No funds are reserved: balance sufficiency is checked at decision time
// against the live balance, not at request time. The pending_withdrawals
// counter is adjusted for exposure display only.
func (s *RequestService) CreateWithdrawalRequest(ctx context.Context, pharmacyID uuid.UUID, amount decimal.Decimal, bank models.BankDetails) (*models.WithdrawalRequest, error) {
	if !models.ValidAmount(amount) {
		logger.Log.Warnw("invalid withdrawal request amount", "pharmacy_id", pharmacyID, "amount", amount)
		return nil, ErrInvalidAmount
	}
	if bank.BankName == "" || bank.AccountNumber == "" || bank.AccountHolderName == "" {
		logger.Log.Warnw("incomplete bank details", "pharmacy_id", pharmacyID)
		return nil, ErrInvalidBankDetails
	}

	req := &models.WithdrawalRequest{
		RequestID:         uuid.New(),
		PharmacyID:        pharmacyID,
		Amount:            amount,
		BankName:          bank.BankName,
		AccountNumber:     bank.AccountNumber,
		AccountHolderName: bank.AccountHolderName,
		Status:            models.RequestPending,
		ReferenceNumber:   models.WithdrawalReferenceNumber(pharmacyID),
		CreatedAt:         time.Now().UTC(),
	}

	err := repositories.InTx(ctx, s.db, func(ctx context.Context) error {
		if _, _, err := s.accounts.GetOrCreate(ctx, pharmacyID); err != nil {
			return err
		}
		if err := s.withdrawals.Save(ctx, req); err != nil {
			return err
		}
		return s.accounts.ReservePending(ctx, pharmacyID, amount)
	})
	if err != nil {
		logger.Log.Errorw("failed to create withdrawal request", "pharmacy_id", pharmacyID, "amount", amount, "error", err)
		return nil, err
	}

	metrics.ObserveRequestCreated("withdrawal")
	logger.Log.Infow("withdrawal request created",
		"request_id", req.RequestID,
		"pharmacy_id", pharmacyID,
		"reference_number", req.ReferenceNumber,
	)
	return req, nil
}

// ListFundRequests returns fund requests for the admin dashboard, newest
// first, optionally filtered by status.
func (s *RequestService) ListFundRequests(ctx context.Context, status string, limit, offset int) ([]models.FundRequest, error) {
	return s.funds.List(ctx, status, limit, offset)
}

// ListWithdrawalRequests returns withdrawal requests for the admin
// dashboard, newest first, optionally filtered by status.
func (s *RequestService) ListWithdrawalRequests(ctx context.Context, status string, limit, offset int) ([]models.WithdrawalRequest, error) {
	return s.withdrawals.List(ctx, status, limit, offset)
}
