package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/logger"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/metrics"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/repositories"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

var (
	// ErrInsufficientBalance is returned when a withdrawal approval is
	// attempted against a balance too low at decision time. The request
	// stays pending and the admin may retry once the balance recovers.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAlreadyProcessed is the idempotency guard: a decision on a request
	// that already received one is a visible no-op, never a second mutation.
	ErrAlreadyProcessed = errors.New("request already processed")

	// ErrAccountNotFound indicates a storage inconsistency: a decidable
	// request exists for a pharmacy with no wallet account. It is fatal by
	// design; the engine never papers over it by creating a zero-balance
	// account mid-transaction.
	ErrAccountNotFound = errors.New("wallet account not found")

	// ErrRequestNotFound is returned when the request ID does not exist.
	ErrRequestNotFound = errors.New("request not found")

	// ErrInvalidDecision is returned for decisions other than approve/reject.
	ErrInvalidDecision = errors.New("invalid decision")
)

// WalletMutator is the account-store surface the approval engine mutates.
type WalletMutator interface {
	GetOrCreate(ctx context.Context, pharmacyID uuid.UUID) (*models.WalletAccount, bool, error)
	Get(ctx context.Context, pharmacyID uuid.UUID) (*models.WalletAccount, error)
	ApplyCredit(ctx context.Context, pharmacyID uuid.UUID, amount decimal.Decimal) (models.BalanceDelta, error)
	ApplyDebit(ctx context.Context, pharmacyID uuid.UUID, amount decimal.Decimal) (models.BalanceDelta, error)
	ReleasePending(ctx context.Context, pharmacyID uuid.UUID, amount decimal.Decimal) error
}

// LedgerAppender writes immutable ledger entries.
type LedgerAppender interface {
	Append(ctx context.Context, entry *models.WalletTransaction) error
}

// FundRequestDecider reads and transitions fund requests.
type FundRequestDecider interface {
	GetForUpdate(ctx context.Context, requestID uuid.UUID) (*models.FundRequest, error)
	SetDecision(ctx context.Context, requestID uuid.UUID, status string, reviewedBy uuid.UUID, adminNotes string, processedAt time.Time) error
}

// WithdrawalRequestDecider reads and transitions withdrawal requests.
type WithdrawalRequestDecider interface {
	GetForUpdate(ctx context.Context, requestID uuid.UUID) (*models.WithdrawalRequest, error)
	SetDecision(ctx context.Context, requestID uuid.UUID, status string, reviewedBy uuid.UUID, adminNotes string, processedAt time.Time) error
	MarkProcessing(ctx context.Context, requestID uuid.UUID, reviewedBy uuid.UUID) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// AnalyticsInvalidator drops cached analytics after a wallet mutation.
type AnalyticsInvalidator interface {
	Invalidate(ctx context.Context, pharmacyID uuid.UUID) error
}

// ApprovalService is the approval engine. Every decision runs as one
// database transaction: request status check, wallet mutation, ledger
// append, and status transition commit or abort together, so a reader never
// observes an approved request without its ledger entry or vice versa.
type ApprovalService struct {
	db          *sqlx.DB
	wallets     WalletMutator
	ledger      LedgerAppender
	funds       FundRequestDecider
	withdrawals WithdrawalRequestDecider
	kafkaWriter KafkaWriter
	cache       AnalyticsInvalidator
}

// NewApprovalService creates a new ApprovalService.
func NewApprovalService(
	db *sqlx.DB,
	wallets WalletMutator,
	ledger LedgerAppender,
	funds FundRequestDecider,
	withdrawals WithdrawalRequestDecider,
	kafkaWriter KafkaWriter,
	cache AnalyticsInvalidator,
) *ApprovalService {
	return &ApprovalService{
		db:          db,
		wallets:     wallets,
		ledger:      ledger,
		funds:       funds,
		withdrawals: withdrawals,
		kafkaWriter: kafkaWriter,
		cache:       cache,
	}
}

// DecideFundRequest applies an admin decision to a fund request. Approval
// credits the wallet and appends a ledger entry; rejection only records the
// decision. Retrying the same decision returns ErrAlreadyProcessed without
// a second credit.
func (s *ApprovalService) DecideFundRequest(ctx context.Context, requestID uuid.UUID, decision string, reviewedBy uuid.UUID, adminNotes string) (*models.FundRequest, *models.BalanceDelta, error) {
	if decision != models.DecisionApprove && decision != models.DecisionReject {
		return nil, nil, ErrInvalidDecision
	}

	var (
		req   *models.FundRequest
		delta *models.BalanceDelta
		entry *models.WalletTransaction
	)

	err := repositories.InTx(ctx, s.db, func(ctx context.Context) error {
		var err error
		req, err = s.funds.GetForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRequestNotFound
			}
			return err
		}
		if req.Status != models.RequestPending {
			return ErrAlreadyProcessed
		}

		now := time.Now().UTC()

		if decision == models.DecisionReject {
			if err := s.funds.SetDecision(ctx, requestID, models.RequestRejected, reviewedBy, adminNotes, now); err != nil {
				return err
			}
			req.Status = models.RequestRejected
			req.ReviewedBy = &reviewedBy
			req.AdminNotes = adminNotes
			req.ProcessedAt = &now
			return nil
		}

		if _, _, err := s.wallets.GetOrCreate(ctx, req.PharmacyID); err != nil {
			return err
		}

		d, err := s.wallets.ApplyCredit(ctx, req.PharmacyID, req.Amount)
		if err != nil {
			return err
		}

		entry = &models.WalletTransaction{
			TransactionID:   uuid.New(),
			PharmacyID:      req.PharmacyID,
			Type:            models.TransactionCredit,
			Amount:          req.Amount,
			BalanceBefore:   d.BalanceBefore,
			BalanceAfter:    d.BalanceAfter,
			Category:        models.CategoryFundAddition,
			ReferenceNumber: req.ReferenceNumber,
			Status:          models.TransactionCompleted,
			CreatedAt:       now,
		}
		if err := s.ledger.Append(ctx, entry); err != nil {
			return err
		}

		if err := s.funds.SetDecision(ctx, requestID, models.RequestApproved, reviewedBy, adminNotes, now); err != nil {
			return err
		}

		req.Status = models.RequestApproved
		req.ReviewedBy = &reviewedBy
		req.AdminNotes = adminNotes
		req.ProcessedAt = &now
		delta = &d
		return nil
	})
	if err != nil {
		metrics.ObserveDecision("fund", outcomeLabel(err))
		logger.Log.Errorw("fund request decision failed",
			"request_id", requestID, "decision", decision, "error", err)
		return nil, nil, err
	}

	metrics.ObserveDecision("fund", req.Status)
	s.afterCommit(ctx, req.PharmacyID, entry)

	logger.Log.Infow("fund request decided",
		"request_id", requestID,
		"status", req.Status,
		"reviewed_by", reviewedBy,
	)
	return req, delta, nil
}

// DecideWithdrawalRequest applies an admin decision to a withdrawal request.
// Approval checks sufficiency against the live balance inside the same
// transaction that debits it; on an insufficient balance the transaction
// aborts and the request stays pending for a later retry.
func (s *ApprovalService) DecideWithdrawalRequest(ctx context.Context, requestID uuid.UUID, decision string, reviewedBy uuid.UUID, adminNotes string) (*models.WithdrawalRequest, *models.BalanceDelta, error) {
	if decision != models.DecisionApprove && decision != models.DecisionReject {
		return nil, nil, ErrInvalidDecision
	}

	var (
		req   *models.WithdrawalRequest
		delta *models.BalanceDelta
		entry *models.WalletTransaction
	)

	err := repositories.InTx(ctx, s.db, func(ctx context.Context) error {
		var err error
		req, err = s.withdrawals.GetForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRequestNotFound
			}
			return err
		}
		if !req.Decidable() {
			return ErrAlreadyProcessed
		}

		now := time.Now().UTC()

		if decision == models.DecisionReject {
			if err := s.withdrawals.SetDecision(ctx, requestID, models.RequestRejected, reviewedBy, adminNotes, now); err != nil {
				return err
			}
			if err := s.wallets.ReleasePending(ctx, req.PharmacyID, req.Amount); err != nil {
				return err
			}
			req.Status = models.RequestRejected
			req.ReviewedBy = &reviewedBy
			req.AdminNotes = adminNotes
			req.ProcessedAt = &now
			return nil
		}

		if _, err := s.wallets.Get(ctx, req.PharmacyID); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAccountNotFound
			}
			return err
		}

		d, err := s.wallets.ApplyDebit(ctx, req.PharmacyID, req.Amount)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrInsufficientBalance
			}
			return err
		}

		entry = &models.WalletTransaction{
			TransactionID:   uuid.New(),
			PharmacyID:      req.PharmacyID,
			Type:            models.TransactionDebit,
			Amount:          req.Amount,
			BalanceBefore:   d.BalanceBefore,
			BalanceAfter:    d.BalanceAfter,
			Category:        models.CategoryWithdrawal,
			ReferenceNumber: req.ReferenceNumber,
			Status:          models.TransactionCompleted,
			CreatedAt:       now,
		}
		if err := s.ledger.Append(ctx, entry); err != nil {
			return err
		}

		if err := s.withdrawals.SetDecision(ctx, requestID, models.RequestApproved, reviewedBy, adminNotes, now); err != nil {
			return err
		}
		if err := s.wallets.ReleasePending(ctx, req.PharmacyID, req.Amount); err != nil {
			return err
		}

		req.Status = models.RequestApproved
		req.ReviewedBy = &reviewedBy
		req.AdminNotes = adminNotes
		req.ProcessedAt = &now
		delta = &d
		return nil
	})
	if err != nil {
		metrics.ObserveDecision("withdrawal", outcomeLabel(err))
		logger.Log.Errorw("withdrawal request decision failed",
			"request_id", requestID, "decision", decision, "error", err)
		return nil, nil, err
	}

	metrics.ObserveDecision("withdrawal", req.Status)
	s.afterCommit(ctx, req.PharmacyID, entry)

	logger.Log.Infow("withdrawal request decided",
		"request_id", requestID,
		"status", req.Status,
		"reviewed_by", reviewedBy,
	)
	return req, delta, nil
}

// MarkWithdrawalProcessing moves a pending withdrawal request into the
// optional intermediate processing state.
func (s *ApprovalService) MarkWithdrawalProcessing(ctx context.Context, requestID uuid.UUID, reviewedBy uuid.UUID) (*models.WithdrawalRequest, error) {
	var req *models.WithdrawalRequest

	err := repositories.InTx(ctx, s.db, func(ctx context.Context) error {
		var err error
		req, err = s.withdrawals.GetForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrRequestNotFound
			}
			return err
		}
		if req.Status != models.RequestPending {
			return ErrAlreadyProcessed
		}

		if err := s.withdrawals.MarkProcessing(ctx, requestID, reviewedBy); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrAlreadyProcessed
			}
			return err
		}
		req.Status = models.RequestProcessing
		req.ReviewedBy = &reviewedBy
		return nil
	})
	if err != nil {
		logger.Log.Errorw("failed to mark withdrawal processing", "request_id", requestID, "error", err)
		return nil, err
	}

	logger.Log.Infow("withdrawal request marked processing", "request_id", requestID, "reviewed_by", reviewedBy)
	return req, nil
}

// afterCommit runs the best-effort side effects of a committed decision:
// cache invalidation and, for approvals, the transaction event.
func (s *ApprovalService) afterCommit(ctx context.Context, pharmacyID uuid.UUID, entry *models.WalletTransaction) {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, pharmacyID); err != nil {
			logger.Log.Errorw("failed to invalidate analytics cache", "pharmacy_id", pharmacyID, "error", err)
		}
	}
	if entry != nil {
		s.publishTransaction(ctx, entry)
	}
}

// publishTransaction publishes a committed ledger entry to Kafka.
func (s *ApprovalService) publishTransaction(ctx context.Context, entry *models.WalletTransaction) {
	if s.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "reference_number", entry.ReferenceNumber)
		return
	}

	event := models.TransactionEvent{
		ReferenceNumber: entry.ReferenceNumber,
		PharmacyID:      entry.PharmacyID.String(),
		Type:            entry.Type,
		Category:        entry.Category,
		Amount:          entry.Amount,
		BalanceAfter:    entry.BalanceAfter,
		Timestamp:       entry.CreatedAt.Unix(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal transaction event", "reference_number", entry.ReferenceNumber, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(entry.ReferenceNumber),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish transaction event", "reference_number", entry.ReferenceNumber, "error", err)
	} else {
		logger.Log.Infow("transaction event published", "reference_number", entry.ReferenceNumber, "amount", entry.Amount)
	}
}

func outcomeLabel(err error) string {
	switch {
	case errors.Is(err, ErrAlreadyProcessed):
		return "already_processed"
	case errors.Is(err, ErrInsufficientBalance):
		return "insufficient_balance"
	case errors.Is(err, ErrRequestNotFound):
		return "not_found"
	default:
		return "error"
	}
}
