package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletAccount represents a pharmacy's wallet row in the database.
// One account exists per pharmacy, created lazily on first fund or
// withdrawal interaction and never deleted.
type WalletAccount struct {
	PharmacyID         uuid.UUID       `json:"pharmacy_id" db:"pharmacy_id"`                   // Owner pharmacy
	AvailableBalance   decimal.Decimal `json:"available_balance" db:"available_balance"`       // Spendable funds, never negative
	PendingWithdrawals decimal.Decimal `json:"pending_withdrawals" db:"pending_withdrawals"`   // Sum of in-flight withdrawal requests
	TotalEarned        decimal.Decimal `json:"total_earned" db:"total_earned"`                 // Lifetime credited total
	TotalSpent         decimal.Decimal `json:"total_spent" db:"total_spent"`                   // Lifetime debited total
	Version            int64           `json:"version" db:"version"`                           // Bumped on every mutation
	LastTransactionAt  *time.Time      `json:"last_transaction_at" db:"last_transaction_at"`   // Timestamp of the last mutation
	CreatedAt          time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at" db:"updated_at"`
}

// BalanceDelta reports the balance movement produced by a single mutation.
type BalanceDelta struct {
	BalanceBefore decimal.Decimal `json:"balance_before"`
	BalanceAfter  decimal.Decimal `json:"balance_after"`
}

// ValidAmount reports whether amount is a usable monetary value: strictly
// positive and no smaller than a cent. The check compares the value, not the
// representation, so trailing zeros ("100.000") are fine.
func ValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.Equal(amount.Truncate(2))
}
