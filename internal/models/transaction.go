package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TransactionCredit = "credit"
	TransactionDebit  = "debit"
)

// Human-facing transaction categories.
const (
	CategoryFundAddition     = "Fund Addition"
	CategoryWithdrawal       = "Withdrawal"
	CategoryPurchase         = "Purchase"
	CategorySale             = "Sale"
	CategoryPlatformFee      = "Platform Fee"
	CategoryRefund           = "Refund"
	CategoryTransferSent     = "Transfer Sent"
	CategoryTransferReceived = "Transfer Received"
)

// TransactionCompleted is the only status the ledger ever records: entries
// are written after the balance mutation they describe, never before.
const TransactionCompleted = "completed"

// WalletTransaction is an immutable ledger entry. Entries are append-only;
// no entry is ever edited or deleted once written.
type WalletTransaction struct {
	TransactionID   uuid.UUID       `json:"transaction_id" db:"transaction_id"`
	PharmacyID      uuid.UUID       `json:"pharmacy_id" db:"pharmacy_id"`
	Type            string          `json:"type" db:"type"`                         // credit or debit
	Amount          decimal.Decimal `json:"amount" db:"amount"`                     // Always positive
	BalanceBefore   decimal.Decimal `json:"balance_before" db:"balance_before"`     // Snapshot before applying
	BalanceAfter    decimal.Decimal `json:"balance_after" db:"balance_after"`       // Snapshot after applying
	Category        string          `json:"category" db:"category"`                 // Human label, e.g. "Fund Addition"
	ReferenceNumber string          `json:"reference_number" db:"reference_number"` // Correlates to the originating request
	Status          string          `json:"status" db:"status"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
}

// CategoryTotal is a per-category aggregate over one month of ledger entries.
type CategoryTotal struct {
	Category string          `json:"category" db:"category"`
	Type     string          `json:"type" db:"type"`
	Total    decimal.Decimal `json:"total" db:"total"`
	Count    int64           `json:"count" db:"count"`
}

// LedgerStats is the aggregate view the analytics projector reads.
type LedgerStats struct {
	TransactionCount   int64           `json:"transaction_count" db:"transaction_count"`
	AverageAmount      decimal.Decimal `json:"average_amount" db:"average_amount"`
	LargestAmount      decimal.Decimal `json:"largest_amount" db:"largest_amount"`
	MonthEarned        decimal.Decimal `json:"month_earned" db:"month_earned"`
	MonthSpent         decimal.Decimal `json:"month_spent" db:"month_spent"`
}

// TransactionEvent is the message published to the transactions topic after
// a ledger entry commits.
type TransactionEvent struct {
	ReferenceNumber string          `json:"reference_number"`
	PharmacyID      string          `json:"pharmacy_id"`
	Type            string          `json:"type"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	BalanceAfter    decimal.Decimal `json:"balance_after"`
	Timestamp       int64           `json:"timestamp"`
}
