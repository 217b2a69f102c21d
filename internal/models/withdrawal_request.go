package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankDetails is the payout destination supplied with a withdrawal request.
type BankDetails struct {
	BankName          string `json:"bank_name" db:"bank_name"`
	AccountNumber     string `json:"account_number" db:"account_number"` // Stored in full, rendered masked to non-admin callers
	AccountHolderName string `json:"account_holder_name" db:"account_holder_name"`
}

// WithdrawalRequest is a pharmacy's request to withdraw funds to a bank
// account. Created pending; an admin may move it to processing before the
// terminal approved/rejected decision. Funds are not reserved at creation
// time: sufficiency is checked at decision time against the live balance.
type WithdrawalRequest struct {
	RequestID         uuid.UUID       `json:"request_id" db:"request_id"`
	PharmacyID        uuid.UUID       `json:"pharmacy_id" db:"pharmacy_id"`
	Amount            decimal.Decimal `json:"amount" db:"amount"`
	BankName          string          `json:"bank_name" db:"bank_name"`
	AccountNumber     string          `json:"account_number" db:"account_number"`
	AccountHolderName string          `json:"account_holder_name" db:"account_holder_name"`
	Status            string          `json:"status" db:"status"`
	AdminNotes        string          `json:"admin_notes" db:"admin_notes"`
	ReviewedBy        *uuid.UUID      `json:"reviewed_by" db:"reviewed_by"`
	ReferenceNumber   string          `json:"reference_number" db:"reference_number"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	ProcessedAt       *time.Time      `json:"processed_at" db:"processed_at"`
}

// Terminal reports whether the request has received its one decision.
func (r *WithdrawalRequest) Terminal() bool {
	return r.Status == RequestApproved || r.Status == RequestRejected
}

// Decidable reports whether an admin decision may still be applied.
func (r *WithdrawalRequest) Decidable() bool {
	return r.Status == RequestPending || r.Status == RequestProcessing
}

// MaskedAccountNumber renders the account number for non-admin callers:
// all but the last four digits replaced with asterisks.
func (r *WithdrawalRequest) MaskedAccountNumber() string {
	return MaskAccountNumber(r.AccountNumber)
}

// MaskAccountNumber hides all but the last four characters of an account
// number. Numbers of four characters or fewer are fully masked.
func MaskAccountNumber(accountNumber string) string {
	if len(accountNumber) <= 4 {
		return strings.Repeat("*", len(accountNumber))
	}
	return "*****" + accountNumber[len(accountNumber)-4:]
}
