package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request statuses. Fund requests use pending/approved/rejected only;
// withdrawal requests may additionally pass through processing.
const (
	RequestPending    = "pending"
	RequestProcessing = "processing"
	RequestApproved   = "approved"
	RequestRejected   = "rejected"
)

// Admin decisions on a request.
const (
	DecisionApprove = "approve"
	DecisionReject  = "reject"
)

// FundRequest is a pharmacy's self-service request to add funds to its
// wallet. It is created pending and transitions exactly once to approved
// or rejected.
type FundRequest struct {
	RequestID       uuid.UUID       `json:"request_id" db:"request_id"`
	PharmacyID      uuid.UUID       `json:"pharmacy_id" db:"pharmacy_id"`
	Amount          decimal.Decimal `json:"amount" db:"amount"`
	Reason          string          `json:"reason" db:"reason"` // Free-text justification
	Status          string          `json:"status" db:"status"`
	AdminNotes      string          `json:"admin_notes" db:"admin_notes"`
	ReviewedBy      *uuid.UUID      `json:"reviewed_by" db:"reviewed_by"`
	ReferenceNumber string          `json:"reference_number" db:"reference_number"`
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`
	ProcessedAt     *time.Time      `json:"processed_at" db:"processed_at"`
}

// Terminal reports whether the request has received its one decision.
func (r *FundRequest) Terminal() bool {
	return r.Status == RequestApproved || r.Status == RequestRejected
}
