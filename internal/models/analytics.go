package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletAnalytics is the read-side projection over the ledger and the
// request trackers. It holds no state of its own: every field is
// recomputable from the source tables at any time.
type WalletAnalytics struct {
	PharmacyID            uuid.UUID       `json:"pharmacy_id"`
	TransactionCount      int64           `json:"transaction_count"`
	AverageTransaction    decimal.Decimal `json:"average_transaction"`
	LargestTransaction    decimal.Decimal `json:"largest_transaction"`
	MonthEarned           decimal.Decimal `json:"month_earned"`
	MonthSpent            decimal.Decimal `json:"month_spent"`
	CategoryTotals        []CategoryTotal `json:"category_totals"`
	FundSuccessRate       float64         `json:"fund_success_rate"`       // approved / (approved + rejected), pending excluded
	WithdrawalSuccessRate float64         `json:"withdrawal_success_rate"` // approved / (approved + rejected), pending excluded
	GeneratedAt           time.Time       `json:"generated_at"`
}

// SuccessRate computes approved / (approved + rejected) from per-status
// counts, excluding still-pending requests. Returns 0 when nothing has
// been decided yet.
func SuccessRate(counts map[string]int64) float64 {
	decided := counts[RequestApproved] + counts[RequestRejected]
	if decided == 0 {
		return 0
	}
	return float64(counts[RequestApproved]) / float64(decided)
}
