package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/jwt"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/logger"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BalanceTokener defines only the methods needed by this handler.
type BalanceTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WalletSummaryReader defines the interface that the service must implement.
type WalletSummaryReader interface {
	GetSummary(ctx context.Context, pharmacyID uuid.UUID) (*models.WalletAccount, error)
}

// BalanceResponse represents the pharmacy wallet summary
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Funds available for spending
	AvailableBalance decimal.Decimal `json:"available_balance"`

	// Sum of withdrawal requests not yet decided
	PendingWithdrawals decimal.Decimal `json:"pending_withdrawals"`

	// Lifetime credits
	TotalEarned decimal.Decimal `json:"total_earned"`

	// Lifetime debits
	TotalSpent decimal.Decimal `json:"total_spent"`
}

// BalanceErrorResponse represents an error response when fetching the balance
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetBalanceHandler returns an HTTP handler for fetching the wallet summary.
// @Summary Get wallet balance
// @Description Returns the available balance, pending withdrawal exposure, and lifetime totals for the authenticated pharmacy
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Wallet summary"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.BalanceErrorResponse "Internal server error"
// @Router /wallet/balance [get]
// @Security BearerAuth
func NewGetBalanceHandler(
	svc WalletSummaryReader,
	tokenGetter BalanceTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized balance request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		account, err := svc.GetSummary(ctx, claims.SubjectID)
		if err != nil {
			logger.Log.Errorw("failed to get wallet summary", "pharmacyID", claims.SubjectID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Internal server error"})
			return
		}

		resp := BalanceResponse{
			AvailableBalance:   account.AvailableBalance,
			PendingWithdrawals: account.PendingWithdrawals,
			TotalEarned:        account.TotalEarned,
			TotalSpent:         account.TotalSpent,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
