package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/jwt"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/logger"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionsTokener defines only the methods needed by this handler.
type TransactionsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// TransactionHistoryReader defines the interface that the service must implement.
type TransactionHistoryReader interface {
	GetHistory(ctx context.Context, pharmacyID uuid.UUID, page int) ([]models.WalletTransaction, error)
}

// TransactionItem represents one ledger entry in the history response
// swagger:model TransactionItem
type TransactionItem struct {
	TransactionID   uuid.UUID       `json:"transaction_id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	BalanceBefore   decimal.Decimal `json:"balance_before"`
	BalanceAfter    decimal.Decimal `json:"balance_after"`
	Category        string          `json:"category"`
	ReferenceNumber string          `json:"reference_number"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TransactionsResponse represents one page of transaction history
// swagger:model TransactionsResponse
type TransactionsResponse struct {
	Page         int               `json:"page"`
	Transactions []TransactionItem `json:"transactions"`
}

// TransactionsErrorResponse represents an error response for transaction history
// swagger:model TransactionsErrorResponse
type TransactionsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetTransactionsHandler returns an HTTP handler for the paginated transaction history.
// @Summary Get transaction history
// @Description Returns one page of the pharmacy's ledger, newest first, twenty entries per page
// @Tags wallet
// @Produce json
// @Param page query int false "Page number, 1-based" default(1)
// @Success 200 {object} handlers.TransactionsResponse "Transaction history page"
// @Failure 401 {object} handlers.TransactionsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.TransactionsErrorResponse "Internal server error"
// @Router /wallet/transactions [get]
// @Security BearerAuth
func NewGetTransactionsHandler(
	svc TransactionHistoryReader,
	tokenGetter TransactionsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized transactions request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Unauthorized"})
			return
		}

		page := 1
		if raw := r.URL.Query().Get("page"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Invalid page"})
				return
			}
			page = parsed
		}

		entries, err := svc.GetHistory(ctx, claims.SubjectID, page)
		if err != nil {
			logger.Log.Errorw("failed to get transaction history", "pharmacyID", claims.SubjectID, "page", page, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(TransactionsErrorResponse{Error: "Internal server error"})
			return
		}

		items := make([]TransactionItem, 0, len(entries))
		for _, e := range entries {
			items = append(items, TransactionItem{
				TransactionID:   e.TransactionID,
				Type:            e.Type,
				Amount:          e.Amount,
				BalanceBefore:   e.BalanceBefore,
				BalanceAfter:    e.BalanceAfter,
				Category:        e.Category,
				ReferenceNumber: e.ReferenceNumber,
				Status:          e.Status,
				CreatedAt:       e.CreatedAt,
			})
		}

		resp := TransactionsResponse{
			Page:         page,
			Transactions: items,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
