package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/jwt"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/logger"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WithdrawalRequestTokener defines only the methods needed by this handler.
type WithdrawalRequestTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WithdrawalRequestCreator defines the interface that the service must implement.
type WithdrawalRequestCreator interface {
	CreateWithdrawalRequest(ctx context.Context, pharmacyID uuid.UUID, amount decimal.Decimal, bank models.BankDetails) (*models.WithdrawalRequest, error)
}

// CreateWithdrawalRequestBody represents the JSON body for submitting a withdrawal request
// swagger:model CreateWithdrawalRequestBody
type CreateWithdrawalRequestBody struct {
	// Amount to withdraw
	// required: true
	// default: 300.00
	Amount decimal.Decimal `json:"amount"`

	// Destination bank name
	// required: true
	BankName string `json:"bank_name"`

	// Destination account number
	// required: true
	AccountNumber string `json:"account_number"`

	// Account holder name
	// required: true
	AccountHolderName string `json:"account_holder_name"`
}

// WithdrawalRequestResponse represents a created withdrawal request.
// The account number is masked to its last four digits.
// swagger:model WithdrawalRequestResponse
type WithdrawalRequestResponse struct {
	RequestID       uuid.UUID       `json:"request_id"`
	ReferenceNumber string          `json:"reference_number"`
	Amount          decimal.Decimal `json:"amount"`
	BankName        string          `json:"bank_name"`
	AccountNumber   string          `json:"account_number"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// WithdrawalRequestErrorResponse represents an error response for withdrawal requests
// swagger:model WithdrawalRequestErrorResponse
type WithdrawalRequestErrorResponse struct {
	// Error message
	// default: Invalid amount
	Error string `json:"error"`
}

// NewCreateWithdrawalRequestHandler returns an HTTP handler for submitting a withdrawal request.
// @Summary Submit withdrawal request
// @Description Records a pending request to withdraw funds to a bank account. Balance sufficiency is checked at approval time, not here.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.CreateWithdrawalRequestBody true "Withdrawal Request"
// @Success 201 {object} handlers.WithdrawalRequestResponse "Withdrawal request created"
// @Failure 400 {object} handlers.WithdrawalRequestErrorResponse "Invalid amount or bank details"
// @Failure 401 {object} handlers.WithdrawalRequestErrorResponse "Unauthorized"
// @Router /wallet/withdrawal-requests [post]
// @Security BearerAuth
func NewCreateWithdrawalRequestHandler(
	svc WithdrawalRequestCreator,
	tokenGetter WithdrawalRequestTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WithdrawalRequestErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(WithdrawalRequestErrorResponse{Error: "Unauthorized"})
			return
		}

		var body CreateWithdrawalRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logger.Log.Errorw("failed to decode withdrawal request body", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(WithdrawalRequestErrorResponse{Error: "Invalid request body"})
			return
		}

		bank := models.BankDetails{
			BankName:          body.BankName,
			AccountNumber:     body.AccountNumber,
			AccountHolderName: body.AccountHolderName,
		}

		req, err := svc.CreateWithdrawalRequest(ctx, claims.SubjectID, body.Amount, bank)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawalRequestErrorResponse{Error: "Invalid amount"})
			case errors.Is(err, services.ErrInvalidBankDetails):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(WithdrawalRequestErrorResponse{Error: "Invalid bank details"})
			default:
				logger.Log.Errorw("failed to create withdrawal request", "pharmacyID", claims.SubjectID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(WithdrawalRequestErrorResponse{Error: "Internal server error"})
			}
			return
		}

		resp := WithdrawalRequestResponse{
			RequestID:       req.RequestID,
			ReferenceNumber: req.ReferenceNumber,
			Amount:          req.Amount,
			BankName:        req.BankName,
			AccountNumber:   req.MaskedAccountNumber(),
			Status:          req.Status,
			CreatedAt:       req.CreatedAt,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	}
}
