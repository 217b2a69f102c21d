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

// FundRequestTokener defines only the methods needed by this handler.
type FundRequestTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// FundRequestCreator defines the interface that the service must implement.
type FundRequestCreator interface {
	CreateFundRequest(ctx context.Context, pharmacyID uuid.UUID, amount decimal.Decimal, reason string) (*models.FundRequest, error)
}

// CreateFundRequestBody represents the JSON body for submitting a fund request
// swagger:model CreateFundRequestBody
type CreateFundRequestBody struct {
	// Amount to add to the wallet
	// required: true
	// default: 500.00
	Amount decimal.Decimal `json:"amount"`

	// Reason for the request
	// default: monthly top-up
	Reason string `json:"reason"`
}

// FundRequestResponse represents a created fund request
// swagger:model FundRequestResponse
type FundRequestResponse struct {
	RequestID       uuid.UUID       `json:"request_id"`
	ReferenceNumber string          `json:"reference_number"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// FundRequestErrorResponse represents an error response for fund requests
// swagger:model FundRequestErrorResponse
type FundRequestErrorResponse struct {
	// Error message
	// default: Invalid amount
	Error string `json:"error"`
}

// NewCreateFundRequestHandler returns an HTTP handler for submitting a fund request.
// @Summary Submit fund request
// @Description Records a pending request to add funds to the pharmacy wallet. The balance changes only after an admin approves the request.
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body handlers.CreateFundRequestBody true "Fund Request"
// @Success 201 {object} handlers.FundRequestResponse "Fund request created"
// @Failure 400 {object} handlers.FundRequestErrorResponse "Invalid amount"
// @Failure 401 {object} handlers.FundRequestErrorResponse "Unauthorized"
// @Router /wallet/fund-requests [post]
// @Security BearerAuth
func NewCreateFundRequestHandler(
	svc FundRequestCreator,
	tokenGetter FundRequestTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FundRequestErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(FundRequestErrorResponse{Error: "Unauthorized"})
			return
		}

		var body CreateFundRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logger.Log.Errorw("failed to decode fund request body", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(FundRequestErrorResponse{Error: "Invalid request body"})
			return
		}

		req, err := svc.CreateFundRequest(ctx, claims.SubjectID, body.Amount, body.Reason)
		if err != nil {
			if errors.Is(err, services.ErrInvalidAmount) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(FundRequestErrorResponse{Error: "Invalid amount"})
				return
			}
			logger.Log.Errorw("failed to create fund request", "pharmacyID", claims.SubjectID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(FundRequestErrorResponse{Error: "Internal server error"})
			return
		}

		resp := FundRequestResponse{
			RequestID:       req.RequestID,
			ReferenceNumber: req.ReferenceNumber,
			Amount:          req.Amount,
			Status:          req.Status,
			CreatedAt:       req.CreatedAt,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	}
}
