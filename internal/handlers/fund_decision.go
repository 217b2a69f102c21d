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
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FundDecisionTokener defines only the methods needed by this handler.
type FundDecisionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// FundRequestDecider defines the interface that the service must implement.
type FundRequestDecider interface {
	DecideFundRequest(ctx context.Context, requestID uuid.UUID, decision string, reviewedBy uuid.UUID, adminNotes string) (*models.FundRequest, *models.BalanceDelta, error)
}

// DecisionBody represents the JSON body for an admin decision
// swagger:model DecisionBody
type DecisionBody struct {
	// Decision to apply
	// required: true
	// enum: approve,reject
	Decision string `json:"decision"`

	// Optional notes for the pharmacy
	AdminNotes string `json:"admin_notes"`
}

// DecisionResponse represents the outcome of an applied decision
// swagger:model DecisionResponse
type DecisionResponse struct {
	RequestID       uuid.UUID        `json:"request_id"`
	ReferenceNumber string           `json:"reference_number"`
	Status          string           `json:"status"`
	ProcessedAt     *time.Time       `json:"processed_at,omitempty"`
	BalanceBefore   *decimal.Decimal `json:"balance_before,omitempty"`
	BalanceAfter    *decimal.Decimal `json:"balance_after,omitempty"`
}

// DecisionErrorResponse represents an error response for admin decisions
// swagger:model DecisionErrorResponse
type DecisionErrorResponse struct {
	// Error message
	// default: Request already processed
	Error string `json:"error"`
}

// NewFundDecisionHandler returns an HTTP handler for deciding a fund request.
// @Summary Decide fund request
// @Description Approves or rejects a pending fund request. Approval credits the pharmacy wallet and appends a ledger entry in the same transaction.
// @Tags admin
// @Accept json
// @Produce json
// @Param requestID path string true "Fund request ID"
// @Param request body handlers.DecisionBody true "Decision"
// @Success 200 {object} handlers.DecisionResponse "Decision applied"
// @Failure 400 {object} handlers.DecisionErrorResponse "Invalid decision"
// @Failure 401 {object} handlers.DecisionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DecisionErrorResponse "Request not found"
// @Failure 409 {object} handlers.DecisionErrorResponse "Request already processed"
// @Router /admin/fund-requests/{requestID}/decision [post]
// @Security BearerAuth
func NewFundDecisionHandler(
	svc FundRequestDecider,
	tokenGetter FundDecisionTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DecisionErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get claims from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(DecisionErrorResponse{Error: "Unauthorized"})
			return
		}

		requestID, err := uuid.Parse(chi.URLParam(r, "requestID"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DecisionErrorResponse{Error: "Invalid request ID"})
			return
		}

		var body DecisionBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			logger.Log.Errorw("failed to decode decision body", "error", err)
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(DecisionErrorResponse{Error: "Invalid request body"})
			return
		}

		req, delta, err := svc.DecideFundRequest(ctx, requestID, body.Decision, claims.SubjectID, body.AdminNotes)
		if err != nil {
			writeDecisionError(w, err)
			return
		}

		resp := DecisionResponse{
			RequestID:       req.RequestID,
			ReferenceNumber: req.ReferenceNumber,
			Status:          req.Status,
			ProcessedAt:     req.ProcessedAt,
		}
		if delta != nil {
			resp.BalanceBefore = &delta.BalanceBefore
			resp.BalanceAfter = &delta.BalanceAfter
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// writeDecisionError maps approval engine errors to HTTP statuses. The
// insufficient balance case is 422: the decision was valid but cannot be
// applied against the current balance.
func writeDecisionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDecision):
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(DecisionErrorResponse{Error: "Invalid decision"})
	case errors.Is(err, services.ErrRequestNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(DecisionErrorResponse{Error: "Request not found"})
	case errors.Is(err, services.ErrAlreadyProcessed):
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(DecisionErrorResponse{Error: "Request already processed"})
	case errors.Is(err, services.ErrInsufficientBalance):
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(DecisionErrorResponse{Error: "Insufficient balance"})
	default:
		logger.Log.Errorw("decision failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(DecisionErrorResponse{Error: "Internal server error"})
	}
}
