package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/jwt"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/logger"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// WithdrawalDecisionTokener defines only the methods needed by this handler.
type WithdrawalDecisionTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WithdrawalRequestDecider defines the interface that the service must implement.
type WithdrawalRequestDecider interface {
	DecideWithdrawalRequest(ctx context.Context, requestID uuid.UUID, decision string, reviewedBy uuid.UUID, adminNotes string) (*models.WithdrawalRequest, *models.BalanceDelta, error)
}

// NewWithdrawalDecisionHandler returns an HTTP handler for deciding a withdrawal request.
// @Summary Decide withdrawal request
// @Description Approves or rejects a withdrawal request. Approval debits the wallet only if the live balance is sufficient; otherwise the request stays pending and 422 is returned.
// @Tags admin
// @Accept json
// @Produce json
// @Param requestID path string true "Withdrawal request ID"
// @Param request body handlers.DecisionBody true "Decision"
// @Success 200 {object} handlers.DecisionResponse "Decision applied"
// @Failure 400 {object} handlers.DecisionErrorResponse "Invalid decision"
// @Failure 401 {object} handlers.DecisionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DecisionErrorResponse "Request not found"
// @Failure 409 {object} handlers.DecisionErrorResponse "Request already processed"
// @Failure 422 {object} handlers.DecisionErrorResponse "Insufficient balance"
// @Router /admin/withdrawal-requests/{requestID}/decision [post]
// @Security BearerAuth
func NewWithdrawalDecisionHandler(
	svc WithdrawalRequestDecider,
	tokenGetter WithdrawalDecisionTokener,
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

		req, delta, err := svc.DecideWithdrawalRequest(ctx, requestID, body.Decision, claims.SubjectID, body.AdminNotes)
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
