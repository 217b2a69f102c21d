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

// WithdrawalProcessingTokener defines only the methods needed by this handler.
type WithdrawalProcessingTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// WithdrawalProcessingMarker defines the interface that the service must implement.
type WithdrawalProcessingMarker interface {
	MarkWithdrawalProcessing(ctx context.Context, requestID uuid.UUID, reviewedBy uuid.UUID) (*models.WithdrawalRequest, error)
}

// ProcessingResponse represents a withdrawal request moved into processing
// swagger:model ProcessingResponse
type ProcessingResponse struct {
	RequestID       uuid.UUID `json:"request_id"`
	ReferenceNumber string    `json:"reference_number"`
	Status          string    `json:"status"`
}

// NewWithdrawalProcessingHandler returns an HTTP handler for marking a withdrawal as processing.
// @Summary Mark withdrawal processing
// @Description Moves a pending withdrawal request into the intermediate processing state while the bank transfer is prepared. The request stays decidable.
// @Tags admin
// @Produce json
// @Param requestID path string true "Withdrawal request ID"
// @Success 200 {object} handlers.ProcessingResponse "Request marked processing"
// @Failure 401 {object} handlers.DecisionErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.DecisionErrorResponse "Request not found"
// @Failure 409 {object} handlers.DecisionErrorResponse "Request already processed"
// @Router /admin/withdrawal-requests/{requestID}/processing [post]
// @Security BearerAuth
func NewWithdrawalProcessingHandler(
	svc WithdrawalProcessingMarker,
	tokenGetter WithdrawalProcessingTokener,
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

		req, err := svc.MarkWithdrawalProcessing(ctx, requestID, claims.SubjectID)
		if err != nil {
			writeDecisionError(w, err)
			return
		}

		resp := ProcessingResponse{
			RequestID:       req.RequestID,
			ReferenceNumber: req.ReferenceNumber,
			Status:          req.Status,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
