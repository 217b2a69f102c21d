package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/jwt"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/logger"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/google/uuid"
)

// AnalyticsTokener defines only the methods needed by this handler.
type AnalyticsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// AnalyticsReader defines the interface that the service must implement.
type AnalyticsReader interface {
	GetAnalytics(ctx context.Context, pharmacyID uuid.UUID) (*models.WalletAnalytics, error)
}

// AnalyticsErrorResponse represents an error response for wallet analytics
// swagger:model AnalyticsErrorResponse
type AnalyticsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewGetAnalyticsHandler returns an HTTP handler for wallet analytics.
// @Summary Get wallet analytics
// @Description Returns aggregated wallet metrics for the current month: transaction stats, per-category totals, and request success rates
// @Tags wallet
// @Produce json
// @Success 200 {object} models.WalletAnalytics "Wallet analytics"
// @Failure 401 {object} handlers.AnalyticsErrorResponse "Unauthorized"
// @Failure 500 {object} handlers.AnalyticsErrorResponse "Internal server error"
// @Router /wallet/analytics [get]
// @Security BearerAuth
func NewGetAnalyticsHandler(
	svc AnalyticsReader,
	tokenGetter AnalyticsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Error("unauthorized analytics request: missing or invalid token")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AnalyticsErrorResponse{Error: "Unauthorized"})
			return
		}

		claims, err := tokenGetter.GetClaims(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to parse token claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(AnalyticsErrorResponse{Error: "Unauthorized"})
			return
		}

		analytics, err := svc.GetAnalytics(ctx, claims.SubjectID)
		if err != nil {
			logger.Log.Errorw("failed to get wallet analytics", "pharmacyID", claims.SubjectID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AnalyticsErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(analytics)
	}
}
