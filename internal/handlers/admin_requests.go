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

// AdminPageSize is the admin dashboard page length.
const AdminPageSize = 50

// AdminRequestsTokener defines only the methods needed by these handlers.
type AdminRequestsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// RequestLister defines the interface that the service must implement.
type RequestLister interface {
	ListFundRequests(ctx context.Context, status string, limit, offset int) ([]models.FundRequest, error)
	ListWithdrawalRequests(ctx context.Context, status string, limit, offset int) ([]models.WithdrawalRequest, error)
}

// AdminFundRequestItem represents a fund request row on the admin dashboard
// swagger:model AdminFundRequestItem
type AdminFundRequestItem struct {
	RequestID       uuid.UUID       `json:"request_id"`
	PharmacyID      uuid.UUID       `json:"pharmacy_id"`
	PharmacyCode    string          `json:"pharmacy_code"`
	Amount          decimal.Decimal `json:"amount"`
	Reason          string          `json:"reason,omitempty"`
	Status          string          `json:"status"`
	AdminNotes      string          `json:"admin_notes,omitempty"`
	ReferenceNumber string          `json:"reference_number"`
	CreatedAt       time.Time       `json:"created_at"`
	ProcessedAt     *time.Time      `json:"processed_at,omitempty"`
}

// AdminWithdrawalRequestItem represents a withdrawal request row on the
// admin dashboard. Bank details are unmasked: the admin executes the
// transfer.
// swagger:model AdminWithdrawalRequestItem
type AdminWithdrawalRequestItem struct {
	RequestID         uuid.UUID       `json:"request_id"`
	PharmacyID        uuid.UUID       `json:"pharmacy_id"`
	PharmacyCode      string          `json:"pharmacy_code"`
	Amount            decimal.Decimal `json:"amount"`
	BankName          string          `json:"bank_name"`
	AccountNumber     string          `json:"account_number"`
	AccountHolderName string          `json:"account_holder_name"`
	Status            string          `json:"status"`
	AdminNotes        string          `json:"admin_notes,omitempty"`
	ReferenceNumber   string          `json:"reference_number"`
	CreatedAt         time.Time       `json:"created_at"`
	ProcessedAt       *time.Time      `json:"processed_at,omitempty"`
}

// AdminRequestsErrorResponse represents an error response for admin request listings
// swagger:model AdminRequestsErrorResponse
type AdminRequestsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

var validStatusFilters = map[string]struct{}{
	"":                       {},
	models.RequestPending:    {},
	models.RequestProcessing: {},
	models.RequestApproved:   {},
	models.RequestRejected:   {},
}

// adminListParams extracts the shared status and page query parameters.
func adminListParams(r *http.Request) (status string, offset int, ok bool) {
	status = r.URL.Query().Get("status")
	if _, valid := validStatusFilters[status]; !valid {
		return "", 0, false
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return "", 0, false
		}
		page = parsed
	}
	return status, (page - 1) * AdminPageSize, true
}

func adminClaims(w http.ResponseWriter, r *http.Request, tokenGetter AdminRequestsTokener) (*jwt.Claims, bool) {
	ctx := r.Context()

	tokenStr, err := tokenGetter.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("failed to get token from request", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(AdminRequestsErrorResponse{Error: "Unauthorized"})
		return nil, false
	}

	claims, err := tokenGetter.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to get claims from token", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(AdminRequestsErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return claims, true
}

// NewListFundRequestsHandler returns an HTTP handler listing fund requests for admins.
// @Summary List fund requests
// @Description Returns fund requests across all pharmacies, newest first, optionally filtered by status
// @Tags admin
// @Produce json
// @Param status query string false "Status filter" Enums(pending, processing, approved, rejected)
// @Param page query int false "Page number, 1-based" default(1)
// @Success 200 {array} handlers.AdminFundRequestItem "Fund requests"
// @Failure 400 {object} handlers.AdminRequestsErrorResponse "Invalid status or page"
// @Failure 401 {object} handlers.AdminRequestsErrorResponse "Unauthorized"
// @Router /admin/fund-requests [get]
// @Security BearerAuth
func NewListFundRequestsHandler(
	svc RequestLister,
	tokenGetter AdminRequestsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := adminClaims(w, r, tokenGetter); !ok {
			return
		}

		status, offset, ok := adminListParams(r)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminRequestsErrorResponse{Error: "Invalid status or page"})
			return
		}

		requests, err := svc.ListFundRequests(ctx, status, AdminPageSize, offset)
		if err != nil {
			logger.Log.Errorw("failed to list fund requests", "status", status, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminRequestsErrorResponse{Error: "Internal server error"})
			return
		}

		items := make([]AdminFundRequestItem, 0, len(requests))
		for _, req := range requests {
			items = append(items, AdminFundRequestItem{
				RequestID:       req.RequestID,
				PharmacyID:      req.PharmacyID,
				PharmacyCode:    models.DisplayID(req.PharmacyID),
				Amount:          req.Amount,
				Reason:          req.Reason,
				Status:          req.Status,
				AdminNotes:      req.AdminNotes,
				ReferenceNumber: req.ReferenceNumber,
				CreatedAt:       req.CreatedAt,
				ProcessedAt:     req.ProcessedAt,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}

// NewListWithdrawalRequestsHandler returns an HTTP handler listing withdrawal requests for admins.
// @Summary List withdrawal requests
// @Description Returns withdrawal requests across all pharmacies, newest first, optionally filtered by status
// @Tags admin
// @Produce json
// @Param status query string false "Status filter" Enums(pending, processing, approved, rejected)
// @Param page query int false "Page number, 1-based" default(1)
// @Success 200 {array} handlers.AdminWithdrawalRequestItem "Withdrawal requests"
// @Failure 400 {object} handlers.AdminRequestsErrorResponse "Invalid status or page"
// @Failure 401 {object} handlers.AdminRequestsErrorResponse "Unauthorized"
// @Router /admin/withdrawal-requests [get]
// @Security BearerAuth
func NewListWithdrawalRequestsHandler(
	svc RequestLister,
	tokenGetter AdminRequestsTokener,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		if _, ok := adminClaims(w, r, tokenGetter); !ok {
			return
		}

		status, offset, ok := adminListParams(r)
		if !ok {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(AdminRequestsErrorResponse{Error: "Invalid status or page"})
			return
		}

		requests, err := svc.ListWithdrawalRequests(ctx, status, AdminPageSize, offset)
		if err != nil {
			logger.Log.Errorw("failed to list withdrawal requests", "status", status, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(AdminRequestsErrorResponse{Error: "Internal server error"})
			return
		}

		items := make([]AdminWithdrawalRequestItem, 0, len(requests))
		for _, req := range requests {
			items = append(items, AdminWithdrawalRequestItem{
				RequestID:         req.RequestID,
				PharmacyID:        req.PharmacyID,
				PharmacyCode:      models.DisplayID(req.PharmacyID),
				Amount:            req.Amount,
				BankName:          req.BankName,
				AccountNumber:     req.AccountNumber,
				AccountHolderName: req.AccountHolderName,
				Status:            req.Status,
				AdminNotes:        req.AdminNotes,
				ReferenceNumber:   req.ReferenceNumber,
				CreatedAt:         req.CreatedAt,
				ProcessedAt:       req.ProcessedAt,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(items)
	}
}
