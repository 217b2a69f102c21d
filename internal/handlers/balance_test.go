package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/jwt"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestGetBalanceHandler_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockBalanceTokener(ctrl)
	mockSvc := NewMockWalletSummaryReader(ctrl)

	pharmacyID := uuid.New()

	mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("valid-token", nil)
	mockTokenGetter.EXPECT().GetClaims(gomock.Any(), "valid-token").Return(&jwt.Claims{SubjectID: pharmacyID, Role: jwt.RolePharmacy}, nil)
	mockSvc.EXPECT().GetSummary(gomock.Any(), pharmacyID).Return(&models.WalletAccount{
		PharmacyID:         pharmacyID,
		AvailableBalance:   decimal.RequireFromString("1250.50"),
		PendingWithdrawals: decimal.NewFromInt(300),
		TotalEarned:        decimal.NewFromInt(5000),
		TotalSpent:         decimal.RequireFromString("3749.50"),
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/wallet/balance", nil)
	rr := httptest.NewRecorder()

	handler := NewGetBalanceHandler(mockSvc, mockTokenGetter)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp BalanceResponse
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.AvailableBalance.Equal(decimal.RequireFromString("1250.50")))
	assert.True(t, resp.PendingWithdrawals.Equal(decimal.NewFromInt(300)))
}

func TestGetBalanceHandler_Unauthorized(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockBalanceTokener(ctrl)
	mockSvc := NewMockWalletSummaryReader(ctrl)

	mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)

	req := httptest.NewRequest(http.MethodGet, "/wallet/balance", nil)
	rr := httptest.NewRecorder()

	handler := NewGetBalanceHandler(mockSvc, mockTokenGetter)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestGetBalanceHandler_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokenGetter := NewMockBalanceTokener(ctrl)
	mockSvc := NewMockWalletSummaryReader(ctrl)

	pharmacyID := uuid.New()

	mockTokenGetter.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("valid-token", nil)
	mockTokenGetter.EXPECT().GetClaims(gomock.Any(), "valid-token").Return(&jwt.Claims{SubjectID: pharmacyID}, nil)
	mockSvc.EXPECT().GetSummary(gomock.Any(), pharmacyID).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/wallet/balance", nil)
	rr := httptest.NewRecorder()

	handler := NewGetBalanceHandler(mockSvc, mockTokenGetter)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
