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
	"github.com/stretchr/testify/assert"
)

func TestGetAnalyticsHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockAnalyticsTokener(ctrl)
	mockSvc := NewMockAnalyticsReader(ctrl)

	pharmacyID := uuid.New()

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("valid-token", nil)
	mockTokener.EXPECT().GetClaims(gomock.Any(), "valid-token").Return(&jwt.Claims{SubjectID: pharmacyID}, nil)
	mockSvc.EXPECT().GetAnalytics(gomock.Any(), pharmacyID).Return(&models.WalletAnalytics{
		PharmacyID:       pharmacyID,
		TransactionCount: 7,
		FundSuccessRate:  0.75,
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/wallet/analytics", nil)
	rr := httptest.NewRecorder()

	handler := NewGetAnalyticsHandler(mockSvc, mockTokener)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp models.WalletAnalytics
	assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, int64(7), resp.TransactionCount)
	assert.InDelta(t, 0.75, resp.FundSuccessRate, 1e-9)
}

func TestGetAnalyticsHandler_ServiceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTokener := NewMockAnalyticsTokener(ctrl)
	mockSvc := NewMockAnalyticsReader(ctrl)

	pharmacyID := uuid.New()

	mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("valid-token", nil)
	mockTokener.EXPECT().GetClaims(gomock.Any(), "valid-token").Return(&jwt.Claims{SubjectID: pharmacyID}, nil)
	mockSvc.EXPECT().GetAnalytics(gomock.Any(), pharmacyID).Return(nil, assert.AnError)

	req := httptest.NewRequest(http.MethodGet, "/wallet/analytics", nil)
	rr := httptest.NewRecorder()

	handler := NewGetAnalyticsHandler(mockSvc, mockTokener)
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
