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

func TestGetTransactionsHandler(t *testing.T) {
	pharmacyID := uuid.New()
	validToken := "valid-token"

	entries := []models.WalletTransaction{
		{
			TransactionID:   uuid.New(),
			PharmacyID:      pharmacyID,
			Type:            models.TransactionCredit,
			Amount:          decimal.NewFromInt(500),
			BalanceAfter:    decimal.NewFromInt(500),
			Category:        models.CategoryFundAddition,
			ReferenceNumber: "PH-3F2A1B-FUND-9C41D2",
			Status:          models.TransactionCompleted,
		},
	}

	tests := []struct {
		name               string
		url                string
		setupMocks         func(mockSvc *MockTransactionHistoryReader, mockTokener *MockTransactionsTokener)
		expectedStatusCode int
		expectedPage       int
	}{
		{
			name: "default page",
			url:  "/wallet/transactions",
			setupMocks: func(mockSvc *MockTransactionHistoryReader, mockTokener *MockTransactionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{SubjectID: pharmacyID}, nil)
				mockSvc.EXPECT().GetHistory(gomock.Any(), pharmacyID, 1).Return(entries, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedPage:       1,
		},
		{
			name: "explicit page",
			url:  "/wallet/transactions?page=3",
			setupMocks: func(mockSvc *MockTransactionHistoryReader, mockTokener *MockTransactionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{SubjectID: pharmacyID}, nil)
				mockSvc.EXPECT().GetHistory(gomock.Any(), pharmacyID, 3).Return(nil, nil)
			},
			expectedStatusCode: http.StatusOK,
			expectedPage:       3,
		},
		{
			name: "invalid page",
			url:  "/wallet/transactions?page=zero",
			setupMocks: func(mockSvc *MockTransactionHistoryReader, mockTokener *MockTransactionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{SubjectID: pharmacyID}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "unauthorized",
			url:  "/wallet/transactions",
			setupMocks: func(mockSvc *MockTransactionHistoryReader, mockTokener *MockTransactionsTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockTransactionsTokener(ctrl)
			mockSvc := NewMockTransactionHistoryReader(ctrl)

			tt.setupMocks(mockSvc, mockTokener)

			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rr := httptest.NewRecorder()

			handler := NewGetTransactionsHandler(mockSvc, mockTokener)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			if tt.expectedStatusCode == http.StatusOK {
				var resp TransactionsResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedPage, resp.Page)
				assert.NotNil(t, resp.Transactions)
			}
		})
	}
}
