package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Mosabragab/pharmasave-ai-sub000/internal/jwt"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/models"
	"github.com/Mosabragab/pharmasave-ai-sub000/internal/services"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCreateFundRequestHandler(t *testing.T) {
	pharmacyID := uuid.New()
	validToken := "valid-token"

	created := &models.FundRequest{
		RequestID:       uuid.New(),
		PharmacyID:      pharmacyID,
		Amount:          decimal.NewFromInt(500),
		Status:          models.RequestPending,
		ReferenceNumber: "PH-3F2A1B-FUND-9C41D2",
		CreatedAt:       time.Now().UTC(),
	}

	tests := []struct {
		name               string
		requestBody        any
		setupMocks         func(mockSvc *MockFundRequestCreator, mockTokener *MockFundRequestTokener)
		expectedStatusCode int
	}{
		{
			name:        "successful fund request",
			requestBody: map[string]any{"amount": "500.00", "reason": "monthly top-up"},
			setupMocks: func(mockSvc *MockFundRequestCreator, mockTokener *MockFundRequestTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{SubjectID: pharmacyID, Role: jwt.RolePharmacy}, nil)
				mockSvc.EXPECT().CreateFundRequest(gomock.Any(), pharmacyID, gomock.Any(), "monthly top-up").Return(created, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:        "unauthorized missing token",
			requestBody: map[string]any{"amount": "500.00"},
			setupMocks: func(mockSvc *MockFundRequestCreator, mockTokener *MockFundRequestTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", http.ErrNoCookie)
			},
			expectedStatusCode: http.StatusUnauthorized,
		},
		{
			name:        "invalid request body",
			requestBody: "not-json",
			setupMocks: func(mockSvc *MockFundRequestCreator, mockTokener *MockFundRequestTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{SubjectID: pharmacyID, Role: jwt.RolePharmacy}, nil)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "invalid amount",
			requestBody: map[string]any{"amount": "-100"},
			setupMocks: func(mockSvc *MockFundRequestCreator, mockTokener *MockFundRequestTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{SubjectID: pharmacyID, Role: jwt.RolePharmacy}, nil)
				mockSvc.EXPECT().CreateFundRequest(gomock.Any(), pharmacyID, gomock.Any(), "").Return(nil, services.ErrInvalidAmount)
			},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:        "internal server error",
			requestBody: map[string]any{"amount": "500.00"},
			setupMocks: func(mockSvc *MockFundRequestCreator, mockTokener *MockFundRequestTokener) {
				mockTokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return(validToken, nil)
				mockTokener.EXPECT().GetClaims(gomock.Any(), validToken).Return(&jwt.Claims{SubjectID: pharmacyID, Role: jwt.RolePharmacy}, nil)
				mockSvc.EXPECT().CreateFundRequest(gomock.Any(), pharmacyID, gomock.Any(), "").Return(nil, assert.AnError)
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTokener := NewMockFundRequestTokener(ctrl)
			mockSvc := NewMockFundRequestCreator(ctrl)

			tt.setupMocks(mockSvc, mockTokener)

			var bodyBytes []byte
			switch v := tt.requestBody.(type) {
			case string:
				bodyBytes = []byte(v)
			default:
				bodyBytes, _ = json.Marshal(v)
			}

			req := httptest.NewRequest(http.MethodPost, "/wallet/fund-requests", bytes.NewReader(bodyBytes))
			rr := httptest.NewRecorder()

			handler := NewCreateFundRequestHandler(mockSvc, mockTokener)
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatusCode, rr.Code)

			if tt.expectedStatusCode == http.StatusCreated {
				var resp FundRequestResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, created.RequestID, resp.RequestID)
				assert.Equal(t, created.ReferenceNumber, resp.ReferenceNumber)
				assert.Equal(t, models.RequestPending, resp.Status)
			}
		})
	}
}
