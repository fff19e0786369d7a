// internal/handlers/auth_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/sondurak/garage-be/internal/core/ports"
	"github.com/sondurak/garage-be/internal/core/services"
	"github.com/sondurak/garage-be/internal/handlers"
	"github.com/sondurak/garage-be/test/helpers"
	"github.com/sondurak/garage-be/test/mocks"
)

func newAuthHandlerForTest(t *testing.T) (*handlers.AuthHandler, *mocks.MockAuthService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockAuthService(ctrl)
	return handlers.NewAuthHandler(service, helpers.TestLogger()), service
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "returns_user_and_tokens",
			body: `{"email":"test@sondurak.local","password":"correct-horse"}`,
			setupMock: func(m *mocks.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), "test@sondurak.local", "correct-horse").
					Return(helpers.CreateTestUser(), &ports.AuthTokens{
						AccessToken: "signed.jwt.token",
						TokenType:   "Bearer",
						ExpiresAt:   time.Now().Add(time.Hour),
					}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "maps_invalid_credentials_to_401",
			body: `{"email":"test@sondurak.local","password":"wrong"}`,
			setupMock: func(m *mocks.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, services.ErrInvalidCredentials)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "maps_inactive_account_to_403",
			body: `{"email":"test@sondurak.local","password":"correct-horse"}`,
			setupMock: func(m *mocks.MockAuthService) {
				m.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, services.ErrUserInactive)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "rejects_missing_password",
			body:           `{"email":"test@sondurak.local"}`,
			setupMock:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := newAuthHandlerForTest(t)
			tt.setupMock(service)

			req := httptest.NewRequest("POST", "/auth/login", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Login(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp handlers.LoginResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, "signed.jwt.token", resp.Tokens.AccessToken)
				assert.Equal(t, "Bearer", resp.Tokens.TokenType)
				assert.NotNil(t, resp.User)
			}
		})
	}
}

func TestAuthHandler_Register(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMock      func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "creates_user",
			body: `{"first_name":"Ayşe","email":"ayse@sondurak.local","password":"longenough","role":"staff"}`,
			setupMock: func(m *mocks.MockAuthService) {
				m.EXPECT().Register(gomock.Any(), gomock.Any(), "longenough").Return(nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "maps_duplicate_email_to_409",
			body: `{"first_name":"Ayşe","email":"ayse@sondurak.local","password":"longenough"}`,
			setupMock: func(m *mocks.MockAuthService) {
				m.EXPECT().Register(gomock.Any(), gomock.Any(), gomock.Any()).Return(services.ErrEmailTaken)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "rejects_short_password",
			body:           `{"first_name":"Ayşe","email":"ayse@sondurak.local","password":"short"}`,
			setupMock:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "rejects_unknown_role",
			body:           `{"first_name":"Ayşe","email":"ayse@sondurak.local","password":"longenough","role":"owner"}`,
			setupMock:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := newAuthHandlerForTest(t)
			tt.setupMock(service)

			req := httptest.NewRequest("POST", "/auth/register", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("blacklists_presented_token", func(t *testing.T) {
		handler, service := newAuthHandlerForTest(t)
		service.EXPECT().Logout(gomock.Any(), "the-token").Return(nil)

		req := httptest.NewRequest("POST", "/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer the-token")
		w := httptest.NewRecorder()

		handler.Logout(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects_missing_token", func(t *testing.T) {
		handler, _ := newAuthHandlerForTest(t)

		req := httptest.NewRequest("POST", "/auth/logout", nil)
		w := httptest.NewRecorder()

		handler.Logout(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Me(t *testing.T) {
	handler, _ := newAuthHandlerForTest(t)

	// Me without the auth middleware has no user in context.
	req := httptest.NewRequest("GET", "/auth/me", nil)
	w := httptest.NewRecorder()

	handler.Me(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
