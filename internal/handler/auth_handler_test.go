package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "movieflix/internal/errors"
	"movieflix/internal/models"
	"movieflix/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewAuthHandler(t *testing.T) {
	mockService := &mocks.MockAuthService{}
	handler := NewAuthHandler(mockService)

	assert.NotNil(t, handler)
	assert.Equal(t, mockService, handler.service)
}

func TestAuthHandler_Register(t *testing.T) {
	validBody := models.RegisterRequest{
		Name:     "Alice",
		Email:    "a@x.io",
		Username: "alice",
		Password: "pw123",
	}

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful registration",
			body: validBody,
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
					return &models.AuthResponse{
						AccessToken:  "access-token",
						RefreshToken: "rt_token",
						ExpiresIn:    900,
						User:         models.User{ID: 1, Username: req.Username, Email: req.Email, Role: models.RoleUser},
					}, nil
				}
			},
			expectedStatus: http.StatusCreated,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeEnvelope(t, w)
				assert.Equal(t, true, resp["success"])
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "access-token", data["accessToken"])
				assert.Equal(t, "rt_token", data["refreshToken"])
				user := data["user"].(map[string]interface{})
				assert.Equal(t, "USER", user["role"])
				assert.NotContains(t, user, "passwordHash")
			},
		},
		{
			name:           "invalid JSON body",
			body:           "invalid json",
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing required fields",
			body:           map[string]string{"email": "a@x.io"},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "invalid username characters",
			body: models.RegisterRequest{
				Name: "Alice", Email: "a@x.io", Username: "alice smith", Password: "pw123",
			},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "blank password",
			body: models.RegisterRequest{
				Name: "Alice", Email: "a@x.io", Username: "alice", Password: "   ",
			},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "password over 72 bytes",
			body: models.RegisterRequest{
				Name: "Alice", Email: "a@x.io", Username: "alice", Password: strings.Repeat("é", 40),
			},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "multibyte password at 72 bytes",
			body: models.RegisterRequest{
				Name: "Alice", Email: "a@x.io", Username: "alice", Password: strings.Repeat("é", 36),
			},
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
					return &models.AuthResponse{User: models.User{Username: req.Username}}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "user already exists",
			body: validBody,
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
					return nil, apperrors.ErrUserAlreadyExists
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "internal server error",
			body: validBody,
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				assert.NotContains(t, w.Body.String(), "database error")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.POST("/auth/register", NewAuthHandler(mockService).Register)

			w := performJSON(router, http.MethodPost, "/auth/register", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful login",
			body: models.LoginRequest{Username: "alice", Password: "pw123"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
					return &models.AuthResponse{AccessToken: "access-token", RefreshToken: "rt_token"}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing password",
			body:           map[string]string{"username": "alice"},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "wrong password",
			body: models.LoginRequest{Username: "alice", Password: "wrong"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
					return nil, apperrors.ErrInvalidCredentials
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name: "unknown user",
			body: models.LoginRequest{Username: "bob", Password: "pw123"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.POST("/auth/login", NewAuthHandler(mockService).Login)

			w := performJSON(router, http.MethodPost, "/auth/login", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful refresh",
			body: models.RefreshRequest{RefreshToken: "rt_token"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.RefreshFunc = func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
					return &models.RefreshResponse{AccessToken: "new-access", RefreshToken: req.RefreshToken}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing refresh token",
			body:           map[string]string{},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "unknown refresh token",
			body: models.RefreshRequest{RefreshToken: "rt_unknown"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.RefreshFunc = func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
					return nil, apperrors.ErrRefreshTokenNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "expired refresh token",
			body: models.RefreshRequest{RefreshToken: "rt_old"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.RefreshFunc = func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
					return nil, apperrors.ErrRefreshTokenExpired
				}
			},
			expectedStatus: http.StatusExpectationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.POST("/auth/refresh", NewAuthHandler(mockService).Refresh)

			w := performJSON(router, http.MethodPost, "/auth/refresh", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("successful logout", func(t *testing.T) {
		var revoked string
		mockService := &mocks.MockAuthService{
			LogoutFunc: func(ctx context.Context, req *models.LogoutRequest) error {
				revoked = req.RefreshToken
				return nil
			},
		}

		router := gin.New()
		router.POST("/auth/logout", NewAuthHandler(mockService).Logout)

		w := performJSON(router, http.MethodPost, "/auth/logout", models.LogoutRequest{RefreshToken: "rt_token"})

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "rt_token", revoked)
	})

	t.Run("missing refresh token", func(t *testing.T) {
		router := gin.New()
		router.POST("/auth/logout", NewAuthHandler(&mocks.MockAuthService{}).Logout)

		w := performJSON(router, http.MethodPost, "/auth/logout", "{}")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
