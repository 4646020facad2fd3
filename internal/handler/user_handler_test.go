package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "movieflix/internal/errors"
	"movieflix/internal/middleware"
	"movieflix/internal/models"
	"movieflix/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestUserHandler_Me(t *testing.T) {
	tests := []struct {
		name           string
		username       string
		mockSetup      func(*mocks.MockUserService)
		expectedStatus int
	}{
		{
			name:     "returns the current user",
			username: "alice",
			mockSetup: func(m *mocks.MockUserService) {
				m.GetByUsernameFunc = func(ctx context.Context, username string) (*models.User, error) {
					return &models.User{ID: 1, Username: username, Role: models.RoleUser}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "unauthenticated",
			mockSetup:      func(m *mocks.MockUserService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:     "user deleted after token was issued",
			username: "ghost",
			mockSetup: func(m *mocks.MockUserService) {
				m.GetByUsernameFunc = func(ctx context.Context, username string) (*models.User, error) {
					return nil, apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockUserService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.GET("/users/me", func(c *gin.Context) {
				if tt.username != "" {
					c.Set(middleware.UsernameKey, tt.username)
				}
			}, NewUserHandler(mockService).Me)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/me", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				data := decodeEnvelope(t, w)["data"].(map[string]interface{})
				assert.Equal(t, tt.username, data["username"])
			}
		})
	}
}
