//go:build api

package api

import (
	"net/http"
	"testing"
	"time"

	"movieflix/pkg/auth"
	"movieflix/test/api/testserver"
	"movieflix/test/testutil"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetMe tests the GET /api/v1/users/me endpoint.
func TestGetMe(t *testing.T) {
	testServer.CleanupBetweenTests(t)

	authHelper := testserver.NewAuthHelper(testServer)
	userData, accessToken := authHelper.CreateAuthenticatedUser(t, "Get User Test", "getuser@example.com", "getuser", "password123")

	t.Run("success - returns own profile", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", accessToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.True(t, resp.Success)
		require.NotNil(t, resp.Data)

		assert.Equal(t, "getuser@example.com", resp.Data["email"])
		assert.Equal(t, "Get User Test", resp.Data["name"])
		assert.Equal(t, userData["id"], resp.Data["id"])
		assert.Equal(t, "USER", resp.Data["role"])
	})

	t.Run("success - second read is served consistently", func(t *testing.T) {
		first := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", accessToken, nil)
		second := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", accessToken, nil)

		require.Equal(t, http.StatusOK, first.Code)
		require.Equal(t, http.StatusOK, second.Code)
		assert.JSONEq(t, first.Body.String(), second.Body.String())
	})

	t.Run("error - no token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("error - malformed token", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", "not-a-jwt", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "invalid token", resp.Error)
	})

	t.Run("error - expired token", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "getuser",
			Audience:  jwt.ClaimStrings{auth.AccessTokenAudience},
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		}
		expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testserver.TestAccessTokenSecret))
		require.NoError(t, err)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", expired, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "token expired", resp.Error)
	})

	t.Run("error - token signed with another secret", func(t *testing.T) {
		claims := jwt.RegisteredClaims{
			Subject:   "getuser",
			Audience:  jwt.ClaimStrings{auth.AccessTokenAudience},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another-secret"))
		require.NoError(t, err)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/users/me", forged, nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
