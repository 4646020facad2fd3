package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJWTManager(t *testing.T) {
	t.Run("creates manager with valid config", func(t *testing.T) {
		manager := NewJWTManager("testsecret", 15*time.Minute)

		assert.NotNil(t, manager)
		assert.Equal(t, 15*time.Minute, manager.Expiry())
	})

	t.Run("creates manager with empty secret", func(t *testing.T) {
		manager := NewJWTManager("", 15*time.Minute)

		assert.NotNil(t, manager)
	})
}

func TestJWTManager_GenerateToken(t *testing.T) {
	manager := NewJWTManager("testsecret123", 15*time.Minute)

	t.Run("generates valid token for username", func(t *testing.T) {
		token, err := manager.GenerateToken("alice", "USER")

		require.NoError(t, err)
		assert.NotEmpty(t, token)
		// Token should be a valid JWT format (3 parts separated by dots)
		assert.Regexp(t, `^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+$`, token)
	})

	t.Run("token carries username and role", func(t *testing.T) {
		token, _ := manager.GenerateToken("alice", "ADMIN")
		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Username())
		assert.Equal(t, "ADMIN", claims.Role)
		assert.Equal(t, jwt.ClaimStrings{AccessTokenAudience}, claims.Audience)
	})
}

func TestJWTManager_ValidateToken(t *testing.T) {
	manager := NewJWTManager("testsecret123", 15*time.Minute)

	t.Run("validates correctly signed token", func(t *testing.T) {
		token, _ := manager.GenerateToken("alice", "USER")

		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.NotNil(t, claims)
		assert.Equal(t, "alice", claims.Subject)
	})

	t.Run("returns ErrTokenExpired for expired token", func(t *testing.T) {
		expiredManager := NewJWTManager("testsecret123", -time.Minute)
		token, _ := expiredManager.GenerateToken("alice", "USER")

		claims, err := expiredManager.ValidateToken(token)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("returns ErrTokenInvalid for wrong secret", func(t *testing.T) {
		other := NewJWTManager("secret2", 15*time.Minute)

		token, _ := other.GenerateToken("alice", "USER")
		claims, err := manager.ValidateToken(token)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("returns ErrTokenInvalid for invalid token format", func(t *testing.T) {
		claims, err := manager.ValidateToken("not.a.valid.token")

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("returns error for empty token", func(t *testing.T) {
		claims, err := manager.ValidateToken("")

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("returns error for tampered token", func(t *testing.T) {
		token, _ := manager.GenerateToken("alice", "USER")
		tamperedToken := token[:len(token)-5] + "XXXXX"

		claims, err := manager.ValidateToken(tamperedToken)

		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("rejects reset token signed with the same secret", func(t *testing.T) {
		resetManager := NewResetTokenManager("testsecret123", 10*time.Minute)
		token, err := resetManager.GenerateToken("alice@example.com", 1)
		require.NoError(t, err)

		claims, err := manager.ValidateToken(token)

		assert.Nil(t, claims)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("rejects other signing algorithms", func(t *testing.T) {
		claims := &Claims{
			Role: "ADMIN",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "mallory",
				Audience:  jwt.ClaimStrings{AccessTokenAudience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("testsecret123"))
		require.NoError(t, err)

		result, err := manager.ValidateToken(token)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("rejects unsigned token", func(t *testing.T) {
		claims := &Claims{
			Role: "ADMIN",
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "mallory",
				Audience:  jwt.ClaimStrings{AccessTokenAudience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
			},
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		result, err := manager.ValidateToken(token)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("validates token expiry time is set correctly", func(t *testing.T) {
		expiry := 30 * time.Minute
		manager := NewJWTManager("secret", expiry)
		beforeGeneration := time.Now()

		token, _ := manager.GenerateToken("alice", "USER")
		claims, err := manager.ValidateToken(token)

		require.NoError(t, err)
		assert.WithinDuration(t, beforeGeneration.Add(expiry), claims.ExpiresAt.Time, 2*time.Second)
		assert.WithinDuration(t, beforeGeneration, claims.IssuedAt.Time, 2*time.Second)
	})
}

func BenchmarkJWTManager_GenerateToken(b *testing.B) {
	manager := NewJWTManager("benchmarksecret", 15*time.Minute)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = manager.GenerateToken("alice", "USER")
	}
}

func BenchmarkJWTManager_ValidateToken(b *testing.B) {
	manager := NewJWTManager("benchmarksecret", 15*time.Minute)
	token, _ := manager.GenerateToken("alice", "USER")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = manager.ValidateToken(token)
	}
}
