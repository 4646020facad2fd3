package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessTokenAudience is the aud claim of every access token.
const AccessTokenAudience = "access"

// Claims represents the JWT claims (data stored in the token).
// The subject holds the username.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Username returns the subject of the token.
func (c *Claims) Username() string {
	return c.Subject
}

// JWTManager handles access token operations.
type JWTManager struct {
	signer Signer
	expiry time.Duration
}

// NewJWTManager creates a new JWT manager signing with HS256.
func NewJWTManager(secret string, expiry time.Duration) *JWTManager {
	return NewJWTManagerWithSigner(NewHMACSigner(secret), expiry)
}

// NewJWTManagerWithSigner creates a JWT manager using signer.
func NewJWTManagerWithSigner(signer Signer, expiry time.Duration) *JWTManager {
	return &JWTManager{
		signer: signer,
		expiry: expiry,
	}
}

// GenerateToken creates a new access token for a user.
func (j *JWTManager) GenerateToken(username, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Audience:  jwt.ClaimStrings{AccessTokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(j.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return j.signer.Sign(claims)
}

// ValidateToken parses and validates an access token, returning the claims if valid.
// Errors are ErrTokenExpired or ErrTokenInvalid.
func (j *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	err := j.signer.Parse(tokenString, claims,
		jwt.WithAudience(AccessTokenAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// Expiry returns the lifetime of issued tokens.
func (j *JWTManager) Expiry() time.Duration {
	return j.expiry
}
