package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ResetTokenAudience is the aud claim of password reset tokens.
const ResetTokenAudience = "password-reset"

// ResetClaims are the claims of a password reset token. The subject holds
// the email the code was sent to.
type ResetClaims struct {
	ForgotPasswordID int64 `json:"fpid"`
	jwt.RegisteredClaims
}

// ResetTokenManager issues the short-lived token returned after a
// successful OTP verification.
type ResetTokenManager struct {
	signer Signer
	expiry time.Duration
}

// NewResetTokenManager creates a reset token manager signing with HS256.
func NewResetTokenManager(secret string, expiry time.Duration) *ResetTokenManager {
	return &ResetTokenManager{
		signer: NewHMACSigner(secret),
		expiry: expiry,
	}
}

// GenerateToken creates a reset token bound to email and the verified code record.
func (m *ResetTokenManager) GenerateToken(email string, forgotPasswordID int64) (string, error) {
	now := time.Now()
	claims := &ResetClaims{
		ForgotPasswordID: forgotPasswordID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			Audience:  jwt.ClaimStrings{ResetTokenAudience},
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return m.signer.Sign(claims)
}

// ValidateToken verifies tokenString and checks it was issued for email.
func (m *ResetTokenManager) ValidateToken(tokenString, email string) (*ResetClaims, error) {
	claims := &ResetClaims{}
	err := m.signer.Parse(tokenString, claims,
		jwt.WithAudience(ResetTokenAudience),
		jwt.WithSubject(email),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}

	return claims, nil
}

// Expiry returns the lifetime of issued tokens.
func (m *ResetTokenManager) Expiry() time.Duration {
	return m.expiry
}
