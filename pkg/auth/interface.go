package auth

//go:generate mockgen -destination=mocks/mock_auth.go -package=mocks movieflix/pkg/auth TokenManager,ResetTokenIssuer,RefreshTokenGenerator,OTPGenerator

// TokenManager defines the interface for access token operations.
type TokenManager interface {
	// GenerateToken creates a new access token for a user.
	GenerateToken(username, role string) (string, error)
	// ValidateToken parses and validates an access token, returning the claims if valid.
	ValidateToken(tokenString string) (*Claims, error)
}

// ResetTokenIssuer defines the interface for password reset tokens.
type ResetTokenIssuer interface {
	GenerateToken(email string, forgotPasswordID int64) (string, error)
	ValidateToken(tokenString, email string) (*ResetClaims, error)
}

// Ensure implementations satisfy their interfaces
var (
	_ TokenManager     = (*JWTManager)(nil)
	_ ResetTokenIssuer = (*ResetTokenManager)(nil)
	_ Signer           = (*HMACSigner)(nil)
	_ PasswordHasher   = (*BcryptHasher)(nil)
	_ OTPGenerator     = (*RandomOTPGenerator)(nil)
)
