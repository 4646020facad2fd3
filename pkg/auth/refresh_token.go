package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// RefreshTokenGenerator generates opaque refresh tokens.
type RefreshTokenGenerator interface {
	// Generate creates a new token in the form rt_{32 hex chars}.
	Generate() (string, error)
	// Hash returns the SHA-256 hash of a token.
	Hash(token string) string
}

type refreshTokenGenerator struct{}

// NewRefreshTokenGenerator creates a new RefreshTokenGenerator.
func NewRefreshTokenGenerator() RefreshTokenGenerator {
	return &refreshTokenGenerator{}
}

// Generate creates a refresh token carrying 128 random bits.
func (g *refreshTokenGenerator) Generate() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}
	return "rt_" + hex.EncodeToString(bytes), nil
}

// Hash returns the SHA-256 hash of the token as a hex string.
func (g *refreshTokenGenerator) Hash(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}
