package auth

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenExpired is returned when a token's exp claim is in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers bad signatures, malformed tokens, wrong algorithms
	// and claim mismatches.
	ErrTokenInvalid = errors.New("token invalid")
)

// Signer signs claims into compact JWTs and parses them back.
type Signer interface {
	Sign(claims jwt.Claims) (string, error)
	Parse(tokenString string, claims jwt.Claims, opts ...jwt.ParserOption) error
}

// HMACSigner signs tokens with HS256.
type HMACSigner struct {
	secret []byte
}

// NewHMACSigner creates a signer keyed by secret.
func NewHMACSigner(secret string) *HMACSigner {
	return &HMACSigner{secret: []byte(secret)}
}

// Sign returns the signed compact form of claims.
func (s *HMACSigner) Sign(claims jwt.Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies tokenString and decodes it into claims. Only HS256 is accepted.
func (s *HMACSigner) Parse(tokenString string, claims jwt.Claims, opts ...jwt.ParserOption) error {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return ErrTokenExpired
		}
		return fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	if !token.Valid {
		return ErrTokenInvalid
	}

	return nil
}
