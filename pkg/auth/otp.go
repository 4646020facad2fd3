package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// OTP bounds: codes are drawn uniformly from [OTPMin, OTPMax).
const (
	OTPMin = 100000
	OTPMax = 999999
)

// OTPGenerator produces one-time numeric codes.
type OTPGenerator interface {
	Generate() (int, error)
}

// RandomOTPGenerator draws codes from crypto/rand.
type RandomOTPGenerator struct{}

// NewOTPGenerator creates a RandomOTPGenerator.
func NewOTPGenerator() *RandomOTPGenerator {
	return &RandomOTPGenerator{}
}

// Generate returns a code in [OTPMin, OTPMax).
func (g *RandomOTPGenerator) Generate() (int, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(OTPMax-OTPMin))
	if err != nil {
		return 0, fmt.Errorf("failed to generate otp: %w", err)
	}
	return OTPMin + int(n.Int64()), nil
}
