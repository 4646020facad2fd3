package models

import (
	"time"
)

// ForgotPassword is a one-time code issued to a user who asked to reset
// their password.
type ForgotPassword struct {
	ID        int64     `json:"id" bson:"_id"`
	OTP       int       `json:"-" bson:"otp"`
	UserID    int64     `json:"userId" bson:"userId"`
	ExpiresAt time.Time `json:"expiresAt" bson:"expiresAt"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// Expired reports whether the code is past its expiry at now.
func (f *ForgotPassword) Expired(now time.Time) bool {
	return !now.Before(f.ExpiresAt)
}

// ChangePasswordRequest is the payload of the last password reset step.
type ChangePasswordRequest struct {
	Password       string `json:"password" binding:"required,notblank,maxbytes=72" example:"newpw456"`
	RepeatPassword string `json:"repeatPassword" binding:"required" example:"newpw456"`
}

// ResetTokenResponse is returned after a successful OTP verification.
type ResetTokenResponse struct {
	ResetToken string `json:"resetToken" example:"eyJhbGciOiJIUzI1NiIs..."`
	ExpiresIn  int    `json:"expiresIn" example:"600"`
}

// MessageResponse carries a human readable result.
type MessageResponse struct {
	Message string `json:"message" example:"Email sent for verification!"`
}
