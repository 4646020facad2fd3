package service

import (
	"context"
	"fmt"
	"time"

	apperrors "movieflix/internal/errors"
	"movieflix/internal/mail"
	"movieflix/internal/models"
	"movieflix/internal/repository"
	"movieflix/pkg/auth"
)

// Password reset mail
const (
	otpMailSubject = "OTP for Forgot Password request"
	otpMailBody    = "This is your otp for your Forgot Password request: %d"
)

// PasswordResetService runs the three step password reset: an emailed code,
// its exchange for a reset token, and the password change.
type PasswordResetService struct {
	userRepo           repository.UserRepository
	forgotPasswordRepo repository.ForgotPasswordRepository
	refreshTokens      RefreshTokenManager
	mailer             mail.Mailer
	otpGenerator       auth.OTPGenerator
	resetTokens        auth.ResetTokenIssuer
	hasher             auth.PasswordHasher
	otpTTL             time.Duration
	resetTokenTTL      time.Duration
	now                func() time.Time
}

// PasswordResetServiceConfig holds configuration for PasswordResetService.
type PasswordResetServiceConfig struct {
	UserRepo           repository.UserRepository
	ForgotPasswordRepo repository.ForgotPasswordRepository
	RefreshTokens      RefreshTokenManager
	Mailer             mail.Mailer
	OTPGenerator       auth.OTPGenerator
	ResetTokens        auth.ResetTokenIssuer
	Hasher             auth.PasswordHasher
	OTPTTL             time.Duration
	ResetTokenTTL      time.Duration
	Now                func() time.Time
}

// NewPasswordResetService creates a new PasswordResetService.
func NewPasswordResetService(cfg PasswordResetServiceConfig) *PasswordResetService {
	s := &PasswordResetService{
		userRepo:           cfg.UserRepo,
		forgotPasswordRepo: cfg.ForgotPasswordRepo,
		refreshTokens:      cfg.RefreshTokens,
		mailer:             cfg.Mailer,
		otpGenerator:       cfg.OTPGenerator,
		resetTokens:        cfg.ResetTokens,
		hasher:             cfg.Hasher,
		otpTTL:             cfg.OTPTTL,
		resetTokenTTL:      cfg.ResetTokenTTL,
		now:                cfg.Now,
	}
	if s.otpGenerator == nil {
		s.otpGenerator = auth.NewOTPGenerator()
	}
	if s.hasher == nil {
		s.hasher = auth.NewBcryptHasher(0)
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// VerifyEmail mails a fresh one-time code to the user and stores it.
// Codes issued earlier to the same user are discarded.
func (s *PasswordResetService) VerifyEmail(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	otp, err := s.otpGenerator.Generate()
	if err != nil {
		return err
	}

	if err := s.forgotPasswordRepo.DeleteByUserID(ctx, user.ID); err != nil {
		return err
	}

	msg := mail.Message{
		To:      email,
		Subject: otpMailSubject,
		Body:    fmt.Sprintf(otpMailBody, otp),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrEmailDelivery, err)
	}

	return s.forgotPasswordRepo.Create(ctx, &models.ForgotPassword{
		OTP:       otp,
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.otpTTL),
	})
}

// VerifyOtp consumes a code and returns a reset token bound to the email.
func (s *PasswordResetService) VerifyOtp(ctx context.Context, otp int, email string) (*models.ResetTokenResponse, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	fp, err := s.forgotPasswordRepo.FindByOTPAndUserID(ctx, otp, user.ID)
	if err != nil {
		return nil, err
	}

	if fp.Expired(s.now()) {
		if err := s.forgotPasswordRepo.DeleteByID(ctx, fp.ID); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrOtpExpired
	}

	resetToken, err := s.resetTokens.GenerateToken(email, fp.ID)
	if err != nil {
		return nil, err
	}

	if err := s.forgotPasswordRepo.DeleteByID(ctx, fp.ID); err != nil {
		return nil, err
	}

	return &models.ResetTokenResponse{
		ResetToken: resetToken,
		ExpiresIn:  int(s.resetTokenTTL.Seconds()),
	}, nil
}

// ChangePassword replaces the password of the user the reset token was issued
// for, then signs the user out and drops any remaining codes.
func (s *PasswordResetService) ChangePassword(ctx context.Context, email, resetToken string, req *models.ChangePasswordRequest) error {
	// Checked before any lookup, so a mismatch wins over an unknown email or a bad token.
	if req.Password != req.RepeatPassword {
		return apperrors.ErrPasswordMismatch
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}

	if _, err := s.resetTokens.ValidateToken(resetToken, email); err != nil {
		return apperrors.ErrInvalidResetToken
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, hashedPassword); err != nil {
		return err
	}

	if err := s.refreshTokens.RevokeUserTokens(ctx, user.ID); err != nil {
		return err
	}

	return s.forgotPasswordRepo.DeleteByUserID(ctx, user.ID)
}
