package service

import (
	"context"
	"errors"
	"time"

	"movieflix/internal/cache"
	apperrors "movieflix/internal/errors"
	"movieflix/internal/models"
	"movieflix/internal/repository"
	"movieflix/pkg/auth"
)

// RefreshTokenService issues and verifies refresh tokens. Each user owns at
// most one token at a time.
type RefreshTokenService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	tokenCache       cache.RefreshTokenCache
	tokenGenerator   auth.RefreshTokenGenerator
	refreshTokenTTL  time.Duration
	now              func() time.Time
}

// RefreshTokenServiceConfig holds configuration for RefreshTokenService.
type RefreshTokenServiceConfig struct {
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	TokenCache       cache.RefreshTokenCache
	TokenGenerator   auth.RefreshTokenGenerator
	RefreshTokenTTL  time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewRefreshTokenService creates a new RefreshTokenService.
func NewRefreshTokenService(cfg RefreshTokenServiceConfig) *RefreshTokenService {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	tokenGenerator := cfg.TokenGenerator
	if tokenGenerator == nil {
		tokenGenerator = auth.NewRefreshTokenGenerator()
	}
	tokenCache := cfg.TokenCache
	if tokenCache == nil {
		tokenCache = cache.NewRefreshTokenCache(cache.Noop{}, tokenGenerator)
	}
	return &RefreshTokenService{
		userRepo:         cfg.UserRepo,
		refreshTokenRepo: cfg.RefreshTokenRepo,
		tokenCache:       tokenCache,
		tokenGenerator:   tokenGenerator,
		refreshTokenTTL:  cfg.RefreshTokenTTL,
		now:              now,
	}
}

// CreateRefreshToken returns the user's live refresh token, issuing a new one
// when the user has none or only an expired one.
func (s *RefreshTokenService) CreateRefreshToken(ctx context.Context, username string) (*models.RefreshToken, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	existing, err := s.refreshTokenRepo.FindByUserID(ctx, user.ID)
	switch {
	case err == nil && !existing.Expired(s.now()):
		return existing, nil
	case err == nil:
		if err := s.revoke(ctx, existing.Token); err != nil {
			return nil, err
		}
	case !errors.Is(err, apperrors.ErrRefreshTokenNotFound):
		return nil, err
	}

	tokenString, err := s.tokenGenerator.Generate()
	if err != nil {
		return nil, err
	}

	token := &models.RefreshToken{
		Token:     tokenString,
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.refreshTokenTTL),
	}

	if err := s.refreshTokenRepo.Create(ctx, token); err != nil {
		if !errors.Is(err, apperrors.ErrRefreshTokenAlreadyExists) {
			return nil, err
		}
		// A concurrent request issued the user's token first.
		return s.refreshTokenRepo.FindByUserID(ctx, user.ID)
	}

	// Cache is best effort
	_ = s.tokenCache.Set(ctx, token)

	return token, nil
}

// VerifyRefreshToken returns the record of a live token. An expired token is
// deleted and reported as ErrRefreshTokenExpired; later lookups of it fail
// with ErrRefreshTokenNotFound.
func (s *RefreshTokenService) VerifyRefreshToken(ctx context.Context, tokenString string) (*models.RefreshToken, error) {
	token, err := s.tokenCache.Get(ctx, tokenString)
	if err != nil || token == nil {
		token, err = s.refreshTokenRepo.FindByToken(ctx, tokenString)
		if err != nil {
			return nil, err
		}
		_ = s.tokenCache.Set(ctx, token)
	}

	if token.Expired(s.now()) {
		if err := s.revoke(ctx, token.Token); err != nil {
			return nil, err
		}
		return nil, apperrors.ErrRefreshTokenExpired
	}

	return token, nil
}

// RevokeToken deletes a refresh token. Unknown tokens are ignored.
func (s *RefreshTokenService) RevokeToken(ctx context.Context, tokenString string) error {
	return s.revoke(ctx, tokenString)
}

// RevokeUserTokens deletes the refresh token owned by a user.
func (s *RefreshTokenService) RevokeUserTokens(ctx context.Context, userID int64) error {
	token, err := s.refreshTokenRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRefreshTokenNotFound) {
			return nil
		}
		return err
	}
	_ = s.tokenCache.Delete(ctx, token.Token)

	return s.refreshTokenRepo.DeleteByUserID(ctx, userID)
}

func (s *RefreshTokenService) revoke(ctx context.Context, tokenString string) error {
	if err := s.refreshTokenRepo.DeleteByToken(ctx, tokenString); err != nil {
		return err
	}
	_ = s.tokenCache.Delete(ctx, tokenString)
	return nil
}
