package service

import (
	"context"
	"time"

	"movieflix/internal/cache"
	"movieflix/internal/models"
	"movieflix/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UserService handles user profile lookups.
type UserService struct {
	userRepo repository.UserRepository
	cache    cache.Cache
}

// NewUserService creates a new UserService. A nil cache disables caching.
func NewUserService(userRepo repository.UserRepository, c cache.Cache) *UserService {
	if c == nil {
		c = cache.Noop{}
	}
	return &UserService{userRepo: userRepo, cache: c}
}

// GetByUsername returns a user, served from cache when possible.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	key := cache.UserCacheKey(username)

	var cached models.User
	if found, err := s.cache.Get(ctx, key, &cached); err == nil && found {
		return &cached, nil
	}

	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, key, user, userCacheTTL)

	return user, nil
}
