// Package repository defines data access contracts for the application.
// Implementations live in the mongostore and sqlstore subpackages.
package repository

import (
	"context"
	"fmt"
	"math"
	"time"

	apperrors "movieflix/internal/errors"
	"movieflix/internal/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks movieflix/internal/repository UserRepository,RefreshTokenRepository,ForgotPasswordRepository,MovieRepository

// UserRepository defines the interface for user data operations.
// Lookups that find nothing return apperrors.ErrUserNotFound.
type UserRepository interface {
	// Create fails with apperrors.ErrUserAlreadyExists when the username or
	// email is taken.
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	UpdateRole(ctx context.Context, id int64, role models.Role) error
}

// RefreshTokenRepository defines the interface for refresh token data operations.
// Lookups that find nothing return apperrors.ErrRefreshTokenNotFound.
type RefreshTokenRepository interface {
	// Create fails with apperrors.ErrRefreshTokenAlreadyExists when the user
	// already owns a token.
	Create(ctx context.Context, token *models.RefreshToken) error
	FindByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	FindByUserID(ctx context.Context, userID int64) (*models.RefreshToken, error)
	DeleteByToken(ctx context.Context, token string) error
	DeleteByUserID(ctx context.Context, userID int64) error
	// DeleteExpired removes tokens that expired before the given time and
	// returns how many were removed.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// ForgotPasswordRepository defines the interface for password reset codes.
type ForgotPasswordRepository interface {
	Create(ctx context.Context, fp *models.ForgotPassword) error
	// FindByOTPAndUserID returns apperrors.ErrOtpInvalid when no record matches.
	FindByOTPAndUserID(ctx context.Context, otp int, userID int64) (*models.ForgotPassword, error)
	DeleteByID(ctx context.Context, id int64) error
	DeleteByUserID(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

// MovieRepository defines the interface for movie data operations.
// Lookups that find nothing return apperrors.ErrMovieNotFound.
type MovieRepository interface {
	Create(ctx context.Context, movie *models.Movie) error
	FindByID(ctx context.Context, id int64) (*models.Movie, error)
	FindAll(ctx context.Context) ([]models.Movie, error)
	// FindPage returns the requested page and the total number of movies.
	// An unknown sort field fails with apperrors.ErrInvalidSortField.
	FindPage(ctx context.Context, page PageRequest) ([]models.Movie, int64, error)
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id int64) error
}

// Store bundles the repositories of one backend.
type Store struct {
	Users           UserRepository
	RefreshTokens   RefreshTokenRepository
	ForgotPasswords ForgotPasswordRepository
	Movies          MovieRepository
}

// MovieSortField is a movie attribute pages can be ordered by, named as in the API.
type MovieSortField string

// Sortable movie fields
const (
	SortByID          MovieSortField = "movieId"
	SortByReleaseYear MovieSortField = "releaseYear"
	SortByTitle       MovieSortField = "title"
	SortByGenre       MovieSortField = "genre"
	SortByDirector    MovieSortField = "director"
	SortByStudio      MovieSortField = "studio"
	SortByPoster      MovieSortField = "poster"
)

// PageRequest selects one zero-based page of results.
type PageRequest struct {
	Number    int
	Size      int
	SortBy    MovieSortField
	Ascending bool
}

// Validate rejects negative pages, empty pages and pages whose offset
// would not fit in an int.
func (p PageRequest) Validate() error {
	if p.Number < 0 || p.Size < 1 {
		return fmt.Errorf("%w: page number must be >= 0 and page size >= 1", apperrors.ErrInvalidPage)
	}
	if p.Number > math.MaxInt/p.Size {
		return fmt.Errorf("%w: page number %d is out of range", apperrors.ErrInvalidPage, p.Number)
	}
	return nil
}

// Offset returns the number of rows before the page. Call Validate first.
func (p PageRequest) Offset() int {
	return p.Number * p.Size
}

// SortField returns the requested field, defaulting to SortByID.
func (p PageRequest) SortField() MovieSortField {
	if p.SortBy == "" {
		return SortByID
	}
	return p.SortBy
}
