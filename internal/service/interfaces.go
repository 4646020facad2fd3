package service

import (
	"context"

	"movieflix/internal/models"
	"movieflix/internal/storage"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	Logout(ctx context.Context, req *models.LogoutRequest) error
}

// RefreshTokenManager defines the interface for refresh token lifecycle operations.
type RefreshTokenManager interface {
	CreateRefreshToken(ctx context.Context, username string) (*models.RefreshToken, error)
	VerifyRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error)
	RevokeToken(ctx context.Context, token string) error
	RevokeUserTokens(ctx context.Context, userID int64) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// PasswordResetServicer defines the interface for the forgot password flow.
type PasswordResetServicer interface {
	VerifyEmail(ctx context.Context, email string) error
	VerifyOtp(ctx context.Context, otp int, email string) (*models.ResetTokenResponse, error)
	ChangePassword(ctx context.Context, email, resetToken string, req *models.ChangePasswordRequest) error
}

// MovieServicer defines the interface for movie catalog operations.
type MovieServicer interface {
	AddMovie(ctx context.Context, req *models.MovieRequest, poster *Upload) (*models.MovieResponse, error)
	GetMovie(ctx context.Context, id int64) (*models.MovieResponse, error)
	GetAllMovies(ctx context.Context) ([]models.MovieResponse, error)
	GetMoviesPage(ctx context.Context, pageNumber, pageSize int) (*models.MoviePageResponse, error)
	GetMoviesPageSorted(ctx context.Context, pageNumber, pageSize int, sortBy, dir string) (*models.MoviePageResponse, error)
	UpdateMovie(ctx context.Context, id int64, req *models.MovieRequest, poster *Upload) (*models.MovieResponse, error)
	DeleteMovie(ctx context.Context, id int64) (string, error)
}

// FileServicer defines the interface for poster file operations.
type FileServicer interface {
	Upload(ctx context.Context, upload *Upload) (string, error)
	Open(ctx context.Context, name string) (*storage.Object, error)
}

// Ensure implementations satisfy their interfaces
var (
	_ AuthServicer          = (*AuthService)(nil)
	_ RefreshTokenManager   = (*RefreshTokenService)(nil)
	_ UserServicer          = (*UserService)(nil)
	_ PasswordResetServicer = (*PasswordResetService)(nil)
	_ MovieServicer         = (*MovieService)(nil)
	_ FileServicer          = (*FileService)(nil)
)
