// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"movieflix/internal/models"
	"movieflix/internal/service"
	"movieflix/internal/storage"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	LoginFunc    func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	RefreshFunc  func(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error)
	LogoutFunc   func(ctx context.Context, req *models.LogoutRequest) error
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Refresh(ctx context.Context, req *models.RefreshRequest) (*models.RefreshResponse, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Logout(ctx context.Context, req *models.LogoutRequest) error {
	if m.LogoutFunc != nil {
		return m.LogoutFunc(ctx, req)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetByUsernameFunc func(ctx context.Context, username string) (*models.User, error)
}

func (m *MockUserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.GetByUsernameFunc != nil {
		return m.GetByUsernameFunc(ctx, username)
	}
	return nil, nil
}

// MockPasswordResetService is a mock implementation of PasswordResetServicer.
type MockPasswordResetService struct {
	VerifyEmailFunc    func(ctx context.Context, email string) error
	VerifyOtpFunc      func(ctx context.Context, otp int, email string) (*models.ResetTokenResponse, error)
	ChangePasswordFunc func(ctx context.Context, email, resetToken string, req *models.ChangePasswordRequest) error
}

func (m *MockPasswordResetService) VerifyEmail(ctx context.Context, email string) error {
	if m.VerifyEmailFunc != nil {
		return m.VerifyEmailFunc(ctx, email)
	}
	return nil
}

func (m *MockPasswordResetService) VerifyOtp(ctx context.Context, otp int, email string) (*models.ResetTokenResponse, error) {
	if m.VerifyOtpFunc != nil {
		return m.VerifyOtpFunc(ctx, otp, email)
	}
	return nil, nil
}

func (m *MockPasswordResetService) ChangePassword(ctx context.Context, email, resetToken string, req *models.ChangePasswordRequest) error {
	if m.ChangePasswordFunc != nil {
		return m.ChangePasswordFunc(ctx, email, resetToken, req)
	}
	return nil
}

// MockMovieService is a mock implementation of MovieServicer.
type MockMovieService struct {
	AddMovieFunc            func(ctx context.Context, req *models.MovieRequest, poster *service.Upload) (*models.MovieResponse, error)
	GetMovieFunc            func(ctx context.Context, id int64) (*models.MovieResponse, error)
	GetAllMoviesFunc        func(ctx context.Context) ([]models.MovieResponse, error)
	GetMoviesPageFunc       func(ctx context.Context, pageNumber, pageSize int) (*models.MoviePageResponse, error)
	GetMoviesPageSortedFunc func(ctx context.Context, pageNumber, pageSize int, sortBy, dir string) (*models.MoviePageResponse, error)
	UpdateMovieFunc         func(ctx context.Context, id int64, req *models.MovieRequest, poster *service.Upload) (*models.MovieResponse, error)
	DeleteMovieFunc         func(ctx context.Context, id int64) (string, error)
}

func (m *MockMovieService) AddMovie(ctx context.Context, req *models.MovieRequest, poster *service.Upload) (*models.MovieResponse, error) {
	if m.AddMovieFunc != nil {
		return m.AddMovieFunc(ctx, req, poster)
	}
	return nil, nil
}

func (m *MockMovieService) GetMovie(ctx context.Context, id int64) (*models.MovieResponse, error) {
	if m.GetMovieFunc != nil {
		return m.GetMovieFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMovieService) GetAllMovies(ctx context.Context) ([]models.MovieResponse, error) {
	if m.GetAllMoviesFunc != nil {
		return m.GetAllMoviesFunc(ctx)
	}
	return nil, nil
}

func (m *MockMovieService) GetMoviesPage(ctx context.Context, pageNumber, pageSize int) (*models.MoviePageResponse, error) {
	if m.GetMoviesPageFunc != nil {
		return m.GetMoviesPageFunc(ctx, pageNumber, pageSize)
	}
	return nil, nil
}

func (m *MockMovieService) GetMoviesPageSorted(ctx context.Context, pageNumber, pageSize int, sortBy, dir string) (*models.MoviePageResponse, error) {
	if m.GetMoviesPageSortedFunc != nil {
		return m.GetMoviesPageSortedFunc(ctx, pageNumber, pageSize, sortBy, dir)
	}
	return nil, nil
}

func (m *MockMovieService) UpdateMovie(ctx context.Context, id int64, req *models.MovieRequest, poster *service.Upload) (*models.MovieResponse, error) {
	if m.UpdateMovieFunc != nil {
		return m.UpdateMovieFunc(ctx, id, req, poster)
	}
	return nil, nil
}

func (m *MockMovieService) DeleteMovie(ctx context.Context, id int64) (string, error) {
	if m.DeleteMovieFunc != nil {
		return m.DeleteMovieFunc(ctx, id)
	}
	return "", nil
}

// MockFileService is a mock implementation of FileServicer.
type MockFileService struct {
	UploadFunc func(ctx context.Context, upload *service.Upload) (string, error)
	OpenFunc   func(ctx context.Context, name string) (*storage.Object, error)
}

func (m *MockFileService) Upload(ctx context.Context, upload *service.Upload) (string, error) {
	if m.UploadFunc != nil {
		return m.UploadFunc(ctx, upload)
	}
	return "", nil
}

func (m *MockFileService) Open(ctx context.Context, name string) (*storage.Object, error) {
	if m.OpenFunc != nil {
		return m.OpenFunc(ctx, name)
	}
	return nil, nil
}

// Ensure mocks satisfy their interfaces
var (
	_ service.AuthServicer          = (*MockAuthService)(nil)
	_ service.UserServicer          = (*MockUserService)(nil)
	_ service.PasswordResetServicer = (*MockPasswordResetService)(nil)
	_ service.MovieServicer         = (*MockMovieService)(nil)
	_ service.FileServicer          = (*MockFileService)(nil)
)
