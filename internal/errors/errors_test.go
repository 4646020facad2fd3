package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected string
		kind     Kind
	}{
		{"ErrUserNotFound", ErrUserNotFound, "user not found", KindNotFound},
		{"ErrUserAlreadyExists", ErrUserAlreadyExists, "user with this username or email already exists", KindConflict},
		{"ErrInvalidCredentials", ErrInvalidCredentials, "invalid username or password", KindInvalidCredential},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.Equal(t, tt.kind, tt.err.Kind)
		})
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected Kind
	}{
		{"sentinel", ErrMovieNotFound, KindNotFound},
		{"wrapped sentinel", fmt.Errorf("get movie 7: %w", ErrMovieNotFound), KindNotFound},
		{"double wrapped", fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ErrOtpExpired)), KindExpired},
		{"plain error", errors.New("boom"), KindInternal},
		{"nil", nil, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, KindOf(tt.err))
		})
	}
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"user not found", ErrUserNotFound, http.StatusNotFound},
		{"movie not found", ErrMovieNotFound, http.StatusNotFound},
		{"refresh token not found", ErrRefreshTokenNotFound, http.StatusNotFound},
		{"file not found", ErrFileNotFound, http.StatusNotFound},
		{"user exists", ErrUserAlreadyExists, http.StatusConflict},
		{"file exists", ErrFileAlreadyExists, http.StatusConflict},
		{"refresh token expired", ErrRefreshTokenExpired, http.StatusExpectationFailed},
		{"otp expired", ErrOtpExpired, http.StatusExpectationFailed},
		{"invalid credentials", ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid otp", ErrOtpInvalid, http.StatusUnauthorized},
		{"invalid reset token", ErrInvalidResetToken, http.StatusUnauthorized},
		{"insufficient permissions", ErrInsufficientPermissions, http.StatusForbidden},
		{"password mismatch", ErrPasswordMismatch, http.StatusExpectationFailed},
		{"invalid sort field", ErrInvalidSortField, http.StatusBadRequest},
		{"invalid file name", ErrInvalidFileName, http.StatusBadRequest},
		{"email delivery", ErrEmailDelivery, http.StatusBadGateway},
		{"wrapped", fmt.Errorf("verify email: %w", ErrEmailDelivery), http.StatusBadGateway},
		{"unknown", errors.New("database error"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorsIs(t *testing.T) {
	wrapped := fmt.Errorf("verify otp: %w", ErrOtpInvalid)

	assert.True(t, errors.Is(wrapped, ErrOtpInvalid))
	assert.False(t, errors.Is(wrapped, ErrOtpExpired))
	assert.False(t, errors.Is(ErrUserNotFound, ErrMovieNotFound))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "not_found", KindNotFound.String())
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "internal", Kind(99).String())
}
