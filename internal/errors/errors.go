// Package errors provides custom error types for the application.
package errors

import (
	"errors"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindConflict
	KindExpired
	KindInvalidCredential
	KindForbidden
	KindValidation
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindExpired:
		return "expired"
	case KindInvalidCredential:
		return "invalid_credential"
	case KindForbidden:
		return "forbidden"
	case KindValidation:
		return "validation"
	case KindUnavailable:
		return "unavailable"
	default:
		return "internal"
	}
}

// AppError is an error with a Kind. The package-level values are sentinels
// and are compared with errors.Is.
type AppError struct {
	Kind    Kind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func newError(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// User errors
var (
	ErrUserNotFound       = newError(KindNotFound, "user not found")
	ErrUserAlreadyExists  = newError(KindConflict, "user with this username or email already exists")
	ErrInvalidCredentials = newError(KindInvalidCredential, "invalid username or password")
)

// Auth errors
var (
	ErrUnauthorized            = newError(KindInvalidCredential, "unauthorized")
	ErrInsufficientPermissions = newError(KindForbidden, "insufficient permissions")
	ErrInvalidToken            = newError(KindInvalidCredential, "invalid token")
	ErrTokenExpired            = newError(KindExpired, "token expired")
	ErrInvalidResetToken       = newError(KindInvalidCredential, "invalid or expired password reset token")
)

// Refresh token errors
var (
	ErrRefreshTokenNotFound      = newError(KindNotFound, "refresh token not found")
	ErrRefreshTokenExpired       = newError(KindExpired, "refresh token has expired, please sign in again")
	ErrRefreshTokenAlreadyExists = newError(KindConflict, "refresh token already exists for this user")
)

// Password reset errors
var (
	ErrOtpInvalid       = newError(KindInvalidCredential, "invalid OTP for email")
	ErrOtpExpired       = newError(KindExpired, "OTP has expired")
	ErrPasswordMismatch = newError(KindValidation, "passwords do not match, please enter the password again")
	ErrEmailDelivery    = newError(KindUnavailable, "failed to send email")
)

// Movie errors
var (
	ErrMovieNotFound    = newError(KindNotFound, "movie not found")
	ErrInvalidMovieID   = newError(KindValidation, "invalid movie id")
	ErrInvalidSortField = newError(KindValidation, "invalid sort field")
	ErrInvalidPage      = newError(KindValidation, "invalid page request")
)

// File errors
var (
	ErrFileNotFound      = newError(KindNotFound, "file not found")
	ErrFileAlreadyExists = newError(KindConflict, "file already exists, please choose another file name")
	ErrInvalidFileName   = newError(KindValidation, "invalid file name")
)

// KindOf returns the Kind of the first AppError in err's chain, or
// KindInternal when there is none.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps err to the status code the API answers with.
func HTTPStatus(err error) int {
	if errors.Is(err, ErrPasswordMismatch) {
		return http.StatusExpectationFailed
	}

	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindExpired:
		return http.StatusExpectationFailed
	case KindInvalidCredential:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindValidation:
		return http.StatusBadRequest
	case KindUnavailable:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
