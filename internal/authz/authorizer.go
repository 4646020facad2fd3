// Package authz provides authorization interfaces and implementations.
package authz

import (
	"context"

	"movieflix/internal/models"
)

//go:generate mockgen -destination=mocks/mock_authorizer.go -package=mocks movieflix/internal/authz Authorizer

// Action constants define the authorization actions.
const (
	ActionMovieView   = "movie:view"
	ActionMovieCreate = "movie:create"
	ActionMovieUpdate = "movie:update"
	ActionMovieDelete = "movie:delete"
	ActionFileUpload  = "file:upload"
	ActionProfileView = "profile:view"
)

// Authorizer defines the interface for authorization checks.
type Authorizer interface {
	// CanPerform checks if a user can perform an action.
	CanPerform(ctx context.Context, username, action string) (bool, error)

	// GetUserRole returns the user's current role, or empty string if the user does not exist.
	GetUserRole(ctx context.Context, username string) (models.Role, error)
}
