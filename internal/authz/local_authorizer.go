package authz

import (
	"context"
	"errors"

	apperrors "movieflix/internal/errors"
	"movieflix/internal/models"
)

// UserFinder is the interface required by LocalAuthorizer to look up users.
type UserFinder interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// LocalAuthorizer implements Authorizer using the stored role of the user,
// so role changes apply to tokens issued before the change.
type LocalAuthorizer struct {
	userFinder UserFinder
}

// NewLocalAuthorizer creates a new LocalAuthorizer.
func NewLocalAuthorizer(userFinder UserFinder) *LocalAuthorizer {
	return &LocalAuthorizer{
		userFinder: userFinder,
	}
}

// rolePermissions maps actions to the roles that can perform them.
var rolePermissions = map[string][]models.Role{
	ActionMovieView:   {models.RoleAdmin, models.RoleUser},
	ActionMovieCreate: {models.RoleAdmin},
	ActionMovieUpdate: {models.RoleAdmin},
	ActionMovieDelete: {models.RoleAdmin},
	ActionFileUpload:  {models.RoleAdmin},
	ActionProfileView: {models.RoleAdmin, models.RoleUser},
}

// CanPerform checks if a user can perform an action.
func (a *LocalAuthorizer) CanPerform(ctx context.Context, username, action string) (bool, error) {
	role, err := a.GetUserRole(ctx, username)
	if err != nil {
		return false, err
	}
	return RoleAllows(role, action), nil
}

// GetUserRole returns the user's current role, or empty string if the user does not exist.
func (a *LocalAuthorizer) GetUserRole(ctx context.Context, username string) (models.Role, error) {
	user, err := a.userFinder.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", nil
		}
		return "", err
	}
	return user.Role, nil
}

// RoleAllows reports whether role may perform action. Unknown actions are denied.
func RoleAllows(role models.Role, action string) bool {
	for _, allowed := range rolePermissions[action] {
		if role == allowed {
			return true
		}
	}
	return false
}
