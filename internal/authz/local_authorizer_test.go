package authz

import (
	"context"
	"errors"
	"testing"

	apperrors "movieflix/internal/errors"
	"movieflix/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockUserFinder is a test double for UserFinder.
type mockUserFinder struct {
	user *models.User
	err  error
}

func (m *mockUserFinder) FindByUsername(_ context.Context, _ string) (*models.User, error) {
	return m.user, m.err
}

func TestNewLocalAuthorizer(t *testing.T) {
	finder := &mockUserFinder{}

	auth := NewLocalAuthorizer(finder)

	require.NotNil(t, auth)
	assert.Equal(t, finder, auth.userFinder)
}

func TestLocalAuthorizer_CanPerform(t *testing.T) {
	ctx := context.Background()

	roleActionTests := []struct {
		name     string
		role     models.Role
		action   string
		expected bool
	}{
		{"admin can view movies", models.RoleAdmin, ActionMovieView, true},
		{"admin can create movies", models.RoleAdmin, ActionMovieCreate, true},
		{"admin can update movies", models.RoleAdmin, ActionMovieUpdate, true},
		{"admin can delete movies", models.RoleAdmin, ActionMovieDelete, true},
		{"admin can upload files", models.RoleAdmin, ActionFileUpload, true},
		{"admin can view profile", models.RoleAdmin, ActionProfileView, true},

		{"user can view movies", models.RoleUser, ActionMovieView, true},
		{"user cannot create movies", models.RoleUser, ActionMovieCreate, false},
		{"user cannot update movies", models.RoleUser, ActionMovieUpdate, false},
		{"user cannot delete movies", models.RoleUser, ActionMovieDelete, false},
		{"user cannot upload files", models.RoleUser, ActionFileUpload, false},
		{"user can view profile", models.RoleUser, ActionProfileView, true},

		{"unknown action is denied", models.RoleAdmin, "movie:launch", false},
		{"unknown role is denied", models.Role("GUEST"), ActionMovieView, false},
	}

	for _, tt := range roleActionTests {
		t.Run(tt.name, func(t *testing.T) {
			auth := NewLocalAuthorizer(&mockUserFinder{user: &models.User{Username: "alice", Role: tt.role}})

			can, err := auth.CanPerform(ctx, "alice", tt.action)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, can)
		})
	}

	t.Run("unknown user is denied", func(t *testing.T) {
		auth := NewLocalAuthorizer(&mockUserFinder{err: apperrors.ErrUserNotFound})

		can, err := auth.CanPerform(ctx, "ghost", ActionMovieView)

		require.NoError(t, err)
		assert.False(t, can)
	})

	t.Run("propagates lookup errors", func(t *testing.T) {
		dbErr := errors.New("database down")
		auth := NewLocalAuthorizer(&mockUserFinder{err: dbErr})

		can, err := auth.CanPerform(ctx, "alice", ActionMovieView)

		assert.ErrorIs(t, err, dbErr)
		assert.False(t, can)
	})
}

func TestLocalAuthorizer_GetUserRole(t *testing.T) {
	ctx := context.Background()

	t.Run("returns stored role", func(t *testing.T) {
		auth := NewLocalAuthorizer(&mockUserFinder{user: &models.User{Role: models.RoleAdmin}})

		role, err := auth.GetUserRole(ctx, "admin")

		require.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, role)
	})

	t.Run("returns empty role for unknown user", func(t *testing.T) {
		auth := NewLocalAuthorizer(&mockUserFinder{err: apperrors.ErrUserNotFound})

		role, err := auth.GetUserRole(ctx, "ghost")

		require.NoError(t, err)
		assert.Empty(t, role)
	})
}
