package sqlstore

import (
	"context"
	"testing"
	"time"

	apperrors "movieflix/internal/errors"
	"movieflix/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForgotPasswordRepository(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserRepository(db)
	repo := NewForgotPasswordRepository(db)
	ctx := context.Background()

	alice := newTestUser("alice", "alice@example.com")
	require.NoError(t, users.Create(ctx, alice))
	bob := newTestUser("bob", "bob@example.com")
	require.NoError(t, users.Create(ctx, bob))

	t.Run("finds record by otp and user", func(t *testing.T) {
		fp := &models.ForgotPassword{OTP: 123456, UserID: alice.ID, ExpiresAt: time.Now().Add(30 * time.Minute)}
		require.NoError(t, repo.Create(ctx, fp))
		assert.NotZero(t, fp.ID)

		found, err := repo.FindByOTPAndUserID(ctx, 123456, alice.ID)

		require.NoError(t, err)
		assert.Equal(t, fp.ID, found.ID)
		assert.False(t, found.Expired(time.Now()))
	})

	t.Run("otp of another user is invalid", func(t *testing.T) {
		_, err := repo.FindByOTPAndUserID(ctx, 123456, bob.ID)

		assert.ErrorIs(t, err, apperrors.ErrOtpInvalid)
	})

	t.Run("wrong otp is invalid", func(t *testing.T) {
		_, err := repo.FindByOTPAndUserID(ctx, 654321, alice.ID)

		assert.ErrorIs(t, err, apperrors.ErrOtpInvalid)
	})

	t.Run("deletes by id", func(t *testing.T) {
		fp := &models.ForgotPassword{OTP: 111111, UserID: bob.ID, ExpiresAt: time.Now().Add(time.Minute)}
		require.NoError(t, repo.Create(ctx, fp))

		require.NoError(t, repo.DeleteByID(ctx, fp.ID))

		_, err := repo.FindByOTPAndUserID(ctx, 111111, bob.ID)
		assert.ErrorIs(t, err, apperrors.ErrOtpInvalid)
	})

	t.Run("deletes by user", func(t *testing.T) {
		require.NoError(t, repo.DeleteByUserID(ctx, alice.ID))

		_, err := repo.FindByOTPAndUserID(ctx, 123456, alice.ID)
		assert.ErrorIs(t, err, apperrors.ErrOtpInvalid)
	})

	t.Run("deletes expired records", func(t *testing.T) {
		require.NoError(t, repo.Create(ctx, &models.ForgotPassword{OTP: 222222, UserID: alice.ID, ExpiresAt: time.Now().Add(-time.Minute)}))
		require.NoError(t, repo.Create(ctx, &models.ForgotPassword{OTP: 333333, UserID: alice.ID, ExpiresAt: time.Now().Add(time.Hour)}))

		deleted, err := repo.DeleteExpired(ctx, time.Now())

		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)
		_, err = repo.FindByOTPAndUserID(ctx, 333333, alice.ID)
		assert.NoError(t, err)
	})
}
