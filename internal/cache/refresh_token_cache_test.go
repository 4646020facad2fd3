package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"movieflix/internal/cache"
	"movieflix/internal/cache/mocks"
	"movieflix/internal/models"
	"movieflix/pkg/auth"
	authmocks "movieflix/pkg/auth/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var hasher = auth.NewRefreshTokenGenerator()

func TestRefreshTokenCache_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("caches live token with remaining lifetime", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		token := &models.RefreshToken{ID: 1, Token: "rt_live", UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}

		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Set(ctx, cache.RefreshTokenCacheKey(hasher.Hash("rt_live")), token, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ any, ttl time.Duration) error {
				assert.Greater(t, ttl, 59*time.Minute)
				assert.LessOrEqual(t, ttl, time.Hour)
				return nil
			})

		err := cache.NewRefreshTokenCache(mockCache, hasher).Set(ctx, token)

		require.NoError(t, err)
	})

	t.Run("skips expired token", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockCache := mocks.NewMockCache(ctrl)
		token := &models.RefreshToken{Token: "rt_old", ExpiresAt: time.Now().Add(-time.Minute)}

		err := cache.NewRefreshTokenCache(mockCache, hasher).Set(ctx, token)

		require.NoError(t, err)
	})

	t.Run("returns error when cache set fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		expectedErr := errors.New("cache error")
		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().Set(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(expectedErr)

		err := cache.NewRefreshTokenCache(mockCache, hasher).Set(ctx, &models.RefreshToken{
			Token:     "rt_live",
			ExpiresAt: time.Now().Add(time.Hour),
		})

		assert.Equal(t, expectedErr, err)
	})
}

func TestRefreshTokenCache_Get(t *testing.T) {
	ctx := context.Background()
	key := cache.RefreshTokenCacheKey(hasher.Hash("rt_abc"))

	t.Run("returns record when found", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		expected := models.RefreshToken{ID: 3, Token: "rt_abc", UserID: 9, ExpiresAt: time.Now().Add(time.Hour)}

		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Get(ctx, key, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
				*dest.(*models.RefreshToken) = expected
				return true, nil
			})

		record, err := cache.NewRefreshTokenCache(mockCache, hasher).Get(ctx, "rt_abc")

		require.NoError(t, err)
		require.NotNil(t, record)
		assert.Equal(t, int64(9), record.UserID)
		assert.Equal(t, "rt_abc", record.Token)
	})

	t.Run("returns nil when not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().Get(ctx, key, gomock.Any()).Return(false, nil)

		record, err := cache.NewRefreshTokenCache(mockCache, hasher).Get(ctx, "rt_abc")

		require.NoError(t, err)
		assert.Nil(t, record)
	})

	t.Run("returns error when cache fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)

		mockCache := mocks.NewMockCache(ctrl)
		mockCache.EXPECT().Get(ctx, key, gomock.Any()).Return(false, errors.New("cache error"))

		record, err := cache.NewRefreshTokenCache(mockCache, hasher).Get(ctx, "rt_abc")

		assert.Error(t, err)
		assert.Nil(t, record)
	})
}

func TestRefreshTokenCache_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	mockCache := mocks.NewMockCache(ctrl)
	mockCache.EXPECT().Delete(ctx, cache.RefreshTokenCacheKey(hasher.Hash("rt_abc"))).Return(nil)

	err := cache.NewRefreshTokenCache(mockCache, hasher).Delete(ctx, "rt_abc")

	require.NoError(t, err)
}

func TestRefreshTokenCache_KeysByHasherDigest(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	mockHasher := authmocks.NewMockRefreshTokenGenerator(ctrl)
	mockHasher.EXPECT().Hash("rt_abc").Return("digest").Times(2)

	mockCache := mocks.NewMockCache(ctrl)
	mockCache.EXPECT().Get(ctx, "refresh_token:digest", gomock.Any()).Return(false, nil)
	mockCache.EXPECT().Delete(ctx, "refresh_token:digest").Return(nil)

	tokenCache := cache.NewRefreshTokenCache(mockCache, mockHasher)

	record, err := tokenCache.Get(ctx, "rt_abc")
	require.NoError(t, err)
	assert.Nil(t, record)
	require.NoError(t, tokenCache.Delete(ctx, "rt_abc"))
}
