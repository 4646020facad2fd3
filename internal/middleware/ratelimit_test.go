package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"movieflix/internal/cache"
	cachemocks "movieflix/internal/cache/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRateLimitedRouter(c cache.Cache, limit int) *gin.Engine {
	router := gin.New()
	router.POST("/verify/:email",
		RateLimit(c, RateLimitConfig{
			Scope:  "otp",
			Limit:  limit,
			Window: 15 * time.Minute,
			Key:    ParamKey("email"),
		}),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return router
}

func TestRateLimit(t *testing.T) {
	t.Run("allows requests within the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cachemocks.NewMockCache(ctrl)
		mockCache.EXPECT().
			Incr(gomock.Any(), "rate_limit:otp:a@x.io", 15*time.Minute).
			Return(int64(3), nil)

		w := httptest.NewRecorder()
		newRateLimitedRouter(mockCache, 3).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/verify/a@x.io", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects requests over the limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cachemocks.NewMockCache(ctrl)
		mockCache.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(4), nil)

		w := httptest.NewRecorder()
		newRateLimitedRouter(mockCache, 3).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/verify/a@x.io", nil))

		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Equal(t, "900", w.Header().Get("Retry-After"))
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("cache failure lets the request through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cachemocks.NewMockCache(ctrl)
		mockCache.EXPECT().Incr(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(0), errors.New("connection refused"))

		w := httptest.NewRecorder()
		newRateLimitedRouter(mockCache, 3).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/verify/a@x.io", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("zero limit disables counting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockCache := cachemocks.NewMockCache(ctrl)

		w := httptest.NewRecorder()
		newRateLimitedRouter(mockCache, 0).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/verify/a@x.io", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("noop cache never limits", func(t *testing.T) {
		router := newRateLimitedRouter(cache.Noop{}, 1)

		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/verify/a@x.io", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}
