// Package router sets up HTTP routes for the API.
package router

import (
	"time"

	_ "movieflix/swagger" // Register swagger docs

	"movieflix/internal/authz"
	"movieflix/internal/cache"
	"movieflix/internal/handler"
	"movieflix/internal/middleware"
	"movieflix/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler           *handler.AuthHandler
	UserHandler           *handler.UserHandler
	ForgotPasswordHandler *handler.ForgotPasswordHandler
	MovieHandler          *handler.MovieHandler
	FileHandler           *handler.FileHandler
	HealthHandler         *handler.HealthHandler
	TokenManager          auth.TokenManager
	Authorizer            authz.Authorizer

	// Cache holds the rate limit counters. Nil disables rate limiting.
	Cache         cache.Cache
	OTPRateLimit  int
	OTPRateWindow time.Duration
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", cfg.HealthHandler.Health)

	requireAuth := middleware.Auth(cfg.TokenManager)
	can := func(action string) gin.HandlerFunc {
		return middleware.RequirePermission(cfg.Authorizer, action)
	}

	rateCache := cfg.Cache
	if rateCache == nil {
		rateCache = cache.Noop{}
	}
	otpLimit := func(scope string) gin.HandlerFunc {
		return middleware.RateLimit(rateCache, middleware.RateLimitConfig{
			Scope:  scope,
			Limit:  cfg.OTPRateLimit,
			Window: cfg.OTPRateWindow,
			Key:    middleware.ParamKey("email"),
		})
	}

	// Poster files
	files := r.Group("/file")
	{
		files.GET("/:fileName", cfg.FileHandler.Serve)
		files.POST("/upload", requireAuth, can(authz.ActionFileUpload), cfg.FileHandler.Upload)
	}

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", cfg.AuthHandler.Register)
			authRoutes.POST("/login", cfg.AuthHandler.Login)
			authRoutes.POST("/refresh", cfg.AuthHandler.Refresh)
			authRoutes.POST("/logout", requireAuth, cfg.AuthHandler.Logout)
		}

		// Password reset (public, rate limited per email)
		forgot := v1.Group("/forgot-password")
		{
			forgot.POST("/verify-email/:email", otpLimit("verify_email"), cfg.ForgotPasswordHandler.VerifyEmail)
			forgot.POST("/verify-otp/:otp/:email", otpLimit("verify_otp"), cfg.ForgotPasswordHandler.VerifyOtp)
			forgot.POST("/change-password/:email/:otpToken", cfg.ForgotPasswordHandler.ChangePassword)
		}

		// User routes (protected)
		users := v1.Group("/users")
		users.Use(requireAuth)
		{
			users.GET("/me", can(authz.ActionProfileView), cfg.UserHandler.Me)
		}

		// Movie routes (protected, writes need ADMIN)
		movies := v1.Group("/movies")
		movies.Use(requireAuth)
		{
			movies.GET("", can(authz.ActionMovieView), cfg.MovieHandler.GetAllMovies)
			movies.GET("/pages", can(authz.ActionMovieView), cfg.MovieHandler.GetMoviesPage)
			movies.GET("/pages/sorted", can(authz.ActionMovieView), cfg.MovieHandler.GetMoviesPageSorted)
			movies.GET("/:id", can(authz.ActionMovieView), cfg.MovieHandler.GetMovie)
			movies.POST("", can(authz.ActionMovieCreate), cfg.MovieHandler.AddMovie)
			movies.PUT("/:id", can(authz.ActionMovieUpdate), cfg.MovieHandler.UpdateMovie)
			movies.DELETE("/:id", can(authz.ActionMovieDelete), cfg.MovieHandler.DeleteMovie)
		}
	}

	return r
}
