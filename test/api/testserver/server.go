//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"movieflix/internal/authz"
	"movieflix/internal/cache"
	"movieflix/internal/handler"
	"movieflix/internal/repository"
	"movieflix/internal/repository/mongostore"
	"movieflix/internal/router"
	"movieflix/internal/service"
	"movieflix/pkg/auth"
	"movieflix/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestAccessTokenSecret is the JWT secret used in tests.
	TestAccessTokenSecret = "test-secret-key-for-api-tests"
	// TestResetTokenSecret signs password reset tokens in tests.
	TestResetTokenSecret = "test-reset-secret-for-api-tests"
	// TestAccessTokenExpiry is the access token expiry time used in tests.
	TestAccessTokenExpiry = 15 * time.Minute
	// TestRefreshTokenExpiry is the refresh token expiry time used in tests.
	TestRefreshTokenExpiry = 50 * time.Minute
	// TestResetTokenExpiry is the reset token expiry time used in tests.
	TestResetTokenExpiry = 10 * time.Minute
	// TestOTPExpiry is how long reset codes stay valid in tests.
	TestOTPExpiry = 30 * time.Minute
	// TestOTPRateLimit is the number of OTP requests allowed per email and window.
	TestOTPRateLimit = 3
	// TestBaseURL prefixes poster URLs.
	TestBaseURL = "http://movieflix.test"
	// TestMaxUploadSize bounds multipart bodies.
	TestMaxUploadSize = 1 << 20
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer
	MinIO   *testdb.MinIOContainer

	// Store gives direct database access in tests.
	Store *repository.Store

	// Outbox records every email the server sends.
	Outbox *Outbox

	// Auth
	JWTManager  *auth.JWTManager
	ResetTokens *auth.ResetTokenManager
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	// Start containers
	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	minioContainer, err := testdb.SetupMinIO(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		_ = redisContainer.Cleanup(ctx)
		return nil, err
	}

	redisCache := redisContainer.Cache
	posters := minioContainer.Posters

	// Token managers
	jwtManager := auth.NewJWTManager(TestAccessTokenSecret, TestAccessTokenExpiry)
	resetTokens := auth.NewResetTokenManager(TestResetTokenSecret, TestResetTokenExpiry)

	outbox := &Outbox{}
	store := mongostore.NewStore(mongoDB.Database)

	// Service layer
	refreshTokenGenerator := auth.NewRefreshTokenGenerator()
	refreshTokenService := service.NewRefreshTokenService(service.RefreshTokenServiceConfig{
		UserRepo:         store.Users,
		RefreshTokenRepo: store.RefreshTokens,
		TokenCache:       cache.NewRefreshTokenCache(redisCache, refreshTokenGenerator),
		TokenGenerator:   refreshTokenGenerator,
		RefreshTokenTTL:  TestRefreshTokenExpiry,
	})
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:       store.Users,
		RefreshTokens:  refreshTokenService,
		JWTManager:     jwtManager,
		Hasher:         auth.NewBcryptHasher(4),
		AccessTokenTTL: TestAccessTokenExpiry,
	})
	userService := service.NewUserService(store.Users, redisCache)
	passwordResetService := service.NewPasswordResetService(service.PasswordResetServiceConfig{
		UserRepo:           store.Users,
		ForgotPasswordRepo: store.ForgotPasswords,
		RefreshTokens:      refreshTokenService,
		Mailer:             outbox,
		ResetTokens:        resetTokens,
		Hasher:             auth.NewBcryptHasher(4),
		OTPTTL:             TestOTPExpiry,
		ResetTokenTTL:      TestResetTokenExpiry,
	})
	movieService := service.NewMovieService(service.MovieServiceConfig{
		MovieRepo: store.Movies,
		Storage:   posters,
		BaseURL:   TestBaseURL,
	})
	fileService := service.NewFileService(posters)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:           handler.NewAuthHandler(authService),
		UserHandler:           handler.NewUserHandler(userService),
		ForgotPasswordHandler: handler.NewForgotPasswordHandler(passwordResetService),
		MovieHandler:          handler.NewMovieHandler(movieService, TestMaxUploadSize),
		FileHandler:           handler.NewFileHandler(fileService, TestMaxUploadSize),
		HealthHandler: handler.NewHealthHandler(map[string]handler.Checker{
			"database": mongoDB.Ping,
			"cache":    redisCache.Ping,
		}),
		TokenManager:  jwtManager,
		Authorizer:    authz.NewLocalAuthorizer(store.Users),
		Cache:         redisCache,
		OTPRateLimit:  TestOTPRateLimit,
		OTPRateWindow: time.Minute,
	})

	return &TestServer{
		Router:      r,
		MongoDB:     mongoDB,
		Redis:       redisContainer,
		MinIO:       minioContainer,
		Store:       store,
		Outbox:      outbox,
		JWTManager:  jwtManager,
		ResetTokens: resetTokens,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.MinIO != nil {
		_ = ts.MinIO.Cleanup(ctx)
	}
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
