package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"movieflix/internal/authz"
	"movieflix/internal/cache"
	"movieflix/internal/config"
	"movieflix/internal/handler"
	"movieflix/internal/mail"
	"movieflix/internal/queue"
	"movieflix/internal/repository/backend"
	"movieflix/internal/router"
	"movieflix/internal/service"
	"movieflix/internal/storage"
	"movieflix/internal/validator"
	"movieflix/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           MovieFlix API
// @version         1.0
// @description     A REST API for a movie catalogue with JWT authentication, password reset by OTP and poster storage.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	checks := map[string]handler.Checker{}

	// Database
	db, err := backend.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Migrate(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	store := db.Store
	checks["database"] = db.Ping

	// Redis Cache (optional)
	var appCache cache.Cache = cache.Noop{}
	if cfg.RedisURI != "" {
		redisCache := cache.NewRedis(cfg.RedisURI)
		defer redisCache.Close()
		appCache = redisCache
		checks["cache"] = redisCache.Ping
	} else {
		log.Println("REDIS_URI not set, caching and rate limiting disabled")
	}

	// Poster storage
	posters := newStorage(cfg)

	// Background deletion of replaced posters
	deleteQueue := queue.NewMemoryQueue(cfg.PosterCleanupQueueSize)
	cleanup := queue.NewProcessor(deleteQueue, posters, queue.ProcessorConfig{Workers: cfg.PosterCleanupWorkers})
	cleanup.Start(context.Background())

	// Mail
	var mailer mail.Mailer
	if cfg.SMTPHost != "" {
		mailer = mail.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	} else {
		log.Println("SMTP_HOST not set, emails are written to the log")
		mailer = mail.NewConsoleMailer()
	}

	// Token managers
	jwtManager := auth.NewJWTManager(cfg.AccessTokenSecret, cfg.AccessTokenExpiry)
	resetTokens := auth.NewResetTokenManager(cfg.ResetTokenSecret, cfg.ResetTokenExpiry)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(store.Users)

	// Service layer
	refreshTokenGenerator := auth.NewRefreshTokenGenerator()
	refreshTokenService := service.NewRefreshTokenService(service.RefreshTokenServiceConfig{
		UserRepo:         store.Users,
		RefreshTokenRepo: store.RefreshTokens,
		TokenCache:       cache.NewRefreshTokenCache(appCache, refreshTokenGenerator),
		TokenGenerator:   refreshTokenGenerator,
		RefreshTokenTTL:  cfg.RefreshTokenExpiry,
	})
	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:       store.Users,
		RefreshTokens:  refreshTokenService,
		JWTManager:     jwtManager,
		AccessTokenTTL: cfg.AccessTokenExpiry,
	})
	userService := service.NewUserService(store.Users, appCache)
	passwordResetService := service.NewPasswordResetService(service.PasswordResetServiceConfig{
		UserRepo:           store.Users,
		ForgotPasswordRepo: store.ForgotPasswords,
		RefreshTokens:      refreshTokenService,
		Mailer:             mailer,
		ResetTokens:        resetTokens,
		OTPTTL:             cfg.OTPExpiry,
		ResetTokenTTL:      cfg.ResetTokenExpiry,
	})
	movieService := service.NewMovieService(service.MovieServiceConfig{
		MovieRepo:   store.Movies,
		Storage:     posters,
		DeleteQueue: deleteQueue,
		BaseURL:     cfg.BaseURL,
	})
	fileService := service.NewFileService(posters)

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:           handler.NewAuthHandler(authService),
		UserHandler:           handler.NewUserHandler(userService),
		ForgotPasswordHandler: handler.NewForgotPasswordHandler(passwordResetService),
		MovieHandler:          handler.NewMovieHandler(movieService, cfg.MaxUploadSize),
		FileHandler:           handler.NewFileHandler(fileService, cfg.MaxUploadSize),
		HealthHandler:         handler.NewHealthHandler(checks),
		TokenManager:          jwtManager,
		Authorizer:            authorizer,
		Cache:                 appCache,
		OTPRateLimit:          cfg.OTPRateLimit,
		OTPRateWindow:         cfg.OTPRateWindow,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Stopping poster cleanup...")
	cleanup.Stop()

	log.Println("Server shutdown complete")
}

// newStorage returns the poster store selected by STORAGE_DRIVER.
func newStorage(cfg *config.Config) storage.Storage {
	if cfg.StorageDriver == config.StorageS3 {
		s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s3Client.EnsureBucket(ctx); err != nil {
			log.Fatalf("Failed to prepare bucket %s: %v", cfg.S3Bucket, err)
		}
		return s3Client
	}

	local, err := storage.NewLocalStorage(cfg.PosterDir)
	if err != nil {
		log.Fatalf("Failed to prepare poster directory: %v", err)
	}
	log.Printf("Storing posters in %s", cfg.PosterDir)
	return local
}
