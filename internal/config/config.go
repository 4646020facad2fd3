package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Database drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

// Storage drivers
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Config holds all configuration for the application.
// It is built once by Load and never modified afterwards.
type Config struct {
	ServerPort string
	GinMode    string
	BaseURL    string

	DBDriver      string
	DatabaseURL   string
	MongoURI      string
	MongoDatabase string
	RedisURI      string

	AccessTokenSecret  string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
	ResetTokenSecret   string
	ResetTokenExpiry   time.Duration
	OTPExpiry          time.Duration
	OTPRateLimit       int
	OTPRateWindow      time.Duration

	StorageDriver string
	PosterDir     string
	MaxUploadSize int64
	S3Endpoint    string
	S3AccessKey   string
	S3SecretKey   string
	S3Bucket      string
	S3UseSSL      bool

	PosterCleanupWorkers   int
	PosterCleanupQueueSize int

	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	AdminName     string
	AdminEmail    string
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if file doesn't exist - env vars may be set directly)
	_ = godotenv.Load()

	accessSecret := getEnvRequired("ACCESS_TOKEN_SECRET")

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		GinMode:    getEnv("GIN_MODE", "debug"),
		BaseURL:    strings.TrimRight(getEnv("BASE_URL", "http://localhost:8080"), "/"),

		DBDriver:      strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
		DatabaseURL:   getEnv("DATABASE_URL", "movieflix.db"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", ""),
		RedisURI:      getEnv("REDIS_URI", ""),

		AccessTokenSecret:  accessSecret,
		AccessTokenExpiry:  parseDuration(getEnv("ACCESS_TOKEN_EXPIRY", "15m")),
		RefreshTokenExpiry: parseDuration(getEnv("REFRESH_TOKEN_EXPIRY", "50m")),
		ResetTokenSecret:   getEnv("RESET_TOKEN_SECRET", accessSecret),
		ResetTokenExpiry:   parseDuration(getEnv("RESET_TOKEN_EXPIRY", "10m")),
		OTPExpiry:          parseDuration(getEnv("OTP_EXPIRY", "30m")),
		OTPRateLimit:       parseInt(getEnv("OTP_RATE_LIMIT", "5")),
		OTPRateWindow:      parseDuration(getEnv("OTP_RATE_WINDOW", "15m")),

		StorageDriver: strings.ToLower(getEnv("STORAGE_DRIVER", StorageLocal)),
		PosterDir:     getEnv("POSTER_DIR", "posters"),
		MaxUploadSize: int64(parseInt(getEnv("MAX_UPLOAD_SIZE", "10485760"))),
		S3Endpoint:    getEnv("S3_ENDPOINT", "localhost:9000"),
		S3AccessKey:   getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:   getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:      getEnv("S3_BUCKET", "posters"),
		S3UseSSL:      parseBool(getEnv("S3_USE_SSL", "false")),

		PosterCleanupWorkers:   parseInt(getEnv("POSTER_CLEANUP_WORKERS", "2")),
		PosterCleanupQueueSize: parseInt(getEnv("POSTER_CLEANUP_QUEUE_SIZE", "100")),

		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     parseInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		MailFrom:     getEnv("MAIL_FROM", "no-reply@movieflix.local"),

		AdminName:     getEnv("ADMIN_NAME", "Administrator"),
		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),
	}

	switch cfg.DBDriver {
	case DriverSQLite, DriverPostgres:
	case DriverMongo:
		if cfg.MongoDatabase == "" {
			log.Fatalf("Required environment variable %s is not set", "MONGO_DATABASE")
		}
	default:
		log.Fatalf("Unsupported DB_DRIVER: %s", cfg.DBDriver)
	}

	if cfg.StorageDriver != StorageLocal && cfg.StorageDriver != StorageS3 {
		log.Fatalf("Unsupported STORAGE_DRIVER: %s", cfg.StorageDriver)
	}

	return cfg
}

// getEnv reads an environment variable with a fallback default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvRequired reads an environment variable and exits if not set
func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

// parseDuration parses a duration string, exits on error
func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("Invalid duration format: %s", s)
	}
	return d
}

// parseInt parses an integer string, exits on error
func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("Invalid integer format: %s", s)
	}
	return n
}

// parseBool reports whether s is "true" (case-insensitive)
func parseBool(s string) bool {
	return strings.EqualFold(s, "true")
}
