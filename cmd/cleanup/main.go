package main

import (
	"context"
	"log"
	"time"

	"movieflix/internal/config"
	"movieflix/internal/repository/backend"
)

// cleanup removes expired refresh tokens and password reset codes.
// It is meant to run periodically, e.g. from cron.
func main() {
	log.Println("Starting cleanup...")

	cfg := config.Load()

	db, err := backend.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	now := time.Now()

	tokens, err := db.RefreshTokens.DeleteExpired(ctx, now)
	if err != nil {
		log.Fatalf("Failed to delete expired refresh tokens: %v", err)
	}
	log.Printf("Deleted %d expired refresh tokens", tokens)

	codes, err := db.ForgotPasswords.DeleteExpired(ctx, now)
	if err != nil {
		log.Fatalf("Failed to delete expired reset codes: %v", err)
	}
	log.Printf("Deleted %d expired reset codes", codes)

	log.Println("Cleanup completed successfully!")
}
