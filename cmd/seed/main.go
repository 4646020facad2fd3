package main

import (
	"context"
	"errors"
	"log"
	"time"

	"movieflix/internal/config"
	apperrors "movieflix/internal/errors"
	"movieflix/internal/models"
	"movieflix/internal/repository"
	"movieflix/internal/repository/backend"
	"movieflix/pkg/auth"
)

// seed creates the administrator account from ADMIN_* settings, or promotes
// an existing user with that username.
func main() {
	log.Println("Starting seed...")

	cfg := config.Load()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}

	db, err := backend.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := seedAdmin(ctx, db.Users, cfg); err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	log.Println("Seed completed successfully!")
}

func seedAdmin(ctx context.Context, users repository.UserRepository, cfg *config.Config) error {
	existing, err := users.FindByUsername(ctx, cfg.AdminUsername)
	switch {
	case err == nil:
		if existing.Role == models.RoleAdmin {
			log.Printf("User %s is already an admin", existing.Username)
			return nil
		}
		if err := users.UpdateRole(ctx, existing.ID, models.RoleAdmin); err != nil {
			return err
		}
		log.Printf("Promoted %s to admin", existing.Username)
		return nil
	case !errors.Is(err, apperrors.ErrUserNotFound):
		return err
	}

	hash, err := auth.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Name:         cfg.AdminName,
		Email:        cfg.AdminEmail,
		Username:     cfg.AdminUsername,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("Created admin %s (id=%d)", admin.Username, admin.ID)
	return nil
}
