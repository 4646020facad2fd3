// Package sqlstore implements the repository interfaces on gorm, for
// PostgreSQL and SQLite.
package sqlstore

import (
	"errors"
	"strings"
	"time"

	"movieflix/internal/models"
	"movieflix/internal/repository"

	"gorm.io/gorm"
)

// NewStore returns all repositories backed by db.
func NewStore(db *gorm.DB) *repository.Store {
	return &repository.Store{
		Users:           NewUserRepository(db),
		RefreshTokens:   NewRefreshTokenRepository(db),
		ForgotPasswords: NewForgotPasswordRepository(db),
		Movies:          NewMovieRepository(db),
	}
}

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userRow{},
		&refreshTokenRow{},
		&forgotPasswordRow{},
		&movieRow{},
		&movieCastRow{},
	)
}

type userRow struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name         string    `gorm:"column:name;size:255;not null"`
	Email        string    `gorm:"column:email;size:255;not null;uniqueIndex"`
	Username     string    `gorm:"column:username;size:100;not null;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash;size:255;not null"`
	Role         string    `gorm:"column:role;size:20;not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userRow) TableName() string { return "users" }

func toUserRow(u *models.User) userRow {
	return userRow{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Username:     u.Username,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r userRow) toModel() *models.User {
	return &models.User{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		Username:     r.Username,
		PasswordHash: r.PasswordHash,
		Role:         models.Role(r.Role),
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

type refreshTokenRow struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Token     string    `gorm:"column:token;size:255;not null;uniqueIndex"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (refreshTokenRow) TableName() string { return "refresh_tokens" }

func (r refreshTokenRow) toModel() *models.RefreshToken {
	return &models.RefreshToken{
		ID:        r.ID,
		Token:     r.Token,
		UserID:    r.UserID,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
	}
}

type forgotPasswordRow struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement"`
	OTP       int       `gorm:"column:otp;not null;index:idx_forgot_passwords_otp_user"`
	UserID    int64     `gorm:"column:user_id;not null;index:idx_forgot_passwords_otp_user"`
	ExpiresAt time.Time `gorm:"column:expires_at;not null;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (forgotPasswordRow) TableName() string { return "forgot_passwords" }

func (r forgotPasswordRow) toModel() *models.ForgotPassword {
	return &models.ForgotPassword{
		ID:        r.ID,
		OTP:       r.OTP,
		UserID:    r.UserID,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
	}
}

type movieRow struct {
	ID          int64          `gorm:"column:id;primaryKey;autoIncrement"`
	ReleaseYear int            `gorm:"column:release_year;not null"`
	Title       string         `gorm:"column:title;size:255;not null"`
	Genre       string         `gorm:"column:genre;size:100;not null"`
	Director    string         `gorm:"column:director;size:255;not null"`
	Studio      string         `gorm:"column:studio;size:255;not null"`
	Poster      string         `gorm:"column:poster;size:255;not null"`
	Cast        []movieCastRow `gorm:"foreignKey:MovieID"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
}

func (movieRow) TableName() string { return "movies" }

type movieCastRow struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	MovieID  int64  `gorm:"column:movie_id;not null;index"`
	Position int    `gorm:"column:position;not null"`
	Name     string `gorm:"column:name;size:255;not null"`
}

func (movieCastRow) TableName() string { return "movie_cast" }

func toCastRows(movieID int64, cast []string) []movieCastRow {
	rows := make([]movieCastRow, 0, len(cast))
	for i, name := range models.UniqueCast(cast) {
		rows = append(rows, movieCastRow{MovieID: movieID, Position: i, Name: name})
	}
	return rows
}

func (r movieRow) toModel() *models.Movie {
	cast := make([]string, 0, len(r.Cast))
	for _, c := range r.Cast {
		cast = append(cast, c.Name)
	}
	return &models.Movie{
		ID:          r.ID,
		ReleaseYear: r.ReleaseYear,
		Title:       r.Title,
		Genre:       r.Genre,
		Director:    r.Director,
		Studio:      r.Studio,
		Poster:      r.Poster,
		Cast:        cast,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// isUniqueViolation recognizes duplicate key errors from PostgreSQL and SQLite.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
