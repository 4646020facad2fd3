// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"time"

	"movieflix/internal/models"

	"github.com/google/uuid"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	suffix := uuid.NewString()[:8]
	return &UserBuilder{
		user: models.User{
			Name:         "Test User",
			Email:        "test-" + suffix + "@example.com",
			Username:     "user_" + suffix,
			PasswordHash: "hashedpassword",
			Role:         models.RoleUser,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id int64) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.user.Name = name
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.user.Username = username
	return b
}

func (b *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	b.user.PasswordHash = hash
	return b
}

func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.Role = models.RoleAdmin
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	u := b.user
	return &u
}

// ===== Movie Fixtures =====

// MovieBuilder provides fluent API for building test movies.
type MovieBuilder struct {
	movie models.Movie
}

// NewMovie creates a new MovieBuilder with sensible defaults.
func NewMovie() *MovieBuilder {
	return &MovieBuilder{
		movie: models.Movie{
			ReleaseYear: 2010,
			Title:       "Inception",
			Genre:       "Sci-Fi",
			Director:    "Christopher Nolan",
			Studio:      "Warner Bros",
			Poster:      "inception.png",
			Cast:        []string{"Leonardo DiCaprio", "Elliot Page"},
		},
	}
}

func (b *MovieBuilder) WithID(id int64) *MovieBuilder {
	b.movie.ID = id
	return b
}

func (b *MovieBuilder) WithTitle(title string) *MovieBuilder {
	b.movie.Title = title
	return b
}

func (b *MovieBuilder) WithReleaseYear(year int) *MovieBuilder {
	b.movie.ReleaseYear = year
	return b
}

func (b *MovieBuilder) WithPoster(poster string) *MovieBuilder {
	b.movie.Poster = poster
	return b
}

func (b *MovieBuilder) WithCast(cast ...string) *MovieBuilder {
	b.movie.Cast = cast
	return b
}

func (b *MovieBuilder) Build() models.Movie {
	return b.movie
}

func (b *MovieBuilder) BuildPtr() *models.Movie {
	m := b.movie
	return &m
}

// Request returns the create/update payload for the movie.
func (b *MovieBuilder) Request() models.MovieRequest {
	return models.MovieRequest{
		ReleaseYear: b.movie.ReleaseYear,
		Title:       b.movie.Title,
		Genre:       b.movie.Genre,
		Director:    b.movie.Director,
		Studio:      b.movie.Studio,
		Cast:        b.movie.Cast,
	}
}

// ===== Password Reset Fixtures =====

// ForgotPasswordBuilder provides fluent API for building reset codes.
type ForgotPasswordBuilder struct {
	fp models.ForgotPassword
}

// NewForgotPassword creates a code valid for 30 minutes.
func NewForgotPassword() *ForgotPasswordBuilder {
	return &ForgotPasswordBuilder{
		fp: models.ForgotPassword{
			OTP:       123456,
			ExpiresAt: time.Now().Add(30 * time.Minute),
		},
	}
}

func (b *ForgotPasswordBuilder) WithOTP(otp int) *ForgotPasswordBuilder {
	b.fp.OTP = otp
	return b
}

func (b *ForgotPasswordBuilder) WithUserID(userID int64) *ForgotPasswordBuilder {
	b.fp.UserID = userID
	return b
}

func (b *ForgotPasswordBuilder) Expired() *ForgotPasswordBuilder {
	b.fp.ExpiresAt = time.Now().Add(-time.Minute)
	return b
}

func (b *ForgotPasswordBuilder) BuildPtr() *models.ForgotPassword {
	fp := b.fp
	return &fp
}

// ===== Refresh Token Fixtures =====

// RefreshTokenBuilder provides fluent API for building refresh tokens.
type RefreshTokenBuilder struct {
	token models.RefreshToken
}

// NewRefreshToken creates a token valid for one hour.
func NewRefreshToken() *RefreshTokenBuilder {
	return &RefreshTokenBuilder{
		token: models.RefreshToken{
			Token:     "rt_" + uuid.NewString(),
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}
}

func (b *RefreshTokenBuilder) WithToken(token string) *RefreshTokenBuilder {
	b.token.Token = token
	return b
}

func (b *RefreshTokenBuilder) WithUserID(userID int64) *RefreshTokenBuilder {
	b.token.UserID = userID
	return b
}

func (b *RefreshTokenBuilder) Expired() *RefreshTokenBuilder {
	b.token.ExpiresAt = time.Now().Add(-time.Hour)
	return b
}

func (b *RefreshTokenBuilder) BuildPtr() *models.RefreshToken {
	t := b.token
	return &t
}
