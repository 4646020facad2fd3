package sqlstore

import (
	"context"
	"errors"
	"time"

	apperrors "movieflix/internal/errors"
	"movieflix/internal/models"
	"movieflix/internal/repository"

	"gorm.io/gorm"
)

// refreshTokenRepository implements repository.RefreshTokenRepository using gorm.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a new RefreshTokenRepository.
func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Create inserts a refresh token. A user owns at most one.
func (r *refreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	token.CreatedAt = time.Now().UTC()

	row := refreshTokenRow{
		Token:     token.Token,
		UserID:    token.UserID,
		ExpiresAt: token.ExpiresAt.UTC(),
		CreatedAt: token.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrRefreshTokenAlreadyExists
		}
		return err
	}

	token.ID = row.ID
	return nil
}

// FindByToken finds a refresh token by its token string, expired or not.
func (r *refreshTokenRepository) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	return r.findOne(ctx, "token = ?", token)
}

// FindByUserID finds the refresh token owned by a user.
func (r *refreshTokenRepository) FindByUserID(ctx context.Context, userID int64) (*models.RefreshToken, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *refreshTokenRepository) findOne(ctx context.Context, query string, arg interface{}) (*models.RefreshToken, error) {
	var row refreshTokenRow
	err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRefreshTokenNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

// DeleteByToken removes a refresh token by its token string.
func (r *refreshTokenRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&refreshTokenRow{}).Error
}

// DeleteByUserID removes the refresh token of a user.
func (r *refreshTokenRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&refreshTokenRow{}).Error
}

// DeleteExpired removes tokens that expired before the given time.
func (r *refreshTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", before.UTC()).Delete(&refreshTokenRow{})
	return result.RowsAffected, result.Error
}
