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

type forgotPasswordRepository struct {
	db *gorm.DB
}

// NewForgotPasswordRepository creates a new ForgotPasswordRepository.
func NewForgotPasswordRepository(db *gorm.DB) repository.ForgotPasswordRepository {
	return &forgotPasswordRepository{db: db}
}

func (r *forgotPasswordRepository) Create(ctx context.Context, fp *models.ForgotPassword) error {
	fp.CreatedAt = time.Now().UTC()

	row := forgotPasswordRow{
		OTP:       fp.OTP,
		UserID:    fp.UserID,
		ExpiresAt: fp.ExpiresAt.UTC(),
		CreatedAt: fp.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}

	fp.ID = row.ID
	return nil
}

// FindByOTPAndUserID returns the newest record matching otp for the user.
func (r *forgotPasswordRepository) FindByOTPAndUserID(ctx context.Context, otp int, userID int64) (*models.ForgotPassword, error) {
	var row forgotPasswordRow
	err := r.db.WithContext(ctx).
		Where("otp = ? AND user_id = ?", otp, userID).
		Order("id DESC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOtpInvalid
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (r *forgotPasswordRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&forgotPasswordRow{}, id).Error
}

func (r *forgotPasswordRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&forgotPasswordRow{}).Error
}

func (r *forgotPasswordRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", before.UTC()).Delete(&forgotPasswordRow{})
	return result.RowsAffected, result.Error
}
