package repository

import (
	"context"
	"time"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

type ResetPasswordRepository interface {
	Create(ctx context.Context, reset *models.ResetPassword) error
	FindByEmailAndCode(ctx context.Context, email, code string) (*models.ResetPassword, error)
	DeleteByEmail(ctx context.Context, email string) error
}

type resetPasswordRepository struct {
	db *gorm.DB
}

func NewResetPasswordRepository(db *gorm.DB) ResetPasswordRepository {
	return &resetPasswordRepository{db: db}
}

func (r *resetPasswordRepository) Create(ctx context.Context, reset *models.ResetPassword) error {
	return r.db.WithContext(ctx).Create(reset).Error
}

func (r *resetPasswordRepository) FindByEmailAndCode(ctx context.Context, email, code string) (*models.ResetPassword, error) {
	var reset models.ResetPassword
	err := r.db.WithContext(ctx).
		Where("email = ? AND code = ? AND expires_at > ?", email, code, time.Now()).
		First(&reset).Error
	if err != nil {
		return nil, err
	}
	return &reset, nil
}

func (r *resetPasswordRepository) DeleteByEmail(ctx context.Context, email string) error {
	return r.db.WithContext(ctx).Where("email = ?", email).Delete(&models.ResetPassword{}).Error
}
