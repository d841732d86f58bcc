package repository

import (
	"context"

	"newsroom/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByName(ctx context.Context, name string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Patch(ctx context.Context, id string, data map[string]interface{}) error
	Delete(ctx context.Context, id string) error

	// Find lists users, optionally restricted to a role, optionally matched
	// against name/email/pen name.
	Find(ctx context.Context, role models.Role, search string, offset, limit int) ([]models.User, error)
	Count(ctx context.Context, role models.Role, search string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByName(ctx context.Context, name string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "name = ?", name).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Patch(ctx context.Context, id string, data map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(data).Error
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.User{}, "id = ?", id).Error
}

func (r *userRepository) listQuery(ctx context.Context, role models.Role, search string) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&models.User{})
	if role != "" {
		q = q.Where("role = ?", role)
	}
	if search != "" {
		pattern := "%" + search + "%"
		q = q.Where("name ILIKE ? OR email ILIKE ? OR pen_name ILIKE ?", pattern, pattern, pattern)
	}
	return q
}

func (r *userRepository) Find(ctx context.Context, role models.Role, search string, offset, limit int) ([]models.User, error) {
	var users []models.User
	err := r.listQuery(ctx, role, search).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&users).Error
	return users, err
}

func (r *userRepository) Count(ctx context.Context, role models.Role, search string) (int64, error) {
	var total int64
	err := r.listQuery(ctx, role, search).Count(&total).Error
	return total, err
}
