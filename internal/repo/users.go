package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Skotchmaster/marketplace/internal/apperr"
	"github.com/Skotchmaster/marketplace/internal/models"
)

// CreateUser relies on the unique index on email instead of a prior SELECT,
// so two concurrent registrations cannot both slip past a duplicate check.
func (r *GormRepo) CreateUser(ctx context.Context, user *models.User) error {
	if err := r.DB.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *GormRepo) UserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.DB.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *GormRepo) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.DB.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// BanUser refuses to touch admin accounts; the role guard lives in the WHERE
// clause so existence and privilege are checked in one statement.
func (r *GormRepo) BanUser(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND role <> ?", id, models.RoleAdmin).
		Update("status", models.StatusBanned)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrCannotBanUser
	}
	return nil
}

func (r *GormRepo) UnbanUser(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("status", models.StatusActive)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.ErrUserNotFound
	}
	return nil
}
