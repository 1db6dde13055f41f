package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	domainuser "github.com/handyhub/marketplace-api/internal/domain/user"
	"github.com/handyhub/marketplace-api/internal/models"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) Create(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserGormRepository) Save(
	ctx context.Context,
	u *models.User,
) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *UserGormRepository) GetByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) GetByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) GetByResetToken(
	ctx context.Context,
	hashedToken string,
	now time.Time,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("reset_password_token = ? AND reset_password_expires > ?", hashedToken, now).
		First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserGormRepository) EmailTaken(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Compile-time check
var _ domainuser.Repository = (*UserGormRepository)(nil)
