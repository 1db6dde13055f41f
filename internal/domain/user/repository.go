package user

import (
	"context"
	"time"

	"github.com/handyhub/marketplace-api/internal/models"
)

// Repository abstracts user persistence for the auth surface. Not-found
// reads surface gorm.ErrRecordNotFound, matching the rest of the data
// layer.
type Repository interface {
	Create(
		ctx context.Context,
		u *models.User,
	) error

	Save(
		ctx context.Context,
		u *models.User,
	) error

	GetByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	// GetByResetToken matches the stored (hashed) token against
	// not-yet-expired reset requests only.
	GetByResetToken(
		ctx context.Context,
		hashedToken string,
		now time.Time,
	) (*models.User, error)

	EmailTaken(
		ctx context.Context,
		email string,
	) (bool, error)
}
