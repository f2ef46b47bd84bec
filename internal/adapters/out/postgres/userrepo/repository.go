// Package userrepo stores users and verifies caller identities against them.
package userrepo

import (
	"context"
	"errors"
	"fmt"

	"zinger/internal/core/domain/model/user"
	"zinger/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrIdentityMismatch is returned when a caller's credentials do not match
// the stored user.
var ErrIdentityMismatch = errors.New("caller identity does not match")

type UserDTO struct {
	Mobile  string `gorm:"type:varchar(20);primaryKey"`
	Name    string `gorm:"type:varchar(128);not null"`
	Email   string `gorm:"type:varchar(128)"`
	OAuthID string `gorm:"column:oauth_id;type:varchar(128);uniqueIndex;not null"`
	Role    string `gorm:"type:varchar(16);not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

// GormUserRepository implements ports.UserRepository and
// ports.IdentityVerifier using GORM.
type GormUserRepository struct {
	db *gorm.DB
}

func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) Get(ctx context.Context, mobile string) (user.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "mobile = ?", mobile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return user.User{}, errs.NewObjectNotFoundError("user", mobile)
		}
		return user.User{}, err
	}

	role, err := user.ParseRole(dto.Role)
	if err != nil {
		return user.User{}, err
	}

	return user.User{
		Mobile:  dto.Mobile,
		Name:    dto.Name,
		Email:   dto.Email,
		OAuthID: dto.OAuthID,
		Role:    role,
	}, nil
}

// Verify accepts the caller only if a user with the caller's mobile exists
// with the same oauth id and role.
func (r *GormUserRepository) Verify(ctx context.Context, caller user.Caller) error {
	u, err := r.Get(ctx, caller.Mobile)
	if err != nil {
		return err
	}

	if u.OAuthID != caller.OAuthID {
		return fmt.Errorf("%w: oauth id", ErrIdentityMismatch)
	}
	if u.Role != caller.Role {
		return fmt.Errorf("%w: role %s", ErrIdentityMismatch, caller.Role)
	}

	return nil
}
