// Package userrepo reads users from the externally managed users table.
// The core never writes users.
package userrepo

import (
	"context"
	"errors"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserDTO maps the columns of the users table the core reads.
type UserDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Role string    `gorm:"type:varchar(32);not null"`
}

func (UserDTO) TableName() string {
	return "users"
}

// GormUserDirectory implements ports.UserDirectory over the users table.
type GormUserDirectory struct {
	db *gorm.DB
}

func NewGormUserDirectory(db *gorm.DB) *GormUserDirectory {
	return &GormUserDirectory{db: db}
}

func (d *GormUserDirectory) Get(ctx context.Context, id kernel.UUID) (ports.User, error) {
	if err := id.Validate(); err != nil {
		return ports.User{}, err
	}

	var dto UserDTO
	err := d.db.WithContext(ctx).
		Table(UserDTO{}.TableName()).
		Select("id", "role").
		Where("id = ?", id.Bytes()).
		Take(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, errs.NewObjectNotFoundError("user", id.String())
		}
		return ports.User{}, err
	}

	role, err := kernel.ParseRole(dto.Role)
	if err != nil {
		return ports.User{}, err
	}

	return ports.User{ID: id, Role: role}, nil
}
