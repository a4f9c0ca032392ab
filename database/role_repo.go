package database

import (
	"context"
	"errors"

	"github.com/blogworks/blogs-backend/errs"
	"github.com/blogworks/blogs-backend/models"
	"gorm.io/gorm"
)

type RoleRepo struct {
	db *gorm.DB
}

func NewRoleRepo(db *gorm.DB) *RoleRepo {
	return &RoleRepo{db}
}

// FindByName returns the first role with the given name, or nil when the
// role does not exist.
func (r *RoleRepo) FindByName(ctx context.Context, name string) (*models.Role, error) {
	var role models.Role
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("get", "Role", err)
	}
	return &role, nil
}

func (r *RoleRepo) Add(ctx context.Context, role *models.Role) error {
	if err := r.db.WithContext(ctx).Create(role).Error; err != nil {
		return errs.NewDatabaseError("create", "Role", err)
	}
	return nil
}
