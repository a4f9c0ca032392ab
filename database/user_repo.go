package database

import (
	"context"
	"errors"

	"github.com/blogworks/blogs-backend/errs"
	"github.com/blogworks/blogs-backend/models"
	"gorm.io/gorm"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// FindByCredentials returns the user matching both username and password
// exactly, with the role loaded, or nil when there is no match. The caller
// must not distinguish which of the two fields was wrong.
func (r *UserRepo) FindByCredentials(ctx context.Context, userName, password string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("user_name = ? AND password = ?", userName, password).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("get", "User", err)
	}
	return &user, nil
}

func (r *UserRepo) ExistsByUserName(ctx context.Context, userName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("user_name = ?", userName).
		Count(&count).Error
	if err != nil {
		return false, errs.NewDatabaseError("count", "User", err)
	}
	return count > 0, nil
}

func (r *UserRepo) Add(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return errs.NewDatabaseError("create", "User", err)
	}
	return nil
}
