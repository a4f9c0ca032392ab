package database

import (
	"context"
	"errors"

	"github.com/blogworks/blogs-backend/errs"
	"github.com/blogworks/blogs-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepo struct {
	db *gorm.DB
}

func NewTagRepo(db *gorm.DB) *TagRepo {
	return &TagRepo{db}
}

// FindAll returns every tag ordered by name ascending.
func (r *TagRepo) FindAll(ctx context.Context) ([]*models.Tag, error) {
	var tags []*models.Tag
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&tags).Error; err != nil {
		return nil, errs.NewDatabaseError("list", "Tag", err)
	}
	return tags, nil
}

func (r *TagRepo) FindByID(ctx context.Context, id int) (*models.Tag, error) {
	var tag models.Tag
	err := r.db.WithContext(ctx).First(&tag, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("get", "Tag", err)
	}
	return &tag, nil
}

// ExistsByName reports whether a tag other than excludeID already holds
// the exact name. The comparison is store-collation exact, not folded.
func (r *TagRepo) ExistsByName(ctx context.Context, name string, excludeID int) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Tag{}).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, errs.NewDatabaseError("count", "Tag", err)
	}
	return count > 0, nil
}

func (r *TagRepo) Add(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return errs.NewDatabaseError("create", "Tag", err)
	}
	return nil
}

func (r *TagRepo) Update(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(tag).Error; err != nil {
		return errs.NewDatabaseError("update", "Tag", err)
	}
	return nil
}

func (r *TagRepo) Delete(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).Delete(&models.Tag{}, id).Error; err != nil {
		return errs.NewDatabaseError("delete", "Tag", err)
	}
	return nil
}
