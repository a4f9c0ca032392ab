package database

import (
	"context"
	"errors"

	"github.com/blogworks/blogs-backend/errs"
	"github.com/blogworks/blogs-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BlogRepo struct {
	db *gorm.DB
}

func NewBlogRepo(db *gorm.DB) *BlogRepo {
	return &BlogRepo{db}
}

// FindAll returns every blog with its tags, newest publish date first.
func (r *BlogRepo) FindAll(ctx context.Context) ([]*models.Blog, error) {
	var blogs []*models.Blog
	err := r.db.WithContext(ctx).
		Preload("BlogTags.Tag").
		Order("publish_date DESC").
		Find(&blogs).Error
	if err != nil {
		return nil, errs.NewDatabaseError("list", "Blog", err)
	}
	return blogs, nil
}

// FindByID returns the blog with its tags, or nil when no row exists.
func (r *BlogRepo) FindByID(ctx context.Context, id int) (*models.Blog, error) {
	var blog models.Blog
	err := r.db.WithContext(ctx).
		Preload("BlogTags.Tag").
		First(&blog, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.NewDatabaseError("get", "Blog", err)
	}
	return &blog, nil
}

// ExistsByTitle reports whether a blog other than excludeID already holds
// the exact title. Pass excludeID 0 to check against all rows.
func (r *BlogRepo) ExistsByTitle(ctx context.Context, title string, excludeID int) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&models.Blog{}).Where("title = ?", title)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, errs.NewDatabaseError("count", "Blog", err)
	}
	return count > 0, nil
}

func (r *BlogRepo) Add(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Create(blog).Error; err != nil {
		return errs.NewDatabaseError("create", "Blog", err)
	}
	return nil
}

// Update persists the blog row only; association rows are never written
// through here.
func (r *BlogRepo) Update(ctx context.Context, blog *models.Blog) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(blog).Error; err != nil {
		return errs.NewDatabaseError("update", "Blog", err)
	}
	return nil
}

// Delete removes the blog row; dependent blog_tags rows go with it via the
// store's cascade.
func (r *BlogRepo) Delete(ctx context.Context, id int) error {
	if err := r.db.WithContext(ctx).Delete(&models.Blog{}, id).Error; err != nil {
		return errs.NewDatabaseError("delete", "Blog", err)
	}
	return nil
}
