package database

import (
	"context"
	"time"

	"github.com/blogworks/blogs-backend/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seed resets the blog data and inserts a small, known data set, creating
// the Admin/User roles and a default admin account when absent. Everything
// runs in one transaction so a failed seed leaves the store untouched.
func (d Database) Seed(ctx context.Context) error {
	return d.Transaction(ctx, func(tx *gorm.DB) error {
		for _, model := range []any{&models.BlogTag{}, &models.Tag{}, &models.Blog{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		adminRole, err := ensureRole(tx, "Admin")
		if err != nil {
			return err
		}
		if _, err := ensureRole(tx, "User"); err != nil {
			return err
		}

		var adminCount int64
		if err := tx.Model(&models.User{}).Where("user_name = ?", "admin").Count(&adminCount).Error; err != nil {
			return err
		}
		if adminCount == 0 {
			admin := models.User{
				Guid:     uuid.NewString(),
				UserName: "admin",
				Password: "admin",
				IsActive: true,
				RoleID:   adminRole.ID,
			}
			if err := tx.Create(&admin).Error; err != nil {
				return err
			}
		}

		tags := []models.Tag{
			{Guid: uuid.NewString(), Name: "Technology"},
			{Guid: uuid.NewString(), Name: "Software"},
			{Guid: uuid.NewString(), Name: "Life"},
			{Guid: uuid.NewString(), Name: "Sports"},
		}
		if err := tx.Create(&tags).Error; err != nil {
			return err
		}

		now := time.Now()
		rating := func(v float64) *float64 { return &v }
		blogs := []models.Blog{
			{
				Guid:        uuid.NewString(),
				Title:       "What is Aspire?",
				Content:     "Aspire is a new cloud stack...",
				Rating:      rating(5),
				PublishDate: now,
				UserID:      1,
			},
			{
				Guid:        uuid.NewString(),
				Title:       "Programming Lessons",
				Content:     "Learning to program is a lot of fun...",
				Rating:      rating(4.5),
				PublishDate: now.AddDate(0, 0, -2),
				UserID:      1,
			},
			{
				Guid:        uuid.NewString(),
				Title:       "Travel Notes",
				Content:     "Today I explored the city...",
				Rating:      rating(3),
				PublishDate: now.AddDate(0, 0, -5),
				UserID:      2,
			},
		}
		if err := tx.Create(&blogs).Error; err != nil {
			return err
		}

		edges := []models.BlogTag{
			{BlogID: blogs[0].ID, TagID: tags[0].ID},
			{BlogID: blogs[0].ID, TagID: tags[1].ID},
			{BlogID: blogs[1].ID, TagID: tags[1].ID},
			{BlogID: blogs[2].ID, TagID: tags[2].ID},
		}
		return tx.Create(&edges).Error
	})
}

func ensureRole(tx *gorm.DB, name string) (*models.Role, error) {
	role := models.Role{Name: name}
	err := tx.Where("name = ?", name).
		Attrs(models.Role{Guid: uuid.NewString()}).
		FirstOrCreate(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}
