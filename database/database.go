package database

import (
	"context"

	"gorm.io/gorm"
)

// Database aggregates one repository per entity over a shared GORM
// connection. Repositories are stateless; per-request scoping happens via
// the context passed into every call.
type Database struct {
	db         *gorm.DB
	blogRepo   *BlogRepo
	tagRepo    *TagRepo
	userRepo   *UserRepo
	roleRepo   *RoleRepo
	reportRepo *ReportRepo
}

func New(db *gorm.DB) Database {
	return Database{
		db:         db,
		blogRepo:   NewBlogRepo(db),
		tagRepo:    NewTagRepo(db),
		userRepo:   NewUserRepo(db),
		roleRepo:   NewRoleRepo(db),
		reportRepo: NewReportRepo(db),
	}
}

func (d Database) BlogRepo() *BlogRepo {
	return d.blogRepo
}

func (d Database) TagRepo() *TagRepo {
	return d.tagRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) RoleRepo() *RoleRepo {
	return d.roleRepo
}

func (d Database) ReportRepo() *ReportRepo {
	return d.reportRepo
}

// Transaction runs fn inside a single save point: either every pending
// write commits or none does. Cancelling ctx before commit rolls back.
func (d Database) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return d.db.WithContext(ctx).Transaction(fn)
}
