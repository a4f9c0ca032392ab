package models

import (
	"gorm.io/gen"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all entities. The unique
// indexes declared on the models are the backstop for the handlers'
// check-then-create uniqueness validation, so migration must run before
// the server starts serving writes.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Role{},
		&User{},
		&Blog{},
		&Tag{},
		&BlogTag{},
	)
}

// GenerateQueryHelpers regenerates the typed query helpers under
// ./generated. Run via GENERATE_MODELS=true; not part of normal startup.
func GenerateQueryHelpers(db *gorm.DB) {
	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})

	g.UseDB(db)
	g.ApplyBasic(
		Blog{},
		Tag{},
		BlogTag{},
		User{},
		Role{},
	)
	g.Execute()
}
