package api

import (
	"github.com/blogworks/blogs-backend/database"
	"github.com/blogworks/blogs-backend/services"
)

// initializeHandlers wires the service layer onto its HTTP handlers.
func initializeHandlers(db database.Database, tokens services.TokenConfig) *routeHandlers {
	return &routeHandlers{
		blogHandler:     newBlogHandler(services.NewBlogService(db.BlogRepo())),
		tagHandler:      newTagHandler(services.NewTagService(db.TagRepo())),
		reportHandler:   newReportHandler(services.NewReportService(db.ReportRepo())),
		authHandler:     newAuthHandler(services.NewAuthService(db.UserRepo(), db.RoleRepo(), tokens)),
		databaseHandler: newDatabaseHandler(db),
	}
}
