package api

import (
	"context"

	"github.com/blogworks/blogs-backend/database"
	"github.com/blogworks/blogs-backend/models"
)

// Handler-facing slices of the service layer. Keeping these as interfaces
// lets handler tests run against in-memory fakes.

type blogService interface {
	List(ctx context.Context) ([]models.BlogResponse, error)
	Get(ctx context.Context, id int) (*models.BlogResponse, error)
	Create(ctx context.Context, req models.BlogCreateRequest) (models.CommandResponse, error)
	Update(ctx context.Context, req models.BlogUpdateRequest) (models.CommandResponse, error)
	Delete(ctx context.Context, id int) (models.CommandResponse, error)
}

type tagService interface {
	List(ctx context.Context) ([]models.TagResponse, error)
	Get(ctx context.Context, id int) (*models.TagResponse, error)
	Create(ctx context.Context, req models.TagCreateRequest) (models.CommandResponse, error)
	Update(ctx context.Context, req models.TagUpdateRequest) (models.CommandResponse, error)
	Delete(ctx context.Context, id int) (models.CommandResponse, error)
}

type reportService interface {
	InnerJoin(ctx context.Context, req *models.BlogReportRequest) (*database.ReportQuery, error)
	LeftJoin(ctx context.Context, req *models.BlogReportRequest) (*database.ReportQuery, error)
}

type authService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.CommandResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (models.CommandResponse, error)
}

type seeder interface {
	Seed(ctx context.Context) error
}

// routeHandlers bundles one handler per route family.
type routeHandlers struct {
	blogHandler     blogHandler
	tagHandler      tagHandler
	reportHandler   reportHandler
	authHandler     authHandler
	databaseHandler databaseHandler
}
