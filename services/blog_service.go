package services

import (
	"context"
	"strings"

	"github.com/blogworks/blogs-backend/errs"
	"github.com/blogworks/blogs-backend/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// BlogStore is the slice of the blog repository the service needs.
type BlogStore interface {
	FindAll(ctx context.Context) ([]*models.Blog, error)
	FindByID(ctx context.Context, id int) (*models.Blog, error)
	ExistsByTitle(ctx context.Context, title string, excludeID int) (bool, error)
	Add(ctx context.Context, blog *models.Blog) error
	Update(ctx context.Context, blog *models.Blog) error
	Delete(ctx context.Context, id int) error
}

// BlogService owns the blog write rules: trimmed unique titles, whitelisted
// update fields, existence checks before delete. Business failures come
// back as an unsuccessful CommandResponse; only unexpected store faults
// are returned as an error.
type BlogService struct {
	blogs      BlogStore
	logger     zerolog.Logger
	dateLayout string
}

func NewBlogService(blogs BlogStore) BlogService {
	logger := log.With().Str("serviceName", "blogService").Logger()
	return BlogService{
		blogs:      blogs,
		logger:     logger,
		dateLayout: models.DefaultDateLayout,
	}
}

// List returns every blog in response shape, newest publish date first,
// with the nested tag list resolved through the join rows.
func (s BlogService) List(ctx context.Context) ([]models.BlogResponse, error) {
	blogs, err := s.blogs.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("listing blogs failed")
		return nil, err
	}
	responses := make([]models.BlogResponse, 0, len(blogs))
	for _, blog := range blogs {
		responses = append(responses, models.NewBlogResponse(blog, s.dateLayout))
	}
	return responses, nil
}

// Get returns one blog in response shape, or nil when the id is unknown.
func (s BlogService) Get(ctx context.Context, id int) (*models.BlogResponse, error) {
	blog, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("blogId", id).Msg("blog lookup failed")
		return nil, err
	}
	if blog == nil {
		return nil, nil
	}
	response := models.NewBlogResponse(blog, s.dateLayout)
	return &response, nil
}

func (s BlogService) Create(ctx context.Context, req models.BlogCreateRequest) (models.CommandResponse, error) {
	title := strings.TrimSpace(req.Title)

	exists, err := s.blogs.ExistsByTitle(ctx, title, 0)
	if err != nil {
		s.logger.Error().Err(err).Msg("blog title check failed")
		return models.CommandResponse{}, err
	}
	if exists {
		return models.Error("Blog with the same title exists!"), nil
	}

	entity := &models.Blog{
		Guid:        uuid.NewString(),
		Title:       title,
		Content:     req.Content,
		Rating:      req.Rating,
		PublishDate: req.PublishDate,
		UserID:      req.UserID,
	}
	if err := s.blogs.Add(ctx, entity); err != nil {
		// the pre-check is only an optimization; a concurrent create can
		// still lose the race and hit the unique index
		if errs.IsDuplicateKey(err) {
			return models.Error("Blog with the same title exists!"), nil
		}
		s.logger.Error().Err(err).Msg("blog create failed")
		return models.CommandResponse{}, err
	}

	return models.Success("Blog created successfully.", entity.ID), nil
}

func (s BlogService) Update(ctx context.Context, req models.BlogUpdateRequest) (models.CommandResponse, error) {
	if strings.TrimSpace(req.Title) == "" {
		return models.Error("Title cannot be empty!"), nil
	}
	if strings.TrimSpace(req.Content) == "" {
		return models.Error("Content cannot be empty!"), nil
	}

	title := strings.TrimSpace(req.Title)
	exists, err := s.blogs.ExistsByTitle(ctx, title, req.Id)
	if err != nil {
		s.logger.Error().Err(err).Msg("blog title check failed")
		return models.CommandResponse{}, err
	}
	if exists {
		return models.Error("Blog with the same title exists!"), nil
	}

	entity, err := s.blogs.FindByID(ctx, req.Id)
	if err != nil {
		s.logger.Error().Err(err).Int("blogId", req.Id).Msg("blog lookup failed")
		return models.CommandResponse{}, err
	}
	if entity == nil {
		return models.Error("Blog not found!"), nil
	}

	// id and opaque identifier are never touched, and content is stored
	// as sent since it may carry markup
	entity.Title = title
	entity.Content = req.Content
	entity.Rating = req.Rating

	if err := s.blogs.Update(ctx, entity); err != nil {
		if errs.IsDuplicateKey(err) {
			return models.Error("Blog with the same title exists!"), nil
		}
		s.logger.Error().Err(err).Int("blogId", entity.ID).Msg("blog update failed")
		return models.CommandResponse{}, err
	}

	return models.Success("Blog updated successfully.", entity.ID), nil
}

func (s BlogService) Delete(ctx context.Context, id int) (models.CommandResponse, error) {
	entity, err := s.blogs.FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("blogId", id).Msg("blog lookup failed")
		return models.CommandResponse{}, err
	}
	if entity == nil {
		return models.Error("Blog not found!"), nil
	}

	if err := s.blogs.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int("blogId", id).Msg("blog delete failed")
		return models.CommandResponse{}, err
	}

	return models.Success("Blog deleted successfully.", entity.ID), nil
}
