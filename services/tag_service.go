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

type TagStore interface {
	FindAll(ctx context.Context) ([]*models.Tag, error)
	FindByID(ctx context.Context, id int) (*models.Tag, error)
	ExistsByName(ctx context.Context, name string, excludeID int) (bool, error)
	Add(ctx context.Context, tag *models.Tag) error
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id int) error
}

// TagService mirrors BlogService for the tag entity. Name uniqueness is an
// exact match under the store's collation; "Tech" and "tech" are distinct
// names when the collation is case-sensitive.
type TagService struct {
	tags   TagStore
	logger zerolog.Logger
}

func NewTagService(tags TagStore) TagService {
	logger := log.With().Str("serviceName", "tagService").Logger()
	return TagService{tags: tags, logger: logger}
}

// List returns every tag in response shape, ordered by name.
func (s TagService) List(ctx context.Context) ([]models.TagResponse, error) {
	tags, err := s.tags.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("listing tags failed")
		return nil, err
	}
	responses := make([]models.TagResponse, 0, len(tags))
	for _, tag := range tags {
		responses = append(responses, models.NewTagResponse(tag))
	}
	return responses, nil
}

func (s TagService) Get(ctx context.Context, id int) (*models.TagResponse, error) {
	tag, err := s.tags.FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("tagId", id).Msg("tag lookup failed")
		return nil, err
	}
	if tag == nil {
		return nil, nil
	}
	response := models.NewTagResponse(tag)
	return &response, nil
}

func (s TagService) Create(ctx context.Context, req models.TagCreateRequest) (models.CommandResponse, error) {
	name := strings.TrimSpace(req.Name)

	exists, err := s.tags.ExistsByName(ctx, name, 0)
	if err != nil {
		s.logger.Error().Err(err).Msg("tag name check failed")
		return models.CommandResponse{}, err
	}
	if exists {
		return models.Error("Tag with the same name exists!"), nil
	}

	entity := &models.Tag{
		Guid: uuid.NewString(),
		Name: name,
	}
	if err := s.tags.Add(ctx, entity); err != nil {
		if errs.IsDuplicateKey(err) {
			return models.Error("Tag with the same name exists!"), nil
		}
		s.logger.Error().Err(err).Msg("tag create failed")
		return models.CommandResponse{}, err
	}

	return models.Success("Tag created successfully.", entity.ID), nil
}

func (s TagService) Update(ctx context.Context, req models.TagUpdateRequest) (models.CommandResponse, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return models.Error("Tag name cannot be empty!"), nil
	}

	exists, err := s.tags.ExistsByName(ctx, name, req.Id)
	if err != nil {
		s.logger.Error().Err(err).Msg("tag name check failed")
		return models.CommandResponse{}, err
	}
	if exists {
		return models.Error("Tag with the same name exists!"), nil
	}

	entity, err := s.tags.FindByID(ctx, req.Id)
	if err != nil {
		s.logger.Error().Err(err).Int("tagId", req.Id).Msg("tag lookup failed")
		return models.CommandResponse{}, err
	}
	if entity == nil {
		return models.Error("Tag not found!"), nil
	}

	entity.Name = name

	if err := s.tags.Update(ctx, entity); err != nil {
		if errs.IsDuplicateKey(err) {
			return models.Error("Tag with the same name exists!"), nil
		}
		s.logger.Error().Err(err).Int("tagId", entity.ID).Msg("tag update failed")
		return models.CommandResponse{}, err
	}

	return models.Success("Tag updated successfully.", entity.ID), nil
}

func (s TagService) Delete(ctx context.Context, id int) (models.CommandResponse, error) {
	entity, err := s.tags.FindByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int("tagId", id).Msg("tag lookup failed")
		return models.CommandResponse{}, err
	}
	if entity == nil {
		return models.Error("Tag not found!"), nil
	}

	if err := s.tags.Delete(ctx, id); err != nil {
		s.logger.Error().Err(err).Int("tagId", id).Msg("tag delete failed")
		return models.CommandResponse{}, err
	}

	return models.Success("Tag deleted successfully.", entity.ID), nil
}
