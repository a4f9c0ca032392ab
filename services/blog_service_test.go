package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/blogworks/blogs-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBlogStore is an in-memory BlogStore keyed by id.
type fakeBlogStore struct {
	blogs  map[int]*models.Blog
	nextID int
	err    error
	addErr error
}

func newFakeBlogStore(blogs ...*models.Blog) *fakeBlogStore {
	s := &fakeBlogStore{blogs: map[int]*models.Blog{}, nextID: 1}
	for _, b := range blogs {
		s.blogs[b.ID] = b
		if b.ID >= s.nextID {
			s.nextID = b.ID + 1
		}
	}
	return s
}

func (s *fakeBlogStore) FindAll(_ context.Context) ([]*models.Blog, error) {
	if s.err != nil {
		return nil, s.err
	}
	all := make([]*models.Blog, 0, len(s.blogs))
	for _, b := range s.blogs {
		all = append(all, b)
	}
	return all, nil
}

func (s *fakeBlogStore) FindByID(_ context.Context, id int) (*models.Blog, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.blogs[id], nil
}

func (s *fakeBlogStore) ExistsByTitle(_ context.Context, title string, excludeID int) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, b := range s.blogs {
		if b.Title == title && b.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeBlogStore) Add(_ context.Context, blog *models.Blog) error {
	if s.addErr != nil {
		return s.addErr
	}
	blog.ID = s.nextID
	s.nextID++
	s.blogs[blog.ID] = blog
	return nil
}

func (s *fakeBlogStore) Update(_ context.Context, blog *models.Blog) error {
	s.blogs[blog.ID] = blog
	return nil
}

func (s *fakeBlogStore) Delete(_ context.Context, id int) error {
	delete(s.blogs, id)
	return nil
}

func TestBlogService_Create(t *testing.T) {
	store := newFakeBlogStore()
	service := NewBlogService(store)

	resp, err := service.Create(context.Background(), models.BlogCreateRequest{
		Title:       "  What is Aspire?  ",
		Content:     "An overview.",
		PublishDate: time.Now(),
		UserID:      1,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccessful)
	assert.Equal(t, "Blog created successfully.", resp.Message)
	assert.Equal(t, 1, resp.Id)

	created := store.blogs[1]
	require.NotNil(t, created)
	assert.Equal(t, "What is Aspire?", created.Title, "title should be stored trimmed")
	assert.NotEmpty(t, created.Guid)
}

func TestBlogService_Create_DuplicateTitle(t *testing.T) {
	store := newFakeBlogStore(&models.Blog{ID: 1, Title: "What is Aspire?"})
	service := NewBlogService(store)

	resp, err := service.Create(context.Background(), models.BlogCreateRequest{
		Title:   "What is Aspire?",
		Content: "Again.",
	})
	require.NoError(t, err)
	assert.False(t, resp.IsSuccessful)
	assert.Equal(t, "Blog with the same title exists!", resp.Message)
}

func TestBlogService_Create_DuplicateKeyRace(t *testing.T) {
	store := newFakeBlogStore()
	store.addErr = errors.New(`ERROR: duplicate key value violates unique constraint "idx_blogs_title" (SQLSTATE 23505)`)
	service := NewBlogService(store)

	resp, err := service.Create(context.Background(), models.BlogCreateRequest{
		Title:   "Racy",
		Content: "Body",
	})
	require.NoError(t, err)
	assert.False(t, resp.IsSuccessful)
	assert.Equal(t, "Blog with the same title exists!", resp.Message)
}

func TestBlogService_Update(t *testing.T) {
	store := newFakeBlogStore(&models.Blog{
		ID:      1,
		Guid:    "keep-me",
		Title:   "Old Title",
		Content: "Old content",
		UserID:  9,
	})
	service := NewBlogService(store)

	rating := 4.0
	resp, err := service.Update(context.Background(), models.BlogUpdateRequest{
		Id:      1,
		Title:   "New Title",
		Content: "New content",
		Rating:  &rating,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccessful)
	assert.Equal(t, "Blog updated successfully.", resp.Message)

	updated := store.blogs[1]
	assert.Equal(t, "New Title", updated.Title)
	assert.Equal(t, "New content", updated.Content)
	assert.Equal(t, "keep-me", updated.Guid, "identifier must survive an update")
	assert.Equal(t, 9, updated.UserID, "owner must survive an update")
}

func TestBlogService_Update_Failures(t *testing.T) {
	store := newFakeBlogStore(
		&models.Blog{ID: 1, Title: "First"},
		&models.Blog{ID: 2, Title: "Second"},
	)
	service := NewBlogService(store)
	ctx := context.Background()

	resp, err := service.Update(ctx, models.BlogUpdateRequest{Id: 1, Title: " ", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Title cannot be empty!", resp.Message)

	resp, err = service.Update(ctx, models.BlogUpdateRequest{Id: 1, Title: "First", Content: " "})
	require.NoError(t, err)
	assert.Equal(t, "Content cannot be empty!", resp.Message)

	resp, err = service.Update(ctx, models.BlogUpdateRequest{Id: 1, Title: "Second", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Blog with the same title exists!", resp.Message)

	// keeping its own title is not a conflict
	resp, err = service.Update(ctx, models.BlogUpdateRequest{Id: 1, Title: "First", Content: "x"})
	require.NoError(t, err)
	assert.True(t, resp.IsSuccessful)

	resp, err = service.Update(ctx, models.BlogUpdateRequest{Id: 99, Title: "Missing", Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Blog not found!", resp.Message)
}

func TestBlogService_Delete(t *testing.T) {
	store := newFakeBlogStore(&models.Blog{ID: 1, Title: "First"})
	service := NewBlogService(store)

	resp, err := service.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, resp.IsSuccessful)
	assert.Equal(t, "Blog deleted successfully.", resp.Message)
	assert.Empty(t, store.blogs)

	resp, err = service.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, resp.IsSuccessful)
	assert.Equal(t, "Blog not found!", resp.Message)
}

func TestBlogService_Get(t *testing.T) {
	publish := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	store := newFakeBlogStore(&models.Blog{ID: 1, Title: "First", PublishDate: publish})
	service := NewBlogService(store)

	resp, err := service.Get(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "01.06.2025 10:00", resp.PublishDate)

	resp, err = service.Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestBlogService_StoreFaultIsReturned(t *testing.T) {
	store := newFakeBlogStore()
	store.err = errors.New("connection refused")
	service := NewBlogService(store)

	_, err := service.List(context.Background())
	assert.Error(t, err)

	_, err = service.Create(context.Background(), models.BlogCreateRequest{Title: "T", Content: "C"})
	assert.Error(t, err)
}
