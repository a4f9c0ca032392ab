package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/blogworks/blogs-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBlogService scripts the service layer per call.
type fakeBlogService struct {
	list     []models.BlogResponse
	item     *models.BlogResponse
	response models.CommandResponse
	err      error
}

func (f *fakeBlogService) List(context.Context) ([]models.BlogResponse, error) {
	return f.list, f.err
}

func (f *fakeBlogService) Get(context.Context, int) (*models.BlogResponse, error) {
	return f.item, f.err
}

func (f *fakeBlogService) Create(context.Context, models.BlogCreateRequest) (models.CommandResponse, error) {
	return f.response, f.err
}

func (f *fakeBlogService) Update(context.Context, models.BlogUpdateRequest) (models.CommandResponse, error) {
	return f.response, f.err
}

func (f *fakeBlogService) Delete(context.Context, int) (models.CommandResponse, error) {
	return f.response, f.err
}

func blogRouter(service blogService) *chi.Mux {
	h := newBlogHandler(service)
	r := chi.NewRouter()
	r.Get("/blogs", h.getAll())
	r.Get("/blogs/{blogID}", h.get())
	r.Post("/blogs", h.create())
	r.Put("/blogs/{blogID}", h.update())
	r.Delete("/blogs/{blogID}", h.delete())
	return r
}

func TestBlogHandler_GetAll(t *testing.T) {
	t.Run("empty list answers 204", func(t *testing.T) {
		rec := httptest.NewRecorder()
		blogRouter(&fakeBlogService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("non-empty list answers 200", func(t *testing.T) {
		service := &fakeBlogService{list: []models.BlogResponse{{Id: 1, Title: "First"}}}
		rec := httptest.NewRecorder()
		blogRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		var got []models.BlogResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "First", got[0].Title)
	})
}

func TestBlogHandler_Get(t *testing.T) {
	t.Run("unknown id answers 404", func(t *testing.T) {
		rec := httptest.NewRecorder()
		blogRouter(&fakeBlogService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs/42", nil))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Contains(t, rec.Body.String(), "There is no Blog with this id in database!")
	})

	t.Run("non-numeric id answers 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		blogRouter(&fakeBlogService{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs/abc", nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("known id answers 200", func(t *testing.T) {
		service := &fakeBlogService{item: &models.BlogResponse{Id: 42, Title: "Found"}}
		rec := httptest.NewRecorder()
		blogRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs/42", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"title":"Found"`)
	})
}

func TestBlogHandler_Create(t *testing.T) {
	t.Run("malformed body answers 400", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader("{not json"))
		blogRouter(&fakeBlogService{}).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("validation failures are pipe joined", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(`{"title":"","content":""}`))
		blogRouter(&fakeBlogService{}).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Title is required!|Content is required!")
	})

	t.Run("business failure answers 400 with the response", func(t *testing.T) {
		service := &fakeBlogService{response: models.Error("Blog with the same title exists!")}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(`{"title":"Dup","content":"x"}`))
		blogRouter(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Blog with the same title exists!")
	})

	t.Run("success answers 200 with the new id", func(t *testing.T) {
		service := &fakeBlogService{response: models.Success("Blog created successfully.", 7)}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/blogs", strings.NewReader(`{"title":"New","content":"x"}`))
		blogRouter(service).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"id":7`)
	})
}

func TestBlogHandler_Delete(t *testing.T) {
	t.Run("missing row answers 400", func(t *testing.T) {
		service := &fakeBlogService{response: models.Error("Blog not found!")}
		rec := httptest.NewRecorder()
		blogRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/blogs/9", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Blog not found!")
	})

	t.Run("success answers 200", func(t *testing.T) {
		service := &fakeBlogService{response: models.Success("Blog deleted successfully.", 9)}
		rec := httptest.NewRecorder()
		blogRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/blogs/9", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestBlogHandler_UnexpectedFaultAnswers500(t *testing.T) {
	service := &fakeBlogService{err: assert.AnError}
	rec := httptest.NewRecorder()
	blogRouter(service).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "An unexpected error occurred.")
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error(), "internals must not leak")
}
