package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/blogworks/blogs-backend/models"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type blogHandler struct {
	responder Responder
	logger    zerolog.Logger
	blogs     blogService
}

func newBlogHandler(blogs blogService) blogHandler {
	logger := log.With().Str("handlerName", "blogHandler").Logger()
	return blogHandler{
		responder: NewResponder(logger),
		logger:    logger,
		blogs:     blogs,
	}
}

// getAll returns every blog with its tags; 204 when there are none.
func (h blogHandler) getAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blogs, err := h.blogs.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if len(blogs) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, blogs)
	}
}

func (h blogHandler) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error("Invalid blog id!"))
			return
		}

		blog, err := h.blogs.Get(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if blog == nil {
			h.responder.WriteJSON(w, http.StatusNotFound, models.Error("There is no Blog with this id in database!"))
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, blog)
	}
}

func (h blogHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.BlogCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("failed to decode blog create request")
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error("Malformed request body!"))
			return
		}

		if messages := req.Validate(); len(messages) > 0 {
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error(strings.Join(messages, "|")))
			return
		}

		response, err := h.blogs.Create(r.Context(), req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !response.IsSuccessful {
			h.responder.WriteJSON(w, http.StatusBadRequest, response)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, response)
	}
}

func (h blogHandler) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error("Invalid blog id!"))
			return
		}

		var req models.BlogUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("failed to decode blog update request")
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error("Malformed request body!"))
			return
		}

		req.Id = id
		if messages := req.Validate(); len(messages) > 0 {
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error(strings.Join(messages, "|")))
			return
		}

		response, err := h.blogs.Update(r.Context(), req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !response.IsSuccessful {
			h.responder.WriteJSON(w, http.StatusBadRequest, response)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, response)
	}
}

// delete answers 400 for a missing row; only the single read uses 404.
func (h blogHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "blogID"))
		if err != nil {
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error("Invalid blog id!"))
			return
		}

		response, err := h.blogs.Delete(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !response.IsSuccessful {
			h.responder.WriteJSON(w, http.StatusBadRequest, response)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, response)
	}
}
