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

type tagHandler struct {
	responder Responder
	logger    zerolog.Logger
	tags      tagService
}

func newTagHandler(tags tagService) tagHandler {
	logger := log.With().Str("handlerName", "tagHandler").Logger()
	return tagHandler{
		responder: NewResponder(logger),
		logger:    logger,
		tags:      tags,
	}
}

func (h tagHandler) getAll() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tags, err := h.tags.List(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if len(tags) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, tags)
	}
}

func (h tagHandler) get() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "tagID"))
		if err != nil {
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error("Invalid tag id!"))
			return
		}

		tag, err := h.tags.Get(r.Context(), id)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if tag == nil {
			h.responder.WriteJSON(w, http.StatusNotFound, models.Error("There is no Tag with this id in database!"))
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, tag)
	}
}

func (h tagHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.TagCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("failed to decode tag create request")
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error("Malformed request body!"))
			return
		}

		if messages := req.Validate(); len(messages) > 0 {
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error(strings.Join(messages, "|")))
			return
		}

		response, err := h.tags.Create(r.Context(), req)
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

func (h tagHandler) update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "tagID"))
		if err != nil {
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error("Invalid tag id!"))
			return
		}

		var req models.TagUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("failed to decode tag update request")
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error("Malformed request body!"))
			return
		}

		req.Id = id
		if messages := req.Validate(); len(messages) > 0 {
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error(strings.Join(messages, "|")))
			return
		}

		response, err := h.tags.Update(r.Context(), req)
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

func (h tagHandler) delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "tagID"))
		if err != nil {
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error("Invalid tag id!"))
			return
		}

		response, err := h.tags.Delete(r.Context(), id)
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
