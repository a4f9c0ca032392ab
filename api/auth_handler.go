package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/blogworks/blogs-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	auth      authService
}

func newAuthHandler(auth authService) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()
	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		auth:      auth,
	}
}

// login answers 401 on any credential failure. The message stays the same
// for a wrong name and a wrong password so accounts cannot be enumerated.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("failed to decode login request")
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error("Malformed request body!"))
			return
		}

		if messages := req.Validate(); len(messages) > 0 {
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error(strings.Join(messages, "|")))
			return
		}

		response, err := h.auth.Login(r.Context(), req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if !response.IsSuccessful {
			h.responder.WriteJSON(w, http.StatusUnauthorized, response)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, response)
	}
}

func (h authHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("failed to decode register request")
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error("Malformed request body!"))
			return
		}

		if messages := req.Validate(); len(messages) > 0 {
			h.responder.WriteJSON(w, http.StatusBadRequest, models.Error(strings.Join(messages, "|")))
			return
		}

		response, err := h.auth.Register(r.Context(), req)
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
