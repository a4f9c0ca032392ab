package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/blogworks/blogs-backend/errs"
	"github.com/blogworks/blogs-backend/models"
	"github.com/rs/zerolog"
)

type Responder struct {
	logger zerolog.Logger
}

func NewResponder(logger zerolog.Logger) Responder {
	return Responder{logger}
}

func (r Responder) WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error().Err(err).Msg("error marshaling response data")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(jsonData); err != nil {
		r.logger.Error().Err(err).Msg("error writing response")
	}
}

// WriteError maps an ApiErr to its status code and message. Anything else
// is an unexpected fault: it is logged in full and answered with a fixed
// generic message so internals never leak.
func (r Responder) WriteError(w http.ResponseWriter, err error) {
	var apiErr *errs.ApiErr
	if !errors.As(err, &apiErr) {
		r.logger.Error().Err(err).Msg("unhandled error")
		r.WriteJSON(w, http.StatusInternalServerError, models.Error("An unexpected error occurred."))
		return
	}

	r.WriteJSON(w, apiErr.StatusCode, models.Error(apiErr.Error()))
}
