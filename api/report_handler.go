package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/blogworks/blogs-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type reportHandler struct {
	responder Responder
	logger    zerolog.Logger
	reports   reportService
}

func newReportHandler(reports reportService) reportHandler {
	logger := log.With().Str("handlerName", "reportHandler").Logger()
	return reportHandler{
		responder: NewResponder(logger),
		logger:    logger,
		reports:   reports,
	}
}

// innerJoin lists one row per blog-tag pair. The pre-paging row count
// travels in the X-Total-Count header so the body stays a plain array.
func (h reportHandler) innerJoin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := h.decodeRequest(w, r)
		if !ok {
			return
		}

		query, err := h.reports.InnerJoin(r.Context(), req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var rows []models.BlogReportInnerJoinRow
		if err := query.Find(&rows); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.Header().Set("X-Total-Count", strconv.FormatInt(query.TotalCount, 10))
		if len(rows) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, rows)
	}
}

// leftJoin keeps blogs without tags; tag columns come back null for those.
func (h reportHandler) leftJoin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := h.decodeRequest(w, r)
		if !ok {
			return
		}

		query, err := h.reports.LeftJoin(r.Context(), req)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var rows []models.BlogReportLeftJoinRow
		if err := query.Find(&rows); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		w.Header().Set("X-Total-Count", strconv.FormatInt(query.TotalCount, 10))
		if len(rows) == 0 {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, rows)
	}
}

func (h reportHandler) decodeRequest(w http.ResponseWriter, r *http.Request) (*models.BlogReportRequest, bool) {
	var req models.BlogReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error().Err(err).Msg("failed to decode report request")
		h.responder.WriteJSON(w, http.StatusBadRequest, models.Error("Malformed request body!"))
		return nil, false
	}

	return &req, true
}
