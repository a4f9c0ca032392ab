package api

import (
	"net/http"

	"github.com/blogworks/blogs-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type databaseHandler struct {
	responder Responder
	logger    zerolog.Logger
	db        seeder
}

func newDatabaseHandler(db seeder) databaseHandler {
	logger := log.With().Str("handlerName", "databaseHandler").Logger()
	return databaseHandler{
		responder: NewResponder(logger),
		logger:    logger,
		db:        db,
	}
}

// seed resets the blog and tag tables to the demo data set. Users and
// roles are kept so existing tokens stay valid.
func (h databaseHandler) seed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.db.Seed(r.Context()); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, http.StatusOK, models.Success("Database seed completed successfully.", 0))
	}
}
