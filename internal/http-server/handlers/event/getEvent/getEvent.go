package getEvent

import (
	"context"
	"log/slog"
	"net/http"

	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/api/response"
	"synergy/internal/lib/logger/sl"
	"synergy/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type EventResponse struct {
	response.Response
	Event *models.EventView `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventGetter
type EventGetter interface {
	Get(ctx context.Context, caller *models.User, eventID string) (*models.EventView, error)
}

func New(log *slog.Logger, events EventGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getEvent.New"

		log := log.With(slog.String("op", op))

		eventID := chi.URLParam(r, "id")
		if eventID == "" {
			log.Error("event id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("event id is required"))
			return
		}

		log = log.With(slog.String("event_id", eventID))

		ev, err := events.Get(r.Context(), mwauth.UserFromContext(r.Context()), eventID)
		if err != nil {
			log.Error("failed to get event", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		log.Info("event retrieved")

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			Event:    ev,
		})
	}
}
