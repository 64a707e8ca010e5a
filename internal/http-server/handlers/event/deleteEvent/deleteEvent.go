package deleteEvent

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventDeleter
type EventDeleter interface {
	Delete(ctx context.Context, caller *models.User, eventID string) error
}

func New(log *slog.Logger, events EventDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.deleteEvent.New"

		eventID := chi.URLParam(r, "id")

		log := log.With(
			slog.String("op", op),
			slog.String("event_id", eventID),
		)

		if err := events.Delete(r.Context(), mwauth.UserFromContext(r.Context()), eventID); err != nil {
			log.Error("failed to delete event", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		log.Info("event deleted")

		render.JSON(w, r, response.OK())
	}
}
