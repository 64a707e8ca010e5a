package getAllEvents

import (
	"context"
	"log/slog"
	"net/http"

	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/api/response"
	"synergy/internal/lib/logger/sl"
	"synergy/internal/models"

	"github.com/go-chi/render"
)

type EventsResponse struct {
	response.Response
	Events []models.EventView `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventLister
type EventLister interface {
	List(ctx context.Context, caller *models.User) ([]models.EventView, error)
}

func New(log *slog.Logger, events EventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(slog.String("op", op))

		list, err := events.List(r.Context(), mwauth.UserFromContext(r.Context()))
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(list)))

		responseOK(w, r, list)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, events []models.EventView) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
