package updateEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/api/response"
	"synergy/internal/lib/logger/sl"
	"synergy/internal/models"
	"synergy/internal/services/event"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Request fields left out of the body are not changed.
type Request struct {
	Name       *string `json:"event_name,omitempty"`
	Points     *int    `json:"points,omitempty" validate:"omitempty,gte=0"`
	Expired    *bool   `json:"expired,omitempty"`
	SecretCode *string `json:"secret_code,omitempty"`
}

type Response struct {
	response.Response
	Event *models.EventView `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventUpdater
type EventUpdater interface {
	Update(ctx context.Context, caller *models.User, eventID string, p event.UpdateParams) (*models.EventView, error)
}

func New(log *slog.Logger, events EventUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.updateEvent.New"

		eventID := chi.URLParam(r, "id")

		log := log.With(
			slog.String("op", op),
			slog.String("event_id", eventID),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		updated, err := events.Update(r.Context(), mwauth.UserFromContext(r.Context()), eventID, event.UpdateParams{
			Name:         req.Name,
			Points:       req.Points,
			Expired:      req.Expired,
			SealedSecret: req.SecretCode,
		})
		if err != nil {
			log.Error("failed to update event", sl.Err(err))
			response.Fail(w, r, err)

			return
		}

		log.Info("event updated")

		render.JSON(w, r, Response{
			Response: response.OK(),
			Event:    updated,
		})
	}
}
