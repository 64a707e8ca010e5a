package createEvent

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

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Request.SecretCode arrives sealed with the shared transport key.
type Request struct {
	Name       string `json:"event_name" validate:"required"`
	Points     int    `json:"points" validate:"gte=0"`
	SecretCode string `json:"secret_code" validate:"required"`
}

type Response struct {
	response.Response
	Event *models.EventView `json:"event"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	Create(ctx context.Context, caller *models.User, p event.CreateParams) (*models.EventView, error)
}

func New(log *slog.Logger, events EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(
			slog.String("op", op),
		)

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.String("event_name", req.Name), slog.Int("points", req.Points))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		created, err := events.Create(r.Context(), mwauth.UserFromContext(r.Context()), event.CreateParams{
			Name:         req.Name,
			Points:       req.Points,
			SealedSecret: req.SecretCode,
		})
		if err != nil {
			log.Error("failed to add event", sl.Err(err))
			response.Fail(w, r, err)

			return
		}

		log.Info("event added", slog.String("event_id", created.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Event:    created,
		})
	}
}
