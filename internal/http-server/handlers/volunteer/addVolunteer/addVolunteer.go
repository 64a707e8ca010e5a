package addVolunteer

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/api/response"
	"synergy/internal/lib/logger/sl"
	"synergy/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type Request struct {
	RollNumber string `json:"rollNumber" validate:"required"`
	Name       string `json:"name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
}

type Response struct {
	response.Response
	Volunteer *models.Volunteer `json:"volunteer"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VolunteerAdder
type VolunteerAdder interface {
	Add(ctx context.Context, caller *models.User, v models.Volunteer) (*models.Volunteer, error)
}

func New(log *slog.Logger, volunteers VolunteerAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.volunteer.addVolunteer.New"

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

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		added, err := volunteers.Add(r.Context(), mwauth.UserFromContext(r.Context()), models.Volunteer{
			RollNumber: req.RollNumber,
			Name:       req.Name,
			Email:      req.Email,
		})
		if err != nil {
			log.Error("failed to add volunteer", sl.Err(err))
			response.Fail(w, r, err)

			return
		}

		log.Info("volunteer added", slog.String("roll_number", added.RollNumber))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response:  response.OK(),
			Volunteer: added,
		})
	}
}
