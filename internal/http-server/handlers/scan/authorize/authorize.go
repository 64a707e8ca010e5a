package authorize

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
	EventID    string `json:"event_id" validate:"required"`
	SecretCode string `json:"secret_code" validate:"required"`
}

type Response struct {
	response.Response
	*models.Authorization
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authorizer
type Authorizer interface {
	Authorize(ctx context.Context, caller *models.User, eventID, secretCode string) (*models.Authorization, error)
}

func New(log *slog.Logger, authorizer Authorizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.scan.authorize.New"

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

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		log = log.With(slog.String("event_id", req.EventID))

		auth, err := authorizer.Authorize(r.Context(), mwauth.UserFromContext(r.Context()), req.EventID, req.SecretCode)
		if err != nil {
			log.Error("volunteer authorization failed", sl.Err(err))
			response.Fail(w, r, err)

			return
		}

		log.Info("volunteer authorized", slog.String("volunteer", auth.VolunteerEmail))

		render.JSON(w, r, Response{
			Response:      response.OK(),
			Authorization: auth,
		})
	}
}
