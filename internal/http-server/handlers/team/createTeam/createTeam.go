package createTeam

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
	TeamName string `json:"team_name" validate:"required,max=50"`
}

type Response struct {
	response.Response
	Team *models.Team `json:"team"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TeamCreator
type TeamCreator interface {
	Create(ctx context.Context, caller *models.User, name string) (*models.Team, error)
}

func New(log *slog.Logger, teams TeamCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.team.createTeam.New"

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

		team, err := teams.Create(r.Context(), mwauth.UserFromContext(r.Context()), req.TeamName)
		if err != nil {
			log.Error("failed to create team", sl.Err(err))
			response.Fail(w, r, err)

			return
		}

		log.Info("team created", slog.String("team_id", team.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, Response{
			Response: response.OK(),
			Team:     team,
		})
	}
}
