package joinTeam

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
	JoinCode string `json:"join_code" validate:"required"`
}

type Response struct {
	response.Response
	Team *models.Team `json:"team"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TeamJoiner
type TeamJoiner interface {
	JoinByCode(ctx context.Context, caller *models.User, joinCode string) (*models.Team, error)
}

func New(log *slog.Logger, teams TeamJoiner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.team.joinTeam.New"

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

		team, err := teams.JoinByCode(r.Context(), mwauth.UserFromContext(r.Context()), req.JoinCode)
		if err != nil {
			log.Error("failed to join team", sl.Err(err))
			response.Fail(w, r, err)

			return
		}

		log.Info("joined team", slog.String("team_id", team.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Team:     team,
		})
	}
}
