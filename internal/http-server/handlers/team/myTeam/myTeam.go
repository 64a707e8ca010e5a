package myTeam

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

type Response struct {
	response.Response
	Team *models.Team `json:"team"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TeamFinder
type TeamFinder interface {
	MyTeam(ctx context.Context, caller *models.User) (*models.Team, error)
}

func New(log *slog.Logger, teams TeamFinder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.team.myTeam.New"

		log := log.With(slog.String("op", op))

		team, err := teams.MyTeam(r.Context(), mwauth.UserFromContext(r.Context()))
		if err != nil {
			log.Info("team lookup failed", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Team:     team,
		})
	}
}
