package leaveTeam

import (
	"context"
	"fmt"
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
	Message string `json:"message"`
	TeamID  string `json:"team_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TeamLeaver
type TeamLeaver interface {
	Leave(ctx context.Context, caller *models.User) (*models.Team, error)
}

func New(log *slog.Logger, teams TeamLeaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.team.leaveTeam.New"

		log := log.With(slog.String("op", op))

		team, err := teams.Leave(r.Context(), mwauth.UserFromContext(r.Context()))
		if err != nil {
			log.Error("failed to leave team", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		log.Info("left team", slog.String("team_id", team.ID))

		render.JSON(w, r, Response{
			Response: response.OK(),
			Message:  fmt.Sprintf("left team '%s'", team.Name),
			TeamID:   team.ID,
		})
	}
}
