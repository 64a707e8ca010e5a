package leaderboard

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/api/response"
	"synergy/internal/lib/logger/sl"
	"synergy/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	Leaderboard []models.Standing `json:"leaderboard"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StandingsProvider
type StandingsProvider interface {
	Leaderboard(ctx context.Context, caller *models.User, limit int) ([]models.Standing, error)
}

// New serves the ranking. limit=0 or no limit returns every team.
func New(log *slog.Logger, standings StandingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.leaderboard.New"

		log := log.With(slog.String("op", op))

		limit := 0
		if raw := r.URL.Query().Get("limit"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				log.Info("invalid limit", slog.String("limit", raw))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("invalid limit"))
				return
			}
			limit = n
		}

		list, err := standings.Leaderboard(r.Context(), mwauth.UserFromContext(r.Context()), limit)
		if err != nil {
			log.Error("failed to get leaderboard", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		render.JSON(w, r, Response{
			Response:    response.OK(),
			Leaderboard: list,
		})
	}
}
