package removeVolunteer

import (
	"context"
	"log/slog"
	"net/http"

	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/api/response"
	"synergy/internal/lib/logger/sl"
	"synergy/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VolunteerRemover
type VolunteerRemover interface {
	Remove(ctx context.Context, caller *models.User, rollNumber string) error
}

func New(log *slog.Logger, volunteers VolunteerRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.volunteer.removeVolunteer.New"

		roll := chi.URLParam(r, "rollNumber")

		log := log.With(
			slog.String("op", op),
			slog.String("roll_number", roll),
		)

		if err := volunteers.Remove(r.Context(), mwauth.UserFromContext(r.Context()), roll); err != nil {
			log.Error("failed to remove volunteer", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		log.Info("volunteer removed")

		render.JSON(w, r, response.OK())
	}
}
