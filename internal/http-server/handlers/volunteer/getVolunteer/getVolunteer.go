package getVolunteer

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

type Response struct {
	response.Response
	Volunteer *models.Volunteer `json:"volunteer"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VolunteerGetter
type VolunteerGetter interface {
	Get(ctx context.Context, caller *models.User, rollNumber string) (*models.Volunteer, error)
}

func New(log *slog.Logger, volunteers VolunteerGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.volunteer.getVolunteer.New"

		roll := chi.URLParam(r, "rollNumber")

		log := log.With(
			slog.String("op", op),
			slog.String("roll_number", roll),
		)

		v, err := volunteers.Get(r.Context(), mwauth.UserFromContext(r.Context()), roll)
		if err != nil {
			log.Error("failed to get volunteer", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		render.JSON(w, r, Response{
			Response:  response.OK(),
			Volunteer: v,
		})
	}
}
