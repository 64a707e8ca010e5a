package listVolunteers

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
	Volunteers []models.Volunteer `json:"volunteers"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VolunteerLister
type VolunteerLister interface {
	List(ctx context.Context, caller *models.User) ([]models.Volunteer, error)
}

func New(log *slog.Logger, volunteers VolunteerLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.volunteer.listVolunteers.New"

		log := log.With(slog.String("op", op))

		list, err := volunteers.List(r.Context(), mwauth.UserFromContext(r.Context()))
		if err != nil {
			log.Error("failed to get volunteers", sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		log.Info("volunteers retrieved", slog.Int("count", len(list)))

		render.JSON(w, r, Response{
			Response:   response.OK(),
			Volunteers: list,
		})
	}
}
