package profile

import (
	"log/slog"
	"net/http"

	"synergy/internal/access"
	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/api/response"
	"synergy/internal/models"

	"github.com/go-chi/render"
)

type Response struct {
	response.Response
	User *models.User `json:"user"`
}

func New(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.profile.New"

		user := mwauth.UserFromContext(r.Context())
		if err := access.Require(user, access.Anyone...); err != nil {
			log.Debug("anonymous profile request", slog.String("op", op))
			response.Fail(w, r, err)
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			User:     user,
		})
	}
}
