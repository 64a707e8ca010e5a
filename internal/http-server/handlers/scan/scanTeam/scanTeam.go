package scanTeam

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/api/response"
	"synergy/internal/lib/logger/sl"
	"synergy/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Request.TeamID is whatever the team QR encodes: a team id or a QR id.
type Request struct {
	TeamID  string `json:"team_id" validate:"required"`
	EventID string `json:"event_id,omitempty"`
}

type Response struct {
	response.Response
	*models.ScanResult
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Scanner
type Scanner interface {
	Scan(ctx context.Context, caller *models.User, rawToken, teamRef, eventID string) (*models.ScanResult, error)
}

func New(log *slog.Logger, scanner Scanner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.scan.scanTeam.New"

		log := log.With(
			slog.String("op", op),
		)

		token, ok := bearerToken(r)
		if !ok {
			log.Info("missing bearer token")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("missing event token"))

			return
		}

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

		log = log.With(slog.String("team_ref", req.TeamID))

		res, err := scanner.Scan(r.Context(), mwauth.UserFromContext(r.Context()), token, req.TeamID, req.EventID)
		if err != nil {
			log.Error("scan rejected", sl.Err(err))
			response.Fail(w, r, err)

			return
		}

		log.Info("team scanned", slog.String("event_id", res.EventID), slog.Int("team_points", res.TeamPoints))

		render.JSON(w, r, Response{
			Response:   response.OK(),
			ScanResult: res,
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "bearer "

	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return "", false
	}

	token := strings.TrimSpace(h[len(prefix):])

	return token, token != ""
}
