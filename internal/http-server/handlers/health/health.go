package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"synergy/internal/lib/api/response"
	"synergy/internal/lib/logger/sl"

	"github.com/go-chi/render"
)

const pingTimeout = 2 * time.Second

type Response struct {
	response.Response
	Health string `json:"health"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Pinger
type Pinger interface {
	Ping(ctx context.Context) error
}

func New(log *slog.Logger, storage Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.health.New"

		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()

		if err := storage.Ping(ctx); err != nil {
			log.Error("storage ping failed", slog.String("op", op), sl.Err(err))
			render.Status(r, http.StatusServiceUnavailable)
			render.JSON(w, r, Response{
				Response: response.Error("storage unavailable"),
				Health:   "unhealthy",
			})
			return
		}

		render.JSON(w, r, Response{
			Response: response.OK(),
			Health:   "healthy",
		})
	}
}
