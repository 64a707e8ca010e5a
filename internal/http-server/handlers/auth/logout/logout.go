package logout

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"synergy/internal/lib/logger/sl"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionDeleter
type SessionDeleter interface {
	Delete(ctx context.Context, id string) error
}

// New ends the session. The cookie is cleared even if the store delete fails;
// the entry then expires on its own TTL.
func New(log *slog.Logger, sessions SessionDeleter, cookieName string, secure bool, frontendURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log := log.With(slog.String("op", op))

		if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
			if err = sessions.Delete(r.Context(), c.Value); err != nil {
				log.Warn("failed to delete session", sl.Err(err))
			}
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})

		http.Redirect(w, r, strings.TrimRight(frontendURL, "/")+"/", http.StatusFound)
	}
}
