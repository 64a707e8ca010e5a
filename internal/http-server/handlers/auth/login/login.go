package login

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	StateCookie = "oauth_state"
	stateTTL    = 10 * time.Minute
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AuthURLProvider
type AuthURLProvider interface {
	AuthCodeURL(state string) string
}

// New starts the organization sign-in. The random state is echoed back by the
// provider and checked against the cookie set here.
func New(log *slog.Logger, provider AuthURLProvider, secure bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		state := uuid.NewString()

		http.SetCookie(w, &http.Cookie{
			Name:     StateCookie,
			Value:    state,
			Path:     "/",
			MaxAge:   int(stateTTL.Seconds()),
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})

		log.Debug("redirecting to identity provider", slog.String("op", op))

		http.Redirect(w, r, provider.AuthCodeURL(state), http.StatusFound)
	}
}
