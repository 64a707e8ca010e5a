package callback

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"synergy/internal/http-server/handlers/auth/login"
	"synergy/internal/lib/api/response"
	"synergy/internal/lib/apperr"
	"synergy/internal/lib/logger/sl"
	"synergy/internal/models"

	"github.com/go-chi/render"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=IdentityExchanger
type IdentityExchanger interface {
	Exchange(ctx context.Context, code string) (*models.Identity, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=RoleResolver
type RoleResolver interface {
	Resolve(ctx context.Context, id models.Identity) (*models.User, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionCreator
type SessionCreator interface {
	Create(ctx context.Context, user models.User) (string, error)
}

type Options struct {
	SessionCookie string
	SessionTTL    time.Duration
	Secure        bool
	FrontendURL   string
}

// New completes the sign-in: it checks the state, exchanges the code, resolves
// the role and opens a session before sending the browser to the dashboard.
func New(
	log *slog.Logger,
	idp IdentityExchanger,
	roles RoleResolver,
	sessions SessionCreator,
	opts Options,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.callback.New"

		log := log.With(slog.String("op", op))

		state, err := r.Cookie(login.StateCookie)
		if err != nil || state.Value == "" || state.Value != r.URL.Query().Get("state") {
			log.Warn("oauth state mismatch")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("invalid oauth state"))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     login.StateCookie,
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   opts.Secure,
		})

		code := r.URL.Query().Get("code")
		if code == "" {
			log.Warn("authorization code missing", slog.String("error", r.URL.Query().Get("error")))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("missing authorization code"))
			return
		}

		identity, err := idp.Exchange(r.Context(), code)
		if err != nil {
			log.Error("code exchange failed", sl.Err(err))
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("authentication failed"))
			return
		}

		user, err := roles.Resolve(r.Context(), *identity)
		if err != nil {
			log.Warn("login rejected", slog.String("email", identity.Email), sl.Err(err))
			response.Fail(w, r, err)
			return
		}

		sessionID, err := sessions.Create(r.Context(), *user)
		if err != nil {
			log.Error("failed to create session", sl.Err(err))
			response.Fail(w, r, apperr.Wrap(apperr.Unavailable, "failed to create session", err))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     opts.SessionCookie,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   int(opts.SessionTTL.Seconds()),
			HttpOnly: true,
			Secure:   opts.Secure,
			SameSite: http.SameSiteLaxMode,
		})

		log.Info("user logged in", slog.String("email", user.Email), slog.String("role", string(user.Role)))

		http.Redirect(w, r, strings.TrimRight(opts.FrontendURL, "/")+"/dashboard", http.StatusFound)
	}
}
