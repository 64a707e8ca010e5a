// Package mwauth resolves the session cookie into the caller and guards
// routes by role.
package mwauth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"synergy/internal/access"
	"synergy/internal/lib/api/response"
	"synergy/internal/lib/apperr"
	"synergy/internal/lib/logger/sl"
	"synergy/internal/models"
	"synergy/internal/session"
)

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionGetter
type SessionGetter interface {
	Get(ctx context.Context, id string) (*models.User, error)
}

func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext returns nil for anonymous requests.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(ctxKey{}).(*models.User)
	return user
}

// Authenticate attaches the session user to the request context. Requests
// without a live session continue anonymously.
func Authenticate(log *slog.Logger, sessions SessionGetter, cookieName string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(w, r)
				return
			}

			user, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil {
				if errors.Is(err, session.ErrNotFound) {
					next.ServeHTTP(w, r)
					return
				}

				log.Error("failed to load session", sl.Err(err))
				response.Fail(w, r, apperr.Wrap(apperr.Unavailable, "session store unavailable", err))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		}

		return http.HandlerFunc(fn)
	}
}

func RequireRoles(roles ...models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			if err := access.Require(UserFromContext(r.Context()), roles...); err != nil {
				response.Fail(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
