// Package role maps a verified organization identity to an application role.
package role

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"synergy/internal/lib/apperr"
	"synergy/internal/lib/logger/sl"
	"synergy/internal/models"
	"synergy/internal/storage"
)

type VolunteerGetter interface {
	GetVolunteer(ctx context.Context, rollNumber string) (*models.Volunteer, error)
}

type Resolver struct {
	log        *slog.Logger
	adminEmail string
	domain     string
	volunteers VolunteerGetter
}

func New(log *slog.Logger, adminEmail, domain string, volunteers VolunteerGetter) *Resolver {
	return &Resolver{
		log:        log,
		adminEmail: strings.ToLower(strings.TrimSpace(adminEmail)),
		domain:     strings.ToLower(strings.TrimPrefix(strings.TrimSpace(domain), "@")),
		volunteers: volunteers,
	}
}

// Resolve rejects identities outside the organization domain. A failing
// volunteer lookup degrades to participant instead of failing the login.
func (r *Resolver) Resolve(ctx context.Context, id models.Identity) (*models.User, error) {
	const op = "services.role.Resolve"

	log := r.log.With(slog.String("op", op))

	email := models.NormalizeEmail(id.Email)
	if email == "" || !strings.HasSuffix(email, "@"+r.domain) {
		log.Warn("login outside organization domain", slog.String("email", email))
		return nil, apperr.New(apperr.Forbidden, "access denied")
	}

	user := &models.User{
		Name:       id.Name,
		Email:      email,
		RollNumber: id.RollNumber,
		Role:       models.RoleParticipant,
	}

	if email == r.adminEmail {
		user.Role = models.RoleAdmin
		return user, nil
	}

	if id.RollNumber == "" || id.RollNumber == "N/A" {
		return user, nil
	}

	_, err := r.volunteers.GetVolunteer(ctx, id.RollNumber)
	switch {
	case err == nil:
		user.Role = models.RoleVolunteer
	case errors.Is(err, storage.ErrVolunteerNotFound):
	default:
		log.Warn("volunteer lookup failed, defaulting to participant", sl.Err(err))
	}

	return user, nil
}
