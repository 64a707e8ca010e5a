// Package access holds the single capability check every guarded operation goes through.
package access

import (
	"synergy/internal/lib/apperr"
	"synergy/internal/models"
)

var (
	Admin           = []models.Role{models.RoleAdmin}
	AdminVolunteer  = []models.Role{models.RoleAdmin, models.RoleVolunteer}
	TeamFormers     = []models.Role{models.RoleParticipant, models.RoleVolunteer}
	Anyone          = []models.Role{models.RoleAdmin, models.RoleVolunteer, models.RoleParticipant}
	errNoSession    = apperr.New(apperr.Unauthenticated, "user not authenticated")
	errAccessDenied = apperr.New(apperr.Forbidden, "access denied")
)

// Require returns Unauthenticated when there is no caller and Forbidden when
// the caller's role is not among allowed.
func Require(caller *models.User, allowed ...models.Role) error {
	if caller == nil || caller.Email == "" {
		return errNoSession
	}

	for _, r := range allowed {
		if caller.Role == r {
			return nil
		}
	}

	return errAccessDenied
}
