package access

import (
	"testing"

	"synergy/internal/lib/apperr"
	"synergy/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestRequire(t *testing.T) {
	t.Parallel()

	admin := &models.User{Email: "synergy@iiitb.ac.in", Role: models.RoleAdmin}
	volunteer := &models.User{Email: "vol@iiitb.ac.in", Role: models.RoleVolunteer}
	participant := &models.User{Email: "p@iiitb.ac.in", Role: models.RoleParticipant}

	testCases := []struct {
		name    string
		caller  *models.User
		allowed []models.Role
		kind    apperr.Kind
		ok      bool
	}{
		{name: "No session", caller: nil, allowed: Anyone, kind: apperr.Unauthenticated},
		{name: "Empty email", caller: &models.User{Role: models.RoleAdmin}, allowed: Admin, kind: apperr.Unauthenticated},
		{name: "Admin on admin op", caller: admin, allowed: Admin, ok: true},
		{name: "Volunteer on admin op", caller: volunteer, allowed: Admin, kind: apperr.Forbidden},
		{name: "Volunteer on scan", caller: volunteer, allowed: AdminVolunteer, ok: true},
		{name: "Participant on scan", caller: participant, allowed: AdminVolunteer, kind: apperr.Forbidden},
		{name: "Admin forming team", caller: admin, allowed: TeamFormers, kind: apperr.Forbidden},
		{name: "Participant forming team", caller: participant, allowed: TeamFormers, ok: true},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := Require(tc.caller, tc.allowed...)
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tc.kind, apperr.KindOf(err))
		})
	}
}
