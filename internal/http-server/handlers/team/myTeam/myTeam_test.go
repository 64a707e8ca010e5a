package myTeam

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"synergy/internal/http-server/handlers/team/myTeam/mocks"
	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/apperr"
	"synergy/internal/lib/logger/handlers/slogdiscard"
	"synergy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestMyTeamHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	asha := &models.User{Email: "asha@iiitb.ac.in", Role: models.RoleParticipant}

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.TeamFinder)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Found",
			mockSetup: func(m *mocks.TeamFinder) {
				m.On("MyTeam", mock.Anything, asha).Return(&models.Team{
					ID:                 "t-1",
					Name:               "Rockets",
					Members:            []models.Member{},
					Points:             60,
					EventsParticipated: []string{"E1"},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","team":{"team_id":"t-1","team_name":"Rockets","members":[],"points":60,` +
				`"events_participated":["E1"],"qr_id":"","join_code":"","created_at":"0001-01-01T00:00:00Z","created_by":""}}`,
		},
		{
			name: "No team",
			mockSetup: func(m *mocks.TeamFinder) {
				m.On("MyTeam", mock.Anything, asha).Return(nil, apperr.New(apperr.NotFound, "user is not part of any team"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"user is not part of any team"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			finder := mocks.NewTeamFinder(t)
			tc.mockSetup(finder)

			handler := New(logger, finder)

			req := httptest.NewRequest(http.MethodGet, "/my_team", nil)
			req = req.WithContext(mwauth.WithUser(req.Context(), asha))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
