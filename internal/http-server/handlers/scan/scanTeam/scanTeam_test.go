package scanTeam

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"synergy/internal/http-server/handlers/scan/scanTeam/mocks"
	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/apperr"
	"synergy/internal/lib/logger/handlers/slogdiscard"
	"synergy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestScanTeamHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	volunteer := &models.User{Email: "vee@iiitb.ac.in", Role: models.RoleVolunteer}

	testCases := []struct {
		name           string
		authHeader     string
		requestBody    string
		mockSetup      func(m *mocks.Scanner)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Points awarded",
			authHeader:  "Bearer tok",
			requestBody: `{"team_id": "G"}`,
			mockSetup: func(m *mocks.Scanner) {
				m.On("Scan", mock.Anything, volunteer, "tok", "G", "").Return(&models.ScanResult{
					Message:       "Team 'Gamma' successfully scanned for event 'Treasure Hunt'",
					Volunteer:     "vee@iiitb.ac.in",
					TeamID:        "G",
					EventID:       "E1",
					PointsAwarded: 50,
					TeamPoints:    60,
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","message":"Team 'Gamma' successfully scanned for event 'Treasure Hunt'",` +
				`"volunteer":"vee@iiitb.ac.in","team_id":"G","event_id":"E1","points_awarded":50,"team_points":60}`,
		},
		{
			name:        "Already participated",
			authHeader:  "bearer tok",
			requestBody: `{"team_id": "G", "event_id": "E1"}`,
			mockSetup: func(m *mocks.Scanner) {
				m.On("Scan", mock.Anything, volunteer, "tok", "G", "E1").
					Return(nil, apperr.New(apperr.Conflict, "team already participated in this event"))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"team already participated in this event"}`,
		},
		{
			name:        "Expired token",
			authHeader:  "Bearer stale",
			requestBody: `{"team_id": "G"}`,
			mockSetup: func(m *mocks.Scanner) {
				m.On("Scan", mock.Anything, volunteer, "stale", "G", "").
					Return(nil, apperr.New(apperr.Unauthorized, "invalid or expired event token"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"invalid or expired event token"}`,
		},
		{
			name:           "No bearer token",
			requestBody:    `{"team_id": "G"}`,
			mockSetup:      func(m *mocks.Scanner) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"missing event token"}`,
		},
		{
			name:           "Basic auth header",
			authHeader:     "Basic dXNlcjpwYXNz",
			requestBody:    `{"team_id": "G"}`,
			mockSetup:      func(m *mocks.Scanner) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"missing event token"}`,
		},
		{
			name:           "Missing team",
			authHeader:     "Bearer tok",
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.Scanner) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field TeamID is a required field"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			scanner := mocks.NewScanner(t)
			tc.mockSetup(scanner)

			handler := New(logger, scanner)

			req := httptest.NewRequest(http.MethodPost, "/volunteer/scan", bytes.NewBufferString(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			req = req.WithContext(mwauth.WithUser(req.Context(), volunteer))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
