package joinTeam

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"synergy/internal/http-server/handlers/team/joinTeam/mocks"
	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/apperr"
	"synergy/internal/lib/logger/handlers/slogdiscard"
	"synergy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestJoinTeamHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	ravi := &models.User{Name: "Ravi", Email: "ravi@iiitb.ac.in", Role: models.RoleParticipant}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.TeamJoiner)
		expectedStatus int
		expectedBody   string
		checkBody      func(t *testing.T, body string)
	}{
		{
			name:        "Joined",
			requestBody: `{"join_code": "ABCD2345"}`,
			mockSetup: func(m *mocks.TeamJoiner) {
				m.On("JoinByCode", mock.Anything, ravi, "ABCD2345").Return(&models.Team{
					ID:   "t-1",
					Name: "Rockets",
					Members: []models.Member{
						{Email: "asha@iiitb.ac.in", Role: "leader"},
						{Email: "ravi@iiitb.ac.in", Role: "member"},
					},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body string) {
				var resp Response
				require.NoError(t, json.Unmarshal([]byte(body), &resp))

				assert.Equal(t, "OK", resp.Status)
				require.NotNil(t, resp.Team)
				assert.Len(t, resp.Team.Members, 2)
				assert.Equal(t, "member", resp.Team.Members[1].Role)
			},
		},
		{
			name:        "Team full",
			requestBody: `{"join_code": "ABCD2345"}`,
			mockSetup: func(m *mocks.TeamJoiner) {
				m.On("JoinByCode", mock.Anything, ravi, "ABCD2345").Return(nil, apperr.New(apperr.Conflict, "team is full"))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"team is full"}`,
		},
		{
			name:        "Bad code",
			requestBody: `{"join_code": "NOPE"}`,
			mockSetup: func(m *mocks.TeamJoiner) {
				m.On("JoinByCode", mock.Anything, ravi, "NOPE").Return(nil, apperr.New(apperr.NotFound, "invalid join code"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"invalid join code"}`,
		},
		{
			name:           "Missing code",
			requestBody:    `{"join_code": ""}`,
			mockSetup:      func(m *mocks.TeamJoiner) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field JoinCode is a required field"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			joiner := mocks.NewTeamJoiner(t)
			tc.mockSetup(joiner)

			handler := New(logger, joiner)

			req := httptest.NewRequest(http.MethodPost, "/join_team_by_code", bytes.NewBufferString(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(mwauth.WithUser(req.Context(), ravi))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			if tc.checkBody != nil {
				tc.checkBody(t, rr.Body.String())
			} else {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}
		})
	}
}
