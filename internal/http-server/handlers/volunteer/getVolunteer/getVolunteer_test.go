package getVolunteer

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"synergy/internal/http-server/handlers/volunteer/getVolunteer/mocks"
	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/apperr"
	"synergy/internal/lib/logger/handlers/slogdiscard"
	"synergy/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetVolunteerHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	admin := &models.User{Email: "synergy@iiitb.ac.in", Role: models.RoleAdmin}

	testCases := []struct {
		name           string
		roll           string
		mockSetup      func(m *mocks.VolunteerGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Found",
			roll: "IMT1",
			mockSetup: func(m *mocks.VolunteerGetter) {
				m.On("Get", mock.Anything, admin, "IMT1").Return(&models.Volunteer{RollNumber: "IMT1", Name: "Vee"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","volunteer":{"rollNumber":"IMT1","name":"Vee","email":"",` +
				`"added_at":"0001-01-01T00:00:00Z"}}`,
		},
		{
			name: "Missing",
			roll: "IMT9",
			mockSetup: func(m *mocks.VolunteerGetter) {
				m.On("Get", mock.Anything, admin, "IMT9").Return(nil, apperr.New(apperr.NotFound, "volunteer not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"volunteer not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewVolunteerGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/volunteers/{rollNumber}", New(logger, getter))

			req := httptest.NewRequest(http.MethodGet, "/volunteers/"+tc.roll, nil)
			req = req.WithContext(mwauth.WithUser(req.Context(), admin))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
