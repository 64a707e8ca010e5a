package addVolunteer

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"synergy/internal/http-server/handlers/volunteer/addVolunteer/mocks"
	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/apperr"
	"synergy/internal/lib/logger/handlers/slogdiscard"
	"synergy/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAddVolunteerHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	admin := &models.User{Email: "synergy@iiitb.ac.in", Role: models.RoleAdmin}
	vee := models.Volunteer{RollNumber: "IMT1", Name: "Vee", Email: "vee@iiitb.ac.in"}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.VolunteerAdder)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: `{"rollNumber": "IMT1", "name": "Vee", "email": "vee@iiitb.ac.in"}`,
			mockSetup: func(m *mocks.VolunteerAdder) {
				added := vee
				added.AddedAt = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
				added.AddedBy = admin.Email
				m.On("Add", mock.Anything, admin, vee).Return(&added, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody: `{"status":"OK","volunteer":{"rollNumber":"IMT1","name":"Vee","email":"vee@iiitb.ac.in",` +
				`"added_at":"2026-03-01T09:00:00Z","added_by":"synergy@iiitb.ac.in"}}`,
		},
		{
			name:           "Bad email",
			requestBody:    `{"rollNumber": "IMT1", "name": "Vee", "email": "vee"}`,
			mockSetup:      func(m *mocks.VolunteerAdder) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Email is not a valid email"}`,
		},
		{
			name:           "Missing roll number",
			requestBody:    `{"name": "Vee", "email": "vee@iiitb.ac.in"}`,
			mockSetup:      func(m *mocks.VolunteerAdder) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field RollNumber is a required field"}`,
		},
		{
			name:        "Duplicate",
			requestBody: `{"rollNumber": "IMT1", "name": "Vee", "email": "vee@iiitb.ac.in"}`,
			mockSetup: func(m *mocks.VolunteerAdder) {
				m.On("Add", mock.Anything, admin, vee).Return(nil, apperr.New(apperr.Conflict, "volunteer already exists"))
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"status":"Error","error":"volunteer already exists"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			adder := mocks.NewVolunteerAdder(t)
			tc.mockSetup(adder)

			handler := New(logger, adder)

			req := httptest.NewRequest(http.MethodPost, "/volunteers", bytes.NewBufferString(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(mwauth.WithUser(req.Context(), admin))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
