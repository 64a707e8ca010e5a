package updateEvent

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"synergy/internal/http-server/handlers/event/updateEvent/mocks"
	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/apperr"
	"synergy/internal/lib/logger/handlers/slogdiscard"
	"synergy/internal/models"
	"synergy/internal/services/event"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	admin := &models.User{Email: "synergy@iiitb.ac.in", Role: models.RoleAdmin}

	expiredOnly := mock.MatchedBy(func(p event.UpdateParams) bool {
		return p.Expired != nil && *p.Expired && p.Name == nil && p.Points == nil && p.SealedSecret == nil
	})

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.EventUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Mark expired",
			requestBody: `{"expired": true}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("Update", mock.Anything, admin, "e-1", expiredOnly).Return(&models.EventView{
					Event: models.Event{ID: "e-1", Name: "Quiz", Points: 30, Expired: true},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","event":{"event_id":"e-1","event_name":"Quiz","points":30,` +
				`"expired":true,"participants":0,"created_at":"0001-01-01T00:00:00Z"}}`,
		},
		{
			name:           "Negative points",
			requestBody:    `{"points": -1}`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Points must be at least 0"}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `{`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Unknown event",
			requestBody: `{"expired": true}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("Update", mock.Anything, admin, "e-1", expiredOnly).Return(nil, apperr.New(apperr.NotFound, "event not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			updater := mocks.NewEventUpdater(t)
			tc.mockSetup(updater)

			router := chi.NewRouter()
			router.Put("/events/{id}", New(logger, updater))

			req := httptest.NewRequest(http.MethodPut, "/events/e-1", bytes.NewBufferString(tc.requestBody))
			req.Header.Set("Content-Type", "application/json")
			req = req.WithContext(mwauth.WithUser(req.Context(), admin))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
