package getEvent

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"synergy/internal/http-server/handlers/event/getEvent/mocks"
	"synergy/internal/http-server/middleware/mwauth"
	"synergy/internal/lib/apperr"
	"synergy/internal/lib/logger/handlers/slogdiscard"
	"synergy/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGetEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	volunteer := &models.User{Email: "v@iiitb.ac.in", Role: models.RoleVolunteer}

	testCases := []struct {
		name           string
		eventID        string
		mockSetup      func(m *mocks.EventGetter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			eventID: "e-1",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Get", mock.Anything, volunteer, "e-1").Return(&models.EventView{Event: models.Event{
					ID:        "e-1",
					Name:      "Quiz",
					Points:    30,
					CreatedAt: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
				}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","event":{"event_id":"e-1","event_name":"Quiz","points":30,` +
				`"expired":false,"participants":0,"created_at":"2026-03-01T09:00:00Z"}}`,
		},
		{
			name:    "Not found",
			eventID: "missing",
			mockSetup: func(m *mocks.EventGetter) {
				m.On("Get", mock.Anything, volunteer, "missing").Return(nil, apperr.New(apperr.NotFound, "event not found"))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			getter := mocks.NewEventGetter(t)
			tc.mockSetup(getter)

			router := chi.NewRouter()
			router.Get("/events/{id}", New(logger, getter))

			req := httptest.NewRequest(http.MethodGet, "/events/"+tc.eventID, nil)
			req = req.WithContext(mwauth.WithUser(req.Context(), volunteer))
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestGetEventHandler_MissingID(t *testing.T) {
	t.Parallel()

	getter := mocks.NewEventGetter(t)
	handler := New(slogdiscard.NewDiscardLogger(), getter)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":"Error","error":"event id is required"}`, rr.Body.String())
}
