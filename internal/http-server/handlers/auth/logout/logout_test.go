package logout

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"synergy/internal/http-server/handlers/auth/logout/mocks"
	"synergy/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLogoutHandler(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		cookie    string
		mockSetup func(m *mocks.SessionDeleter)
	}{
		{
			name:   "With session",
			cookie: "sess-1",
			mockSetup: func(m *mocks.SessionDeleter) {
				m.On("Delete", mock.Anything, "sess-1").Return(nil)
			},
		},
		{
			name:   "Store failure still clears cookie",
			cookie: "sess-1",
			mockSetup: func(m *mocks.SessionDeleter) {
				m.On("Delete", mock.Anything, "sess-1").Return(errors.New("redis down"))
			},
		},
		{
			name:      "Anonymous",
			mockSetup: func(m *mocks.SessionDeleter) {},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deleter := mocks.NewSessionDeleter(t)
			tc.mockSetup(deleter)

			handler := New(slogdiscard.NewDiscardLogger(), deleter, "session_id", false, "http://localhost:5173")

			req := httptest.NewRequest(http.MethodGet, "/logout", nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "session_id", Value: tc.cookie})
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusFound, rr.Code)
			assert.Equal(t, "http://localhost:5173/", rr.Header().Get("Location"))

			cookies := rr.Result().Cookies()
			require.Len(t, cookies, 1)
			assert.Equal(t, "session_id", cookies[0].Name)
			assert.Equal(t, -1, cookies[0].MaxAge)
		})
	}
}
