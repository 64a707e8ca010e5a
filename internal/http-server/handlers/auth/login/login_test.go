package login

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"synergy/internal/http-server/handlers/auth/login/mocks"
	"synergy/internal/lib/logger/handlers/slogdiscard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLoginHandler(t *testing.T) {
	t.Parallel()

	provider := mocks.NewAuthURLProvider(t)

	var state string
	provider.On("AuthCodeURL", mock.AnythingOfType("string")).
		Run(func(args mock.Arguments) { state = args.String(0) }).
		Return("https://login.microsoftonline.com/organizations/oauth2/v2.0/authorize?state=x")

	handler := New(slogdiscard.NewDiscardLogger(), provider, true)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/login", nil))

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://login.microsoftonline.com/organizations/oauth2/v2.0/authorize?state=x", rr.Header().Get("Location"))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, StateCookie, cookies[0].Name)
	assert.Equal(t, state, cookies[0].Value)
	assert.NotEmpty(t, state)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}
