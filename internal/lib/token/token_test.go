package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	iss, err := NewIssuer("s3cret", time.Hour, WithClock(clock.Now))
	require.NoError(t, err)

	raw, expiresAt, err := iss.Issue("vol@iiitb.ac.in", "E1")
	require.NoError(t, err)
	assert.Equal(t, clock.t.Add(time.Hour), expiresAt)

	claims, err := iss.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "vol@iiitb.ac.in", claims.Subject)
	assert.Equal(t, "E1", claims.EventID)
}

func TestVerifyRejectsExpired(t *testing.T) {
	t.Parallel()

	clock := &fakeClock{t: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}
	iss, err := NewIssuer("s3cret", time.Hour, WithClock(clock.Now))
	require.NoError(t, err)

	raw, _, err := iss.Issue("vol@iiitb.ac.in", "E1")
	require.NoError(t, err)

	clock.t = clock.t.Add(time.Hour + time.Second)

	_, err = iss.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	t.Parallel()

	a, err := NewIssuer("key-a", time.Hour)
	require.NoError(t, err)
	b, err := NewIssuer("key-b", time.Hour)
	require.NoError(t, err)

	raw, _, err := a.Issue("vol@iiitb.ac.in", "E1")
	require.NoError(t, err)

	_, err = b.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	t.Parallel()

	iss, err := NewIssuer("s3cret", time.Hour)
	require.NoError(t, err)

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		EventID: "E1",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   "vol@iiitb.ac.in",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for _, raw := range []string{"", "abc", "a.b.c", noneToken} {
		_, err := iss.Verify(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, raw)
	}
}

func TestVerifyRequiresEventID(t *testing.T) {
	t.Parallel()

	iss, err := NewIssuer("s3cret", time.Hour)
	require.NoError(t, err)

	raw, _, err := iss.Issue("vol@iiitb.ac.in", "")
	require.NoError(t, err)

	_, err = iss.Verify(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewIssuerValidation(t *testing.T) {
	t.Parallel()

	_, err := NewIssuer("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = NewIssuer("s3cret", 0)
	assert.Error(t, err)
}
