package seal

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	s, err := New("transport-key")
	require.NoError(t, err)

	for _, plain := range []string{"a", "SYNERGY-2025", "ключ с пробелами", "x!@#$%^&*()_+"} {
		sealed, err := s.Seal(plain)
		require.NoError(t, err)
		assert.NotEqual(t, plain, sealed)
		assert.Equal(t, plain, s.Open(sealed))
	}
}

func TestSealUsesFreshNonce(t *testing.T) {
	t.Parallel()

	s, err := New("transport-key")
	require.NoError(t, err)

	a, err := s.Seal("same")
	require.NoError(t, err)
	b, err := s.Seal("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestOpenFailsSafe(t *testing.T) {
	t.Parallel()

	s, err := New("transport-key")
	require.NoError(t, err)
	other, err := New("another-key")
	require.NoError(t, err)

	sealed, err := s.Seal("secret")
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(sealed)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xff
	tampered := base64.StdEncoding.EncodeToString(raw)

	testCases := []struct {
		name   string
		sealer *Sealer
		input  string
	}{
		{name: "Garbage", sealer: s, input: "not base64 at all!"},
		{name: "Empty", sealer: s, input: ""},
		{name: "Truncated", sealer: s, input: base64.StdEncoding.EncodeToString(raw[:5])},
		{name: "Tampered", sealer: s, input: tampered},
		{name: "Wrong key", sealer: other, input: sealed},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.NotPanics(t, func() {
				assert.Equal(t, "", tc.sealer.Open(tc.input))
			})
		})
	}
}

func TestNewRejectsEmptyKey(t *testing.T) {
	t.Parallel()

	_, err := New("")
	assert.ErrorIs(t, err, ErrEmptyKey)
}
