package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCode(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := Code(8)
		require.NoError(t, err)
		require.Len(t, code, 8)

		for _, r := range code {
			assert.True(t, strings.ContainsRune(Alphabet, r), "unexpected rune %q", r)
		}
		seen[code] = true
	}

	assert.Greater(t, len(seen), 95)
	assert.Len(t, Alphabet, 32)
}
