package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	t.Parallel()

	h, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", h)

	assert.True(t, CheckPassword(h, "s3cret"))
	assert.False(t, CheckPassword(h, "s3cre"))
	assert.False(t, CheckPassword(h, "s3cret "))
	assert.False(t, CheckPassword("not-a-hash", "s3cret"))
}

func TestHashPassword_Salted(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("same")
	require.NoError(t, err)
	b, err := HashPassword("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHashPassword_ByteLimit(t *testing.T) {
	t.Parallel()

	atLimit := strings.Repeat("a", MaxPasswordBytes)
	h, err := HashPassword(atLimit)
	require.NoError(t, err)
	assert.True(t, CheckPassword(h, atLimit))

	// 40 runes, 80 bytes.
	cyrillic := strings.Repeat("п", 40)
	_, err = HashPassword(cyrillic)
	assert.ErrorIs(t, err, ErrPasswordTooLong)
	assert.False(t, CheckPassword(h, atLimit+"a"))
}
