package tokens

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuer_IssueAndParse(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("test-jwt-secret"), 2*time.Hour)
	before := time.Now()

	raw, exp, err := iss.Issue(42, "alice", "manager")
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.WithinDuration(t, before.Add(2*time.Hour), exp, 2*time.Second)

	claims, err := iss.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "manager", claims.Role)
	assert.NotEmpty(t, claims.ID)

	id, err := claims.UserID()
	require.NoError(t, err)
	assert.EqualValues(t, 42, id)
}

func TestIssuer_UniqueTokenIDs(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("k"), time.Minute)
	a, _, err := iss.Issue(1, "a", "employee")
	require.NoError(t, err)
	b, _, err := iss.Issue(1, "a", "employee")
	require.NoError(t, err)

	ca, err := iss.Parse(a)
	require.NoError(t, err)
	cb, err := iss.Parse(b)
	require.NoError(t, err)
	assert.NotEqual(t, ca.ID, cb.ID)
}

func TestIssuer_RejectsExpired(t *testing.T) {
	t.Parallel()

	iss := NewIssuer([]byte("k"), time.Minute)
	iss.now = func() time.Time { return time.Now().Add(-time.Hour) }
	raw, _, err := iss.Issue(1, "a", "employee")
	require.NoError(t, err)

	iss.now = time.Now
	_, err = iss.Parse(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestIssuer_RejectsForeignSecret(t *testing.T) {
	t.Parallel()

	raw, _, err := NewIssuer([]byte("one"), time.Minute).Issue(1, "a", "employee")
	require.NoError(t, err)

	_, err = NewIssuer([]byte("two"), time.Minute).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_RejectsOtherAlgorithms(t *testing.T) {
	t.Parallel()

	claims := Claims{
		Role: "manager",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewIssuer([]byte("k"), time.Minute).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssuer_RequiresExpiry(t *testing.T) {
	t.Parallel()

	claims := Claims{Role: "manager", RegisteredClaims: jwt.RegisteredClaims{Subject: "1"}}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)

	_, err = NewIssuer([]byte("k"), time.Minute).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestClaims_UserIDRejectsGarbage(t *testing.T) {
	t.Parallel()

	c := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "abc"}}
	_, err := c.UserID()
	assert.ErrorIs(t, err, ErrInvalidToken)
}
