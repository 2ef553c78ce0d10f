package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	m := NewTokenManager("s3cret")
	m.now = fixedClock(time.Unix(1700000000, 0))

	payload := map[string]interface{}{"email": "student@example.com", "role": "student"}
	token, err := m.Issue(payload)
	require.NoError(t, err)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "student@example.com", claims["email"])
	assert.Equal(t, "student", claims["role"])
	assert.Equal(t, float64(1700000000), claims["iat"])

	_, mutated := payload["iat"]
	assert.False(t, mutated)
}

func TestVerifyRejectsOtherSecret(t *testing.T) {
	token, err := NewTokenManager("first").Issue(map[string]interface{}{"email": "x@y.z"})
	require.NoError(t, err)

	_, err = NewTokenManager("second").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	m := NewTokenManager("s3cret")
	for _, tok := range []string{"", "abc", "a.b.c"} {
		_, err := m.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken, tok)
	}
}

func TestVerifyRejectsNoneAlgorithm(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"email": "x@y.z"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("s3cret").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsOtherHMAC(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{"email": "x@y.z"}).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = NewTokenManager("s3cret").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueWithoutSecret(t *testing.T) {
	_, err := NewTokenManager("").Issue(map[string]interface{}{"email": "x@y.z"})
	assert.Error(t, err)
}
