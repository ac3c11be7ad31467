package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionToken_RoundTrip(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	token, err := m.GenerateSessionToken("alice")
	require.NoError(t, err)

	claims, err := m.ValidateSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice", claims.Subject)
}

func TestSessionToken_EmptyUsername(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.GenerateSessionToken("")
	assert.Error(t, err)
}

func TestSessionToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).GenerateSessionToken("alice")
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Hour).ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionToken_Expired(t *testing.T) {
	m := NewManager("test-secret", time.Minute)
	issued := time.Now().Add(-2 * time.Hour)
	m.now = func() time.Time { return issued }

	token, err := m.GenerateSessionToken("alice")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ValidateSessionToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestSessionToken_WrongType(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	claims := Claims{
		Username: "alice",
		Type:     "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = m.ValidateSessionToken(token)
	assert.Error(t, err)
}

func TestSessionToken_Garbage(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.ValidateSessionToken("not-a-token")
	assert.Error(t, err)
}
