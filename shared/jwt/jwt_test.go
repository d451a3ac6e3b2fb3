package jwt

import (
	"net/http"
	"testing"
	"time"

	"github.com/forum-api/forum-api/shared/domain"
	internal_errors "github.com/forum-api/forum-api/shared/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secretKey = "testJwtKey"
var user = domain.User{Id: "user-123", Username: "dicoding"}

func requireUnauthorized(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var e *internal_errors.ErrorWithStatusCode
	require.ErrorAs(t, err, &e)
	assert.Equal(t, http.StatusUnauthorized, e.StatusCode)
}

func TestDecodeTokenCorrect(t *testing.T) {
	service := New(secretKey, 10*time.Second)
	token, err := service.NewToken(user)
	require.NoError(t, err)

	decoded, err := service.DecodeToken(token)
	require.NoError(t, err)

	claims, ok := decoded.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "user-123", claims["uid"])
	assert.Equal(t, "dicoding", claims["username"])
}

func TestDecodeTokenExpired(t *testing.T) {
	token, err := New(secretKey, -time.Minute).NewToken(user)
	require.NoError(t, err)

	_, err = New(secretKey, time.Minute).DecodeToken(token)
	requireUnauthorized(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestDecodeTokenInvalidSecretKey(t *testing.T) {
	token, err := New(secretKey, 10*time.Second).NewToken(user)
	require.NoError(t, err)

	_, err = New("invalidSecret", 10*time.Second).DecodeToken(token)
	requireUnauthorized(t, err)
}

func TestDecodeTokenGarbage(t *testing.T) {
	_, err := New(secretKey, time.Minute).DecodeToken("not-a-token")
	requireUnauthorized(t, err)
}
