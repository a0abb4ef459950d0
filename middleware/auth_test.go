package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret []byte, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
		"iat":  time.Now().Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestAuthenticateAndRequireRole(t *testing.T) {
	secret := []byte("test-secret")
	var handlerCalled bool
	protected := Authenticate(secret)(RequireRole(RoleOrganizer)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			handlerCalled = true
		})))

	t.Run("missing token", func(t *testing.T) {
		handlerCalled = false
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/matches", nil))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, handlerCalled)
	})

	t.Run("wrong secret", func(t *testing.T) {
		handlerCalled = false
		req := httptest.NewRequest(http.MethodPost, "/matches", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, []byte("other"), RoleOrganizer))
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.False(t, handlerCalled)
	})

	t.Run("wrong role", func(t *testing.T) {
		handlerCalled = false
		req := httptest.NewRequest(http.MethodPost, "/matches", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, secret, "spectator"))
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.False(t, handlerCalled)
	})

	t.Run("organizer token", func(t *testing.T) {
		handlerCalled = false
		req := httptest.NewRequest(http.MethodPost, "/matches", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, secret, RoleOrganizer))
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
		require.True(t, handlerCalled)
	})
}
