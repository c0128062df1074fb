package relay

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginSetsSessionCookie(t *testing.T) {
	s := newRelayServer("http://backend.invalid")

	idToken, err := s.Verifier.SignIDToken(testAdminUID, time.Hour)
	require.NoError(t, err)

	rec := doRelay(s, http.MethodPost, "/api/auth/login", `{"idToken":"`+idToken+`"}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, "session", cookie.Name)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, 172800, cookie.MaxAge)

	// The minted cookie carries the admin subject.
	subject, err := s.Verifier.VerifySessionCookie(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, testAdminUID, subject)
}

func TestLoginRejectsMissingToken(t *testing.T) {
	s := newRelayServer("http://backend.invalid")

	rec := doRelay(s, http.MethodPost, "/api/auth/login", `{}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"bad request"}`, rec.Body.String())
}

func TestLoginRejectsInvalidToken(t *testing.T) {
	s := newRelayServer("http://backend.invalid")

	rec := doRelay(s, http.MethodPost, "/api/auth/login", `{"idToken":"garbage"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginRejectsNonAdminSubject(t *testing.T) {
	s := newRelayServer("http://backend.invalid")

	idToken, err := s.Verifier.SignIDToken("other-uid", time.Hour)
	require.NoError(t, err)

	rec := doRelay(s, http.MethodPost, "/api/auth/login", `{"idToken":"`+idToken+`"}`, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"not admin"}`, rec.Body.String())
}

func TestLogoutExpiresCookie(t *testing.T) {
	s := newRelayServer("http://backend.invalid")

	rec := doRelay(s, http.MethodPost, "/api/auth/logout", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
