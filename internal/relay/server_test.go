package relay

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kbys/folio/internal/config"
)

const (
	testAdminUID   = "admin-uid"
	testBackendKey = "internal-key"
)

func newRelayServer(backendURL string) *Server {
	return NewServer(config.Web{
		BackendBase:       backendURL,
		BackendKey:        testBackendKey,
		SessionSecret:     "sess-secret",
		SessionIssuer:     "folio",
		AdminUID:          testAdminUID,
		SessionTTLSeconds: 172800,
	})
}

func sessionCookie(t *testing.T, s *Server, uid string) *http.Cookie {
	t.Helper()
	idToken, err := s.Verifier.SignIDToken(uid, time.Hour)
	require.NoError(t, err)
	value, err := s.Verifier.CreateSessionCookie(idToken)
	require.NoError(t, err)
	return &http.Cookie{Name: "session", Value: value}
}

func doRelay(s *Server, method, target, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}
