package relay

import (
	"encoding/json"
	"net/http"
)

type LoginRequest struct {
	IDToken string `json:"idToken"`
}

// Login verifies the identity provider's ID token, requires the administrator
// subject and sets the session cookie.
func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IDToken == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad request"})
		return
	}
	subject, err := s.Verifier.VerifyIDToken(req.IDToken)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}
	if subject != s.Config.AdminUID {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "not admin"})
		return
	}
	cookie, err := s.Verifier.CreateSessionCookie(req.IDToken)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    cookie,
		Path:     "/",
		MaxAge:   s.Config.SessionTTLSeconds,
		HttpOnly: true,
		Secure:   s.Config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Logout expires the session cookie immediately.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.Config.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Session lets the admin UI probe login state; the page guard already ran, so
// reaching here means the caller is the administrator.
func (s *Server) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"ok": true, "uid": CurrentSubject(r)})
}
