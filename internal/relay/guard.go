package relay

import (
	"context"
	"net/http"
)

type contextKey string

const ctxSubject contextKey = "subject"

const sessionCookieName = "session"

// RequireAdminPage gates page-level admin routes. Missing cookie, failed
// verification and wrong subject all collapse into the same 404 so the admin
// area stays invisible.
func (s *Server) RequireAdminPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, ok := s.sessionSubject(r)
		if !ok || subject != s.Config.AdminUID {
			writeText(w, http.StatusNotFound, "not found")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxSubject, subject)))
	})
}

// RequireAdminAPI gates API-level admin routes: 401 without a cookie, 403
// when verification fails or the subject is not the administrator.
func (s *Server) RequireAdminAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			writeText(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		subject, err := s.Verifier.VerifySessionCookie(cookie.Value)
		if err != nil || subject != s.Config.AdminUID {
			writeText(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxSubject, subject)))
	})
}

func (s *Server) sessionSubject(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	subject, err := s.Verifier.VerifySessionCookie(cookie.Value)
	if err != nil {
		return "", false
	}
	return subject, true
}

// CurrentSubject returns the verified subject a guard stored on the context.
func CurrentSubject(r *http.Request) string {
	if value, ok := r.Context().Value(ctxSubject).(string); ok {
		return value
	}
	return ""
}
