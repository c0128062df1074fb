// Package relay implements the frontend relay service: it authenticates
// browser requests against the session cookie and forwards authorized calls
// to the backend API with the shared secret attached.
package relay

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kbys/folio/internal/config"
	httpapi "github.com/kbys/folio/internal/http"
	"github.com/kbys/folio/internal/identity"
)

type Server struct {
	Client   *Client
	Verifier identity.Verifier
	Config   config.Web
}

func NewServer(cfg config.Web) *Server {
	return &Server{
		Client: &Client{
			Base: cfg.BackendBase,
			Key:  cfg.BackendKey,
			HTTP: &http.Client{},
		},
		Verifier: identity.Verifier{
			Secret:     []byte(cfg.SessionSecret),
			Issuer:     cfg.SessionIssuer,
			SessionTTL: time.Duration(cfg.SessionTTLSeconds) * time.Second,
		},
		Config: cfg,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(httpapi.RequestLogger)

	r.Post("/api/auth/login", s.Login)
	r.Post("/api/auth/logout", s.Logout)

	r.With(s.RequireAdminPage).Get("/admin/session", s.Session)

	r.Get("/api/public/home", s.relay("/api/public/home"))
	r.Post("/api/public/contact", s.relay("/api/public/contact"))

	r.Route("/api/admin", func(admin chi.Router) {
		// Contacts conceal their existence like the admin pages do; the
		// remaining admin APIs signal 401/403 instead. Both behaviors are
		// intentional and kept apart.
		admin.Route("/contacts", func(contacts chi.Router) {
			contacts.Use(s.RequireAdminPage)
			contacts.Get("/", s.relay("/api/admin/contacts"))
			contacts.Patch("/{id}", s.relayID("/api/admin/contacts"))
			contacts.Delete("/{id}", s.relayID("/api/admin/contacts"))
		})

		admin.Group(func(g chi.Router) {
			g.Use(s.RequireAdminAPI)
			g.Post("/images", s.relay("/api/admin/images"))
			g.Get("/profile", s.relay("/api/admin/profile"))
			g.Put("/profile", s.relay("/api/admin/profile"))
			g.Delete("/profile/avatar", s.relay("/api/admin/profile/avatar"))
			g.Get("/skills", s.relay("/api/admin/skills"))
			g.Post("/skills", s.relay("/api/admin/skills"))
			g.Put("/skills/{id}", s.relayID("/api/admin/skills"))
			g.Delete("/skills/{id}", s.relayID("/api/admin/skills"))
			g.Get("/projects", s.relay("/api/admin/projects"))
			g.Post("/projects", s.relay("/api/admin/projects"))
			g.Put("/projects/{id}", s.relayID("/api/admin/projects"))
			g.Delete("/projects/{id}", s.relayID("/api/admin/projects"))
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}
