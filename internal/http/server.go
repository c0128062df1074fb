package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/jmoiron/sqlx"

	"github.com/kbys/folio/internal/config"
)

const maxBodyBytes = 20 << 20

type Server struct {
	DB     *sqlx.DB
	Config config.API
}

func NewServer(db *sqlx.DB, cfg config.API) *Server {
	return &Server{DB: db, Config: cfg}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)
	r.Use(LimitBody(maxBodyBytes))
	if len(s.Config.CorsOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   s.Config.CorsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "x-api-key"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Get("/health", s.Health)

	r.Route("/api", func(api chi.Router) {
		api.Route("/public", func(pub chi.Router) {
			pub.Get("/home", s.Home)
			pub.Post("/contact", s.CreateContact)
		})

		api.Route("/admin", func(admin chi.Router) {
			admin.Use(RequireAPIKey(s.Config.APIKey))

			admin.Route("/contacts", func(contacts chi.Router) {
				contacts.Get("/", s.ListContacts)
				contacts.Patch("/{id}", s.UpdateContact)
				contacts.Delete("/{id}", s.DeleteContact)
			})

			admin.Post("/images", s.UploadImage)

			admin.Route("/profile", func(profile chi.Router) {
				profile.Get("/", s.GetProfile)
				profile.Put("/", s.PutProfile)
				profile.Delete("/avatar", s.DeleteProfileAvatar)
			})

			admin.Route("/skills", func(skills chi.Router) {
				skills.Get("/", s.ListSkills)
				skills.Post("/", s.CreateSkill)
				skills.Put("/{id}", s.UpdateSkill)
				skills.Delete("/{id}", s.DeleteSkill)
			})

			admin.Route("/projects", func(projects chi.Router) {
				projects.Get("/", s.ListProjects)
				projects.Post("/", s.CreateProject)
				projects.Put("/{id}", s.UpdateProject)
				projects.Delete("/{id}", s.DeleteProject)
			})
		})
	})

	return r
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
