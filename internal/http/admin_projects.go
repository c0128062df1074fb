package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/kbys/folio/internal/models"
	"github.com/kbys/folio/internal/services"
)

type ProjectRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         *string `json:"url"`
	ImageID     *int64  `json:"imageId"`
}

func (s *Server) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := services.ListProjectsByID(s.DB)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	items := make([]AdminProjectDTO, 0, len(projects))
	for _, p := range projects {
		var img *models.Image
		if p.ImageID != nil {
			img, err = services.ImageByID(s.DB, *p.ImageID)
			if err != nil {
				WriteServiceError(w, err)
				return
			}
		}
		items = append(items, adminProjectDTO(p, img))
	}
	WriteJSON(w, http.StatusOK, items)
}

func (s *Server) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.Title == "" || req.Description == "" {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	project, err := services.CreateProject(s.DB, req.Title, req.Description, req.URL, req.ImageID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, adminProjectDTO(project, nil))
}

func (s *Server) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	var req ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.Title == "" || req.Description == "" {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	project, err := services.UpdateProject(s.DB, id, req.Title, req.Description, req.URL, req.ImageID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, adminProjectDTO(project, nil))
}

func (s *Server) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	if err := services.DeleteProject(s.DB, id); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
