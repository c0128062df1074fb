package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/kbys/folio/internal/models"
	"github.com/kbys/folio/internal/services"
)

// Home aggregates profile, skills and projects into the single payload the
// public page renders. Image bytes leave as data URIs, never raw.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	profile, err := services.FirstProfile(s.DB)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	var profileDTO *HomeProfileDTO
	if profile != nil {
		var avatar *models.Image
		if profile.AvatarID != nil {
			avatar, err = services.ImageByID(s.DB, *profile.AvatarID)
			if err != nil {
				WriteServiceError(w, err)
				return
			}
		}
		profileDTO = &HomeProfileDTO{
			Name:      profile.Name,
			Bio:       profile.Bio,
			AvatarURL: dataURIOrNil(avatar),
		}
	}

	skills, err := services.ListSkillsByLevel(s.DB)
	if err != nil {
		WriteServiceError(w, err)
		return
	}

	projects, err := services.ListProjectsByCreation(s.DB)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	projectDTOs := make([]HomeProjectDTO, 0, len(projects))
	for _, p := range projects {
		var img *models.Image
		if p.ImageID != nil {
			img, err = services.ImageByID(s.DB, *p.ImageID)
			if err != nil {
				WriteServiceError(w, err)
				return
			}
		}
		projectDTOs = append(projectDTOs, HomeProjectDTO{
			ID:          p.ID,
			Title:       p.Title,
			Description: p.Description,
			URL:         p.URL,
			ImageURL:    dataURIOrNil(img),
		})
	}

	WriteJSON(w, http.StatusOK, HomeResponse{
		Profile:  profileDTO,
		Skills:   skillDTOs(skills),
		Projects: projectDTOs,
	})
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// CreateContact stores a visitor message; status defaults to NEW at the
// store. No dedup, no rate limiting.
func (s *Server) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.Name == "" || req.Email == "" || req.Message == "" {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	if err := services.CreateContact(s.DB, req.Name, req.Email, req.Message); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
