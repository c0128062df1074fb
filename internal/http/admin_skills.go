package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/kbys/folio/internal/services"
)

type SkillRequest struct {
	Name  string `json:"name"`
	Level *int   `json:"level"`
}

func (s *Server) ListSkills(w http.ResponseWriter, r *http.Request) {
	skills, err := services.ListSkills(s.DB)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, skillDTOs(skills))
}

func (s *Server) CreateSkill(w http.ResponseWriter, r *http.Request) {
	var req SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.Name == "" || req.Level == nil {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	skill, err := services.CreateSkill(s.DB, req.Name, *req.Level)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, skillDTO(skill))
}

func (s *Server) UpdateSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	var req SkillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.Name == "" || req.Level == nil {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	skill, err := services.UpdateSkill(s.DB, id, req.Name, *req.Level)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, skillDTO(skill))
}

func (s *Server) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	if err := services.DeleteSkill(s.DB, id); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
