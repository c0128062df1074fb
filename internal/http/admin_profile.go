package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/kbys/folio/internal/models"
	"github.com/kbys/folio/internal/services"
)

// GetProfile returns the canonical profile with avatar metadata, or a JSON
// null when none has been saved yet.
func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := services.FirstProfile(s.DB)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if profile == nil {
		WriteJSON(w, http.StatusOK, nil)
		return
	}
	var avatar *models.Image
	if profile.AvatarID != nil {
		avatar, err = services.ImageByID(s.DB, *profile.AvatarID)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
	}
	WriteJSON(w, http.StatusOK, adminProfileDTO(*profile, avatar))
}

type ProfilePutRequest struct {
	Name     string `json:"name"`
	Bio      string `json:"bio"`
	AvatarID *int64 `json:"avatarId"`
}

// PutProfile fully replaces name, bio and avatar reference; leaving avatarId
// out clears it.
func (s *Server) PutProfile(w http.ResponseWriter, r *http.Request) {
	var req ProfilePutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.Name == "" || req.Bio == "" {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	saved, err := services.SaveProfile(s.DB, req.Name, req.Bio, req.AvatarID)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, adminProfileDTO(saved, nil))
}

// DeleteProfileAvatar clears the avatar reference. With no profile row yet
// there is nothing to clear and the call still succeeds.
func (s *Server) DeleteProfileAvatar(w http.ResponseWriter, r *http.Request) {
	saved, err := services.ClearProfileAvatar(s.DB)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	if saved == nil {
		WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
		return
	}
	WriteJSON(w, http.StatusOK, adminProfileDTO(*saved, nil))
}
