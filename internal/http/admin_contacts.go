package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/kbys/folio/internal/models"
	"github.com/kbys/folio/internal/services"
)

const (
	defaultContactsTake = 20
	maxContactsTake     = 100
)

type ContactListResponse struct {
	Items []ContactDTO `json:"items"`
	Total int          `json:"total"`
	Skip  int          `json:"skip"`
	Take  int          `json:"take"`
}

// ListContacts pages through messages newest first. Malformed skip/take fall
// back to their defaults and take is capped; any status other than NEW or
// DONE means unfiltered.
func (s *Server) ListContacts(w http.ResponseWriter, r *http.Request) {
	skip := queryInt(r, "skip", 0)
	take := queryInt(r, "take", defaultContactsTake)
	if take > maxContactsTake {
		take = maxContactsTake
	}
	status := strings.ToUpper(r.URL.Query().Get("status"))

	items, total, err := services.ListContacts(s.DB, skip, take, status)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, ContactListResponse{
		Items: contactDTOs(items),
		Total: total,
		Skip:  skip,
		Take:  take,
	})
}

type ContactStatusRequest struct {
	Status string `json:"status"`
}

func (s *Server) UpdateContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	var req ContactStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.Status != models.ContactStatusNew && req.Status != models.ContactStatusDone {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	updated, err := services.UpdateContactStatus(s.DB, id, req.Status)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, contactDTO(updated))
}

func (s *Server) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	if err := services.DeleteContact(s.DB, id); err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
