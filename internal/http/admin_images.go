package httpapi

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/kbys/folio/internal/services"
)

type ImageUploadRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Base64      string `json:"base64"`
}

// UploadImage decodes the base64 payload and stores the blob. Only the new id
// goes back, never the full record.
func (s *Server) UploadImage(w http.ResponseWriter, r *http.Request) {
	var req ImageUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	if req.Filename == "" || req.ContentType == "" || req.Base64 == "" {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.Base64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "bad request")
		return
	}
	id, err := services.CreateImage(s.DB, req.Filename, req.ContentType, data)
	if err != nil {
		WriteServiceError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]int64{"id": id})
}
