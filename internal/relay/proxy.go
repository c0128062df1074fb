package relay

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// relay forwards the request to a fixed backend path, method, query string
// and body carried over verbatim.
func (s *Server) relay(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.forward(w, r, path)
	}
}

// relayID appends the raw {id} segment; the backend owns its validation.
func (s *Server) relayID(prefix string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.forward(w, r, prefix+"/"+chi.URLParam(r, "id"))
	}
}

func (s *Server) forward(w http.ResponseWriter, r *http.Request, path string) {
	var body []byte
	if r.Body != nil {
		body, _ = io.ReadAll(r.Body)
	}
	data, err := s.Client.Do(r.Context(), r.Method, path, r.URL.RawQuery, body)
	if err != nil {
		writeText(w, StatusFromError(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
