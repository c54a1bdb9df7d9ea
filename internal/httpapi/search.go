package httpapi

import "net/http"

// handleSearchArtist returns the first artist whose name matches the
// artist_name query parameter exactly. The {query} path segment only
// distinguishes the route.
func (s *Server) handleSearchArtist(w http.ResponseWriter, r *http.Request) {
	names, ok := r.URL.Query()["artist_name"]
	if !ok || len(names) == 0 {
		writeValidation(w, fieldError{
			Loc:  []any{"query", "artist_name"},
			Msg:  "field required",
			Type: "value_error.missing",
		})
		return
	}

	artist, err := s.services.Artists.FindByName(r.Context(), names[0])
	if err != nil {
		writeServiceError(w, r, "Artist", err)
		return
	}
	writeJSON(w, http.StatusOK, artist)
}
