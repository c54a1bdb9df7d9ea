package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"musicdb/internal/store"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}

// writeServiceError maps a service failure onto a response. noun names the
// entity in 404 and 409 bodies.
func writeServiceError(w http.ResponseWriter, r *http.Request, noun string, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeDetail(w, http.StatusNotFound, noun+" not found")
	case errors.Is(err, store.ErrReferenced):
		writeDetail(w, http.StatusConflict, noun+" is still referenced")
	default:
		log.Ctx(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}
